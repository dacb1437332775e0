// Package repository holds the Postgres archive of published decks. The
// archive backs the listing/history API and is pruned nightly; it is not
// part of the transport protocol and resolve never reads from it.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// ArchiveEntry is one archived deck row, payload included.
type ArchiveEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Slug      string          `json:"slug"`
	Category  domain.Category `json:"category,omitempty"`
	Theme     domain.ThemeKey `json:"theme,omitempty"`
	Stored    bool            `json:"stored"`
	CreatedAt time.Time       `json:"created_at"`
}

type ArchiveRepo struct {
	pool *pgxpool.Pool
}

func NewArchiveRepo(pool *pgxpool.Pool) *ArchiveRepo {
	return &ArchiveRepo{pool: pool}
}

func (r *ArchiveRepo) Pool() *pgxpool.Pool {
	return r.pool
}

// Insert records a published deck. Decks are immutable once published,
// so a replayed insert for the same id is a no-op rather than an update.
func (r *ArchiveRepo) Insert(ctx context.Context, userID string, deck *domain.Deck, stored bool) error {
	payload, err := json.Marshal(deck)
	if err != nil {
		return fmt.Errorf("marshal deck %s: %w", deck.ID, err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO decks (id, user_id, title, slug, category, theme, stored, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`, deck.ID, userID, deck.Title, deck.Slug, string(deck.Meta.Category), string(deck.Meta.Theme), stored, payload, deck.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert deck %s: %w", deck.ID, err)
	}
	return nil
}

// ListByUser returns the newest archive entries for a user.
func (r *ArchiveRepo) ListByUser(ctx context.Context, userID string, limit int) ([]ArchiveEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, slug, category, theme, stored, created_at
		FROM decks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list decks for %s: %w", userID, err)
	}
	defer rows.Close()

	var entries []ArchiveEntry
	for rows.Next() {
		var e ArchiveEntry
		var category, theme string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Slug, &category, &theme, &e.Stored, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deck row: %w", err)
		}
		e.Category = domain.Category(category)
		e.Theme = domain.ThemeKey(theme)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the full archived deck payload.
func (r *ArchiveRepo) Get(ctx context.Context, id string) (*domain.Deck, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM decks WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get deck %s: %w", id, err)
	}

	var deck domain.Deck
	if err := json.Unmarshal(payload, &deck); err != nil {
		return nil, fmt.Errorf("unmarshal deck %s: %w", id, err)
	}
	return &deck, nil
}

// PruneOlderThan deletes archive rows past the retention window and
// returns how many were removed.
func (r *ArchiveRepo) PruneOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM decks WHERE created_at < $1`, time.Now().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("prune decks: %w", err)
	}
	return tag.RowsAffected(), nil
}
