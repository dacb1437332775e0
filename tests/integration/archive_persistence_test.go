package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofounder/deck-backend/internal/deck/domain"
	"github.com/autofounder/deck-backend/internal/deck/repository"
	"github.com/autofounder/deck-backend/migrations"
)

// setupTestPostgres connects to the database named by TEST_DB_DSN and
// applies the embedded migrations. The test is skipped when no DSN is
// configured, so unit runs never need a database.
func setupTestPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		host := os.Getenv("TEST_DB_HOST")
		port := os.Getenv("TEST_DB_PORT")
		user := os.Getenv("TEST_DB_USER")
		password := os.Getenv("TEST_DB_PASSWORD")
		dbname := os.Getenv("TEST_DB_NAME")
		if host != "" && port != "" && user != "" && dbname != "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				host, port, user, password, dbname)
		} else {
			t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
		}
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err)
	_, err = provider.Up(context.Background())
	require.NoError(t, err)

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), "TRUNCATE decks")
	require.NoError(t, err)

	return pool
}

func archivedDeck(title string, createdAt time.Time) *domain.Deck {
	id := uuid.NewString()
	return &domain.Deck{
		ID:        id,
		Slug:      domain.Slugify(title, id),
		Title:     title,
		CreatedAt: createdAt,
		Slides: []domain.Slide{
			{Heading: "Problem", Bullets: []string{"Slow"}},
		},
		Meta: domain.DeckMeta{
			Category: domain.CategoryFintech,
			Theme:    domain.ThemeInvestor,
		},
	}
}

func TestArchiveRepo(t *testing.T) {
	pool := setupTestPostgres(t)
	repo := repository.NewArchiveRepo(pool)
	ctx := context.Background()

	t.Run("insert and get round trip", func(t *testing.T) {
		deck := archivedDeck("Acme", time.Now().UTC())
		require.NoError(t, repo.Insert(ctx, "user-1", deck, true))

		got, err := repo.Get(ctx, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, deck.ID, got.ID)
		assert.Equal(t, "Acme", got.Title)
		assert.Len(t, got.Slides, 1)
	})

	t.Run("replayed insert is a no-op", func(t *testing.T) {
		deck := archivedDeck("Replay", time.Now().UTC())
		require.NoError(t, repo.Insert(ctx, "user-1", deck, true))

		mutated := *deck
		mutated.Title = "Changed"
		require.NoError(t, repo.Insert(ctx, "user-1", &mutated, true))

		got, err := repo.Get(ctx, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, "Replay", got.Title)
	})

	t.Run("list newest first scoped to user", func(t *testing.T) {
		older := archivedDeck("Older", time.Now().UTC().Add(-time.Hour))
		newer := archivedDeck("Newer", time.Now().UTC())
		require.NoError(t, repo.Insert(ctx, "user-2", older, true))
		require.NoError(t, repo.Insert(ctx, "user-2", newer, false))
		require.NoError(t, repo.Insert(ctx, "user-3", archivedDeck("Foreign", time.Now().UTC()), true))

		entries, err := repo.ListByUser(ctx, "user-2", 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Newer", entries[0].Title)
		assert.Equal(t, "Older", entries[1].Title)
		assert.False(t, entries[0].Stored)
	})

	t.Run("get missing reports not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "no-such-deck")
		assert.ErrorIs(t, err, domain.ErrDeckNotFound)
	})

	t.Run("prune removes stale rows", func(t *testing.T) {
		stale := archivedDeck("Stale", time.Now().UTC().Add(-30*24*time.Hour))
		fresh := archivedDeck("Fresh", time.Now().UTC())
		require.NoError(t, repo.Insert(ctx, "user-4", stale, true))
		require.NoError(t, repo.Insert(ctx, "user-4", fresh, true))

		n, err := repo.PruneOlderThan(ctx, 7*24*time.Hour)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1))

		_, err = repo.Get(ctx, stale.ID)
		assert.ErrorIs(t, err, domain.ErrDeckNotFound)

		_, err = repo.Get(ctx, fresh.ID)
		assert.NoError(t, err)
	})
}
