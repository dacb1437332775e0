package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/autofounder/deck-backend/internal/deck/domain"
	"github.com/autofounder/deck-backend/internal/deck/service"
	"github.com/autofounder/deck-backend/internal/deck/transport"
)

type createReq struct {
	Answers     map[string]string `json:"answers"`
	SlideFormat string            `json:"slide_format,omitempty"`
	SkipScript  bool              `json:"skip_script,omitempty"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	format := domain.SlideFormat(req.SlideFormat)
	if req.SlideFormat != "" && !format.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown slide format"})
		return
	}

	userID := c.GetString("firebase_uid")
	res, err := h.svc.Create(c.Request.Context(), userID, service.CreateRequest{
		Answers:    req.Answers,
		Format:     format,
		SkipScript: req.SkipScript,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoSlides) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "answers produce no slides"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":         true,
		"deck":       res.Deck,
		"stored":     res.Publish.Stored,
		"viewer_url": res.Publish.ViewerURL,
	})
}

func (h *Handler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing deck id"})
		return
	}

	deck, err := h.svc.ResolveID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDeckUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no deck available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deck": deck})
}

type resolveReq struct {
	Fragment string `json:"fragment"`
}

// resolve accepts a viewer URL fragment and returns the deck it refers
// to, whichever channel carries it.
func (h *Handler) resolve(c *gin.Context) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ref, err := transport.ParseFragment(req.Fragment)
	if err != nil || ref.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "fragment carries no deck reference"})
		return
	}

	deck, err := h.svc.Resolve(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, domain.ErrDeckUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no deck available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deck": deck, "present": ref.Present})
}

func (h *Handler) list(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid limit"})
			return
		}
		limit = n
	}

	items, err := h.svc.List(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "decks": items})
}

func (h *Handler) exportDeck(c *gin.Context) {
	deck, ok := h.resolveForExport(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), exportTimeout)
	defer cancel()

	data, name, err := h.exporter.Export(ctx, deck)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "export failed, retry later"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.presentationml.presentation", data)
}

func (h *Handler) uploadExport(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "export uploads not configured"})
		return
	}

	deck, ok := h.resolveForExport(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), exportTimeout)
	defer cancel()

	data, name, err := h.exporter.Export(ctx, deck)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "export failed, retry later"})
		return
	}

	url, err := h.uploader.Upload(ctx, deck.ID, name, data)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "file": name, "url": url})
}

func (h *Handler) resolveForExport(c *gin.Context) (*domain.Deck, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing deck id"})
		return nil, false
	}

	deck, err := h.svc.ResolveID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDeckUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no deck available"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return nil, false
	}
	return deck, true
}
