package http

import (
	"time"

	"github.com/autofounder/deck-backend/internal/deck/service"
	"github.com/autofounder/deck-backend/internal/export"
)

// Handler bundles the dependencies for deck HTTP endpoints.
type Handler struct {
	svc      *service.DeckService
	exporter *export.Exporter
	uploader *export.Uploader
}

func New(svc *service.DeckService, exp *export.Exporter, up *export.Uploader) *Handler {
	return &Handler{svc: svc, exporter: exp, uploader: up}
}

const exportTimeout = 60 * time.Second
