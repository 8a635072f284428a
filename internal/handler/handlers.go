package handler

import (
	"github.com/MKhiriev/go-attach-keeper/internal/config"
	"github.com/MKhiriev/go-attach-keeper/internal/crypto"
	"github.com/MKhiriev/go-attach-keeper/internal/handler/http"
	"github.com/MKhiriev/go-attach-keeper/internal/logger"
	"github.com/MKhiriev/go-attach-keeper/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(storages *store.Storages, checksums crypto.ChecksumService, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(storages, checksums, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
