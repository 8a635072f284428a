package http

import (
	"github.com/MKhiriev/go-attach-keeper/internal/config"
	"github.com/MKhiriev/go-attach-keeper/internal/crypto"
	"github.com/MKhiriev/go-attach-keeper/internal/logger"
	"github.com/MKhiriev/go-attach-keeper/internal/store"
	"github.com/MKhiriev/go-attach-keeper/internal/utils"
)

type Handler struct {
	storages  *store.Storages
	checksums crypto.ChecksumService
	uuids     *utils.UUIDGenerator
	version   string

	logger *logger.Logger
}

func NewHandler(storages *store.Storages, checksums crypto.ChecksumService, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		storages:  storages,
		checksums: checksums,
		uuids:     utils.NewUUIDGenerator(),
		version:   cfg.Version,
		logger:    logger,
	}
}
