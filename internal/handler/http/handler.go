package http

import (
	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/service"
	"github.com/MKhiriev/go-hivemind/internal/utils"
)

// Header names of the hive protocol.
const (
	headerTraceparent = "traceparent"
	headerContentType = "Content-Type"
	headerHash        = "HashSHA256"
	headerAuth        = "Authorization"
)

type Handler struct {
	services *service.Services

	hashKey      string
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A non-empty cfg.HashKey enables the
// integrity header; a non-empty cfg.TokenSignKey protects the manager routes.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	logger.Info().
		Bool("integrity_header", cfg.HashKey != "").
		Bool("manager_auth", cfg.TokenSignKey != "").
		Msg("http handler created")

	return &Handler{
		services:     services,
		hashKey:      cfg.HashKey,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
