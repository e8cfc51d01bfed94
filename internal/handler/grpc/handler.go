package grpc

import (
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/service"
)

// Handler is the root gRPC transport handler. It serves the Hive service
// and shares the coordinator with the HTTP transport.
type Handler struct {
	// services provides the coordinator.
	services *service.Services

	// logger is the parent of every per-call logger.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
