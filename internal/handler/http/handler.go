package http

import (
	"time"

	"github.com/MKhiriev/go-user-records/internal/config"
	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	logger.Info().Dur("request_timeout", timeout).Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: timeout,
		logger:         logger,
	}
}
