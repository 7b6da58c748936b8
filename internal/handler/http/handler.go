package http

import (
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	cfg       config.Server

	metrics *httpMetrics
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		cfg:       cfg,
		metrics:   newHTTPMetrics(),
		traceID:   utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
