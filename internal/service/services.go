package service

import (
	"github.com/MKhiriev/trend-digest/internal/config"
	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/MKhiriev/trend-digest/internal/store"
)

type Services struct {
	DigestService DigestService
}

func NewServices(summarizer NewsSummarizer, storages *store.Storages, cfg *config.Config, logger *logger.Logger) *Services {
	return &Services{
		DigestService: NewDigestService(summarizer, storages, cfg, logger),
	}
}
