// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/trend-digest/internal/config"
	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/MKhiriev/trend-digest/internal/store"
	"github.com/MKhiriev/trend-digest/models"
)

type digestService struct {
	summarizer NewsSummarizer
	storages   *store.Storages
	cfg        *config.Config
	logger     *logger.Logger
}

// NewDigestService wires the summarizer and storages behind the
// DigestService interface.
func NewDigestService(summarizer NewsSummarizer, storages *store.Storages, cfg *config.Config, log *logger.Logger) DigestService {
	return &digestService{
		summarizer: summarizer,
		storages:   storages,
		cfg:        cfg,
		logger:     log,
	}
}

func (s *digestService) GenerateDigest(ctx context.Context, stats []models.TopicStat) (models.Digest, error) {
	content, err := s.summarizer.SummarizeNews(ctx, stats, s.cfg.Report.MaxNewsPerKeyword)
	if err != nil {
		return models.Digest{}, fmt.Errorf("generate digest: %w", err)
	}

	digest := models.Digest{
		Date:      time.Now().UTC().Format(time.DateOnly),
		Mode:      s.cfg.Report.Mode,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if s.storages.Digests != nil {
		digest, err = s.storages.Digests.SaveDigest(ctx, digest)
		if err != nil {
			return models.Digest{}, err
		}
	}

	paths, err := s.storages.Reports.Write(digest)
	if err != nil {
		return models.Digest{}, err
	}

	if s.storages.Remote != nil {
		for _, path := range paths {
			if err = s.storages.Remote.Upload(ctx, path, digest.Date); err != nil {
				// remote mirroring is best effort, the digest is already
				// stored locally
				s.logger.Warn().Err(err).Str("path", path).Msg("error mirroring report to remote storage")
			}
		}
	}

	s.logger.Info().Str("id", digest.ID).Str("date", digest.Date).Msg("digest generated")
	return digest, nil
}

func (s *digestService) Housekeep(ctx context.Context) error {
	if s.storages.Digests != nil {
		if _, err := s.storages.Digests.DeleteOlderThan(ctx, s.cfg.Storage.Local.RetentionDays); err != nil {
			return err
		}
	}

	if _, err := s.storages.Reports.Cleanup(s.cfg.Storage.Local.RetentionDays); err != nil {
		return err
	}

	if s.storages.Remote != nil {
		if _, err := s.storages.Remote.Cleanup(ctx, s.cfg.Storage.Remote.RetentionDays); err != nil {
			return err
		}

		if s.cfg.Storage.Pull.Enabled {
			if _, err := s.storages.Remote.Pull(ctx, s.cfg.Storage.Pull.Days, s.cfg.Storage.Local.DataDir); err != nil {
				return err
			}
		}
	}

	return nil
}
