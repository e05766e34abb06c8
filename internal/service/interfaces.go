package service

import (
	"context"

	"github.com/MKhiriev/trend-digest/models"
)

// NewsSummarizer produces a digest text from collected topic statistics.
// Implemented by ai.Summarizer.
type NewsSummarizer interface {
	Available() bool
	SummarizeNews(ctx context.Context, stats []models.TopicStat, maxNews int) (string, error)
}

// DigestService generates, persists and mirrors digests.
type DigestService interface {
	// GenerateDigest summarizes the topic stats, stores the digest record,
	// writes the enabled report files and mirrors them to remote storage
	// when configured.
	GenerateDigest(ctx context.Context, stats []models.TopicStat) (models.Digest, error)

	// Housekeep applies local and remote retention and, when enabled,
	// pulls recent digests from remote storage.
	Housekeep(ctx context.Context) error
}
