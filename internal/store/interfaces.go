// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists generated digests: a SQLite record store, plain
// txt/html report files under a dated directory layout, and an optional
// S3-compatible remote mirror. Which pieces are active follows the resolved
// storage configuration.
package store

import (
	"context"

	"github.com/MKhiriev/trend-digest/models"
)

// DigestStore persists and queries digest records.
type DigestStore interface {
	// SaveDigest inserts the digest, filling ID and CreatedAt when empty,
	// and returns the stored record.
	SaveDigest(ctx context.Context, digest models.Digest) (models.Digest, error)

	// ListByDate returns every digest of one "YYYY-MM-DD" day, oldest first.
	ListByDate(ctx context.Context, date string) ([]models.Digest, error)

	// DeleteOlderThan removes digests created more than retentionDays ago
	// and reports the number deleted. retentionDays <= 0 keeps everything.
	DeleteOlderThan(ctx context.Context, retentionDays int) (int64, error)

	// Close releases the underlying database handle.
	Close() error
}
