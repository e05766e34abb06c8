package store

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/trend-digest/internal/config"
	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// RemoteStore mirrors digest artifacts to an S3-compatible bucket. Objects
// are laid out as "<YYYY-MM-DD>/<file>", mirroring the local report layout.
type RemoteStore struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewRemoteStore dials the S3-compatible endpoint from the resolved remote
// storage settings.
func NewRemoteStore(cfg config.RemoteStorageConfig, log *logger.Logger) (*RemoteStore, error) {
	endpoint, err := url.Parse(cfg.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("parse s3 endpoint url: %w", err)
	}

	host := endpoint.Host
	if host == "" {
		// endpoint given without a scheme
		host = endpoint.Path
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: endpoint.Scheme != "http",
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return &RemoteStore{client: client, bucket: cfg.BucketName, logger: log}, nil
}

// Upload stores the local file under "<date>/<basename>".
func (r *RemoteStore) Upload(ctx context.Context, localPath, date string) error {
	objectName := path.Join(date, filepath.Base(localPath))

	if _, err := r.client.FPutObject(ctx, r.bucket, objectName, localPath, minio.PutObjectOptions{}); err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}

	r.logger.Debug().Str("object", objectName).Msg("digest artifact uploaded")
	return nil
}

// Pull downloads every object of the last days report days into destDir,
// keeping the dated layout, and returns the number of files fetched.
func (r *RemoteStore) Pull(ctx context.Context, days int, destDir string) (int, error) {
	if days <= 0 {
		return 0, nil
	}

	fetched := 0
	today := time.Now().UTC()

	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i).Format(time.DateOnly)

		for object := range r.client.ListObjects(ctx, r.bucket, minio.ListObjectsOptions{Prefix: date + "/", Recursive: true}) {
			if object.Err != nil {
				return fetched, fmt.Errorf("list remote objects for %s: %w", date, object.Err)
			}

			localPath := filepath.Join(destDir, filepath.FromSlash(object.Key))
			if err := r.client.FGetObject(ctx, r.bucket, object.Key, localPath, minio.GetObjectOptions{}); err != nil {
				return fetched, fmt.Errorf("download %s: %w", object.Key, err)
			}
			fetched++
		}
	}

	if fetched > 0 {
		r.logger.Info().Int("files", fetched).Int("days", days).Msg("remote digests pulled")
	}
	return fetched, nil
}

// Cleanup removes objects whose dated prefix is older than retentionDays and
// reports how many were removed. retentionDays <= 0 keeps everything.
func (r *RemoteStore) Cleanup(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	removed := 0

	for object := range r.client.ListObjects(ctx, r.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return removed, fmt.Errorf("list remote objects: %w", object.Err)
		}

		datePart, _, ok := strings.Cut(object.Key, "/")
		if !ok {
			continue
		}
		day, err := time.Parse(time.DateOnly, datePart)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			continue
		}

		if err = r.client.RemoveObject(ctx, r.bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("remove %s: %w", object.Key, err)
		}
		removed++
	}

	if removed > 0 {
		r.logger.Info().Int("removed", removed).Int("retention_days", retentionDays).Msg("expired remote digests removed")
	}
	return removed, nil
}
