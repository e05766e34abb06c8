package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/MKhiriev/trend-digest/migrations"
	"github.com/MKhiriev/trend-digest/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type sqliteDigestStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLiteDigestStore opens (creating when necessary) the digest database
// at dbPath and applies pending migrations.
func NewSQLiteDigestStore(dbPath string, log *logger.Logger) (DigestStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create digest db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open digest db: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping digest db: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, err
	}

	log.Debug().Str("path", dbPath).Msg("digest db opened")

	return &sqliteDigestStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}, nil
}

func (s *sqliteDigestStore) SaveDigest(ctx context.Context, digest models.Digest) (models.Digest, error) {
	if digest.ID == "" {
		digest.ID = uuid.NewString()
	}
	if digest.CreatedAt.IsZero() {
		digest.CreatedAt = time.Now().UTC()
	}
	if digest.Date == "" {
		digest.Date = digest.CreatedAt.Format(time.DateOnly)
	}

	query, args, err := s.builder.
		Insert(digest.TableName()).
		Columns("id", "date", "mode", "content", "created_at").
		Values(digest.ID, digest.Date, digest.Mode, digest.Content, digest.CreatedAt).
		ToSql()
	if err != nil {
		return models.Digest{}, fmt.Errorf("build insert digest query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return models.Digest{}, fmt.Errorf("insert digest: %w", err)
	}

	return digest, nil
}

func (s *sqliteDigestStore) ListByDate(ctx context.Context, date string) ([]models.Digest, error) {
	query, args, err := s.builder.
		Select("id", "date", "mode", "content", "created_at").
		From(models.Digest{}.TableName()).
		Where(sq.Eq{"date": date}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list digests query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list digests: %w", err)
	}
	defer rows.Close()

	var digests []models.Digest
	for rows.Next() {
		var d models.Digest
		if err = rows.Scan(&d.ID, &d.Date, &d.Mode, &d.Content, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan digest row: %w", err)
		}
		digests = append(digests, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate digest rows: %w", err)
	}

	return digests, nil
}

func (s *sqliteDigestStore) DeleteOlderThan(ctx context.Context, retentionDays int) (int64, error) {
	// retention 0 means keep forever
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	query, args, err := s.builder.
		Delete(models.Digest{}.TableName()).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete digests query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete old digests: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted digests: %w", err)
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Int("retention_days", retentionDays).Msg("old digests removed")
	}

	return deleted, nil
}

func (s *sqliteDigestStore) Close() error {
	return s.db.Close()
}
