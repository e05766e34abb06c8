package store

import (
	"path/filepath"

	"github.com/MKhiriev/trend-digest/internal/config"
	"github.com/MKhiriev/trend-digest/internal/logger"
)

// digestDBFile is the SQLite database file name inside the data directory.
const digestDBFile = "digests.db"

// Storages bundles every active persistence backend for one process run.
// Fields are nil when the corresponding backend is disabled or not
// configured.
type Storages struct {
	Digests DigestStore
	Reports *ReportFiles
	Remote  *RemoteStore
}

// NewStorages builds the persistence backends selected by the resolved
// storage configuration. Backend "local" never dials remote storage,
// "remote" requires it, and "auto" uses it when fully configured.
func NewStorages(cfg config.StorageConfig, log *logger.Logger) (*Storages, error) {
	s := &Storages{
		Reports: NewReportFiles(cfg, log),
	}

	if cfg.Formats.SQLite {
		digests, err := NewSQLiteDigestStore(localDBPath(cfg), log)
		if err != nil {
			return nil, err
		}
		s.Digests = digests
	}

	if cfg.Backend != "local" && remoteConfigured(cfg.Remote) {
		remote, err := NewRemoteStore(cfg.Remote, log)
		if err != nil {
			// "auto" degrades to local-only; an explicit "remote" backend
			// surfaces the failure.
			if cfg.Backend == "remote" {
				return nil, err
			}
			log.Warn().Err(err).Msg("remote storage unavailable, continuing local-only")
		} else {
			s.Remote = remote
		}
	} else if cfg.Backend == "remote" {
		log.Warn().Msg("remote backend selected but not fully configured, continuing local-only")
	}

	return s, nil
}

// Close releases the underlying resources.
func (s *Storages) Close() error {
	if s.Digests == nil {
		return nil
	}
	return s.Digests.Close()
}

func localDBPath(cfg config.StorageConfig) string {
	return filepath.Join(cfg.Local.DataDir, digestDBFile)
}

func remoteConfigured(cfg config.RemoteStorageConfig) bool {
	return cfg.EndpointURL != "" &&
		cfg.BucketName != "" &&
		cfg.AccessKeyID != "" &&
		cfg.SecretAccessKey != ""
}
