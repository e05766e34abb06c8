package store

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/trend-digest/internal/config"
	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/MKhiriev/trend-digest/models"
)

// htmlReportTemplate wraps a digest body in a minimal standalone page.
var htmlReportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>trend digest {{.Date}}</title>
</head>
<body>
<h1>Trend digest {{.Date}} ({{.Mode}})</h1>
<pre>{{.Content}}</pre>
</body>
</html>
`))

// ReportFiles writes digest reports as txt/html files under
// <data_dir>/<YYYY-MM-DD>/ and removes dated directories past retention.
type ReportFiles struct {
	dataDir string
	txt     bool
	html    bool
	logger  *logger.Logger
}

// NewReportFiles constructs a ReportFiles honoring the resolved format
// toggles.
func NewReportFiles(cfg config.StorageConfig, log *logger.Logger) *ReportFiles {
	return &ReportFiles{
		dataDir: cfg.Local.DataDir,
		txt:     cfg.Formats.TXT,
		html:    cfg.Formats.HTML,
		logger:  log,
	}
}

// Write renders the digest into every enabled format and returns the paths
// written. With all formats disabled it writes nothing.
func (r *ReportFiles) Write(digest models.Digest) ([]string, error) {
	if !r.txt && !r.html {
		return nil, nil
	}

	dir := filepath.Join(r.dataDir, digest.Date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	base := reportBaseName(digest)
	var written []string

	if r.txt {
		path := filepath.Join(dir, base+".txt")
		if err := os.WriteFile(path, []byte(digest.Content), 0o644); err != nil {
			return written, fmt.Errorf("write txt report: %w", err)
		}
		written = append(written, path)
	}

	if r.html {
		path := filepath.Join(dir, base+".html")
		file, err := os.Create(path)
		if err != nil {
			return written, fmt.Errorf("create html report: %w", err)
		}
		if err = htmlReportTemplate.Execute(file, digest); err != nil {
			file.Close()
			return written, fmt.Errorf("render html report: %w", err)
		}
		if err = file.Close(); err != nil {
			return written, fmt.Errorf("close html report: %w", err)
		}
		written = append(written, path)
	}

	r.logger.Debug().Strs("paths", written).Msg("report files written")
	return written, nil
}

// Cleanup removes dated report directories older than retentionDays and
// reports how many were removed. retentionDays <= 0 keeps everything.
// Entries whose name is not a date are left alone.
func (r *ReportFiles) Cleanup(retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read report data dir: %w", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	removed := 0

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		day, err := time.Parse(time.DateOnly, entry.Name())
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			continue
		}

		if err = os.RemoveAll(filepath.Join(r.dataDir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove expired report dir %s: %w", entry.Name(), err)
		}
		removed++
	}

	if removed > 0 {
		r.logger.Info().Int("removed", removed).Int("retention_days", retentionDays).Msg("expired report dirs removed")
	}

	return removed, nil
}

// reportBaseName builds a stable file name from the digest mode and its
// creation time.
func reportBaseName(digest models.Digest) string {
	mode := digest.Mode
	if mode == "" {
		mode = "report"
	}
	stamp := digest.CreatedAt.UTC().Format("150405")
	return strings.ToLower(mode) + "-" + stamp
}
