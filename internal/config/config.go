// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/trend-digest/internal/logger"
)

// defaultConfigPath is used when neither the -c flag nor CONFIG_PATH name a
// config file.
const defaultConfigPath = "config/config.yaml"

// Config is the fully resolved, immutable configuration of one process run.
// It is built exactly once by [Load] and afterwards shared read-only by all
// consumers; no locking is required.
type Config struct {
	// App holds application-level settings such as timezone and version
	// check behaviour.
	App AppConfig

	// Crawler holds headline-crawling settings.
	Crawler CrawlerConfig

	// Report holds digest-report shaping settings.
	Report ReportConfig

	// Notification holds channel-independent delivery settings, including
	// the per-channel byte limits and the account cap.
	Notification NotificationConfig

	// PushWindow restricts delivery to a daily time window.
	PushWindow PushWindowConfig

	// Weight holds the ranking weights used when ordering topics.
	Weight WeightConfig

	// Storage holds the local, remote and format settings for persisted
	// digests.
	Storage StorageConfig

	// Webhooks holds the parsed, validated per-channel accounts.
	Webhooks WebhookConfig

	// Platforms is the passthrough list of source platform identifiers.
	Platforms []string

	// Channels lists every configured notification channel in a fixed
	// order, with its configuration source and capped account count.
	Channels []ChannelStatus
}

// AppConfig holds application-level settings.
type AppConfig struct {
	VersionCheckURL   string
	ShowVersionUpdate bool
	// Timezone is an IANA zone name. Env: TIMEZONE.
	Timezone string
}

// CrawlerConfig holds headline-crawling settings.
type CrawlerConfig struct {
	// RequestInterval is the pause between source requests, in milliseconds.
	RequestInterval int
	UseProxy        bool
	DefaultProxy    string
	// EnableCrawler toggles crawling entirely. Env: ENABLE_CRAWLER.
	EnableCrawler bool
}

// ReportConfig holds digest-report shaping settings.
type ReportConfig struct {
	// Mode selects the report flavour (e.g. "daily"). Env: REPORT_MODE.
	Mode          string
	RankThreshold int
	// SortByPositionFirst orders topics by list position before frequency.
	// Env: SORT_BY_POSITION_FIRST.
	SortByPositionFirst bool
	// MaxNewsPerKeyword caps headlines per keyword; 0 means unlimited.
	// Env: MAX_NEWS_PER_KEYWORD (an override of 0 falls through).
	MaxNewsPerKeyword int
	// ReverseContentOrder reverses the rendered topic order.
	// Env: REVERSE_CONTENT_ORDER.
	ReverseContentOrder bool
}

// NotificationConfig holds channel-independent delivery settings. The batch
// sizes are the per-channel payload byte limits; chunking itself happens in
// the dispatchers.
type NotificationConfig struct {
	// EnableNotification toggles all delivery. Env: ENABLE_NOTIFICATION.
	EnableNotification bool
	MessageBatchSize   int
	DingtalkBatchSize  int
	FeishuBatchSize    int
	BarkBatchSize      int
	SlackBatchSize     int
	// BatchSendInterval is the pause between batches, in seconds.
	BatchSendInterval      float64
	FeishuMessageSeparator string
	// MaxAccountsPerChannel caps the reported account count per channel.
	// Env: MAX_ACCOUNTS_PER_CHANNEL (an override of 0 falls through).
	MaxAccountsPerChannel int
}

// PushWindowConfig restricts delivery to a daily time window.
type PushWindowConfig struct {
	// Enabled toggles the window. Env: PUSH_WINDOW_ENABLED.
	Enabled bool
	// Start and End are "HH:MM" local times.
	// Env: PUSH_WINDOW_START, PUSH_WINDOW_END.
	Start string
	End   string
	// OncePerDay limits delivery to one push inside the window.
	// Env: PUSH_WINDOW_ONCE_PER_DAY.
	OncePerDay bool
}

// WeightConfig holds the ranking weights used when ordering topics.
type WeightConfig struct {
	RankWeight      float64
	FrequencyWeight float64
	HotnessWeight   float64
}

// StorageConfig holds the local, remote and format settings for persisted
// digests.
type StorageConfig struct {
	// Backend selects the storage mode: "local", "remote" or "auto".
	// Env: STORAGE_BACKEND.
	Backend string
	Formats StorageFormats
	Local   LocalStorageConfig
	Remote  RemoteStorageConfig
	Pull    PullConfig
}

// StorageFormats toggles the digest output formats.
type StorageFormats struct {
	SQLite bool
	// TXT and HTML are env-overridable: STORAGE_TXT_ENABLED,
	// STORAGE_HTML_ENABLED.
	TXT  bool
	HTML bool
}

// LocalStorageConfig holds the on-disk storage settings.
type LocalStorageConfig struct {
	DataDir string
	// RetentionDays of 0 keeps everything forever.
	// Env: LOCAL_RETENTION_DAYS (an override of 0 falls through).
	RetentionDays int
}

// RemoteStorageConfig holds the S3-compatible storage settings.
// Env: S3_ENDPOINT_URL, S3_BUCKET_NAME, S3_ACCESS_KEY_ID,
// S3_SECRET_ACCESS_KEY, S3_REGION, REMOTE_RETENTION_DAYS.
type RemoteStorageConfig struct {
	EndpointURL     string
	BucketName      string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	RetentionDays   int
}

// PullConfig controls downloading recent digests from remote storage.
// Env: PULL_ENABLED, PULL_DAYS.
type PullConfig struct {
	Enabled bool
	Days    int
}

// Load resolves the effective configuration for this process run:
//
//  1. load the optional .env file (never overwriting real environment);
//  2. capture the environment snapshot once;
//  3. read the YAML config file (its absence is the only fatal error) and
//     merge the optional local overlay on top;
//  4. run every section resolver against (file section, snapshot);
//  5. parse and validate the multi-account channels and cap their counts.
//
// An empty path falls back to CONFIG_PATH, then to "config/config.yaml".
func Load(path string, log *logger.Logger) (*Config, error) {
	loadLocalEnv(log)

	snap, err := captureEnv()
	if err != nil {
		log.Warn().Err(err).Msg("error capturing environment snapshot, resolving from file only")
		snap = &Snapshot{}
	}

	if path == "" {
		if envPath, ok := envStr(snap.ConfigPath); ok {
			path = envPath
		} else {
			path = defaultConfigPath
		}
	}

	raw, err := readRawConfig(path, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Msg("config file loaded")

	cfg := &Config{
		App:          resolveApp(raw.App, snap),
		Crawler:      resolveCrawler(raw.Crawler, snap),
		Report:       resolveReport(raw.Report, snap),
		Notification: resolveNotification(raw.Notification, snap),
		PushWindow:   resolvePushWindow(raw.Notification.PushWindow, snap),
		Weight:       resolveWeight(raw.Weight),
		Storage:      resolveStorage(raw.Storage, snap),
		Platforms:    raw.Platforms,
	}

	cfg.Webhooks, cfg.Channels = resolveWebhooks(
		raw.Notification.Webhooks, snap, cfg.Notification.MaxAccountsPerChannel, log)

	return cfg, nil
}
