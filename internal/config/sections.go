package config

// Per-field defaults, applied when neither the environment nor the config
// file provide a value.
const (
	defaultTimezone = "Asia/Shanghai"

	defaultRequestInterval = 100
	defaultEnableCrawler   = true

	defaultReportMode    = "daily"
	defaultRankThreshold = 10

	defaultMessageBatchSize       = 4000
	defaultDingtalkBatchSize      = 20000
	defaultFeishuBatchSize        = 29000
	defaultBarkBatchSize          = 3600
	defaultSlackBatchSize         = 4000
	defaultBatchSendInterval      = 1.0
	defaultFeishuSeparator        = "---"
	defaultMaxAccountsPerChannel  = 3
	defaultEnableNotification     = true
	defaultShowVersionUpdate      = true
	defaultPushWindowStart        = "08:00"
	defaultPushWindowEnd          = "22:00"
	defaultPushWindowOncePerDay   = true
	defaultWeight                 = 1.0
	defaultStorageBackend         = "auto"
	defaultStorageDataDir         = "output"
	defaultPullDays               = 7
	defaultNtfyServerURL          = "https://ntfy.sh"
	defaultWeworkMsgType          = "markdown"
)

// Each resolver below is a pure function of (file section, snapshot) and
// never reads another section.

func resolveApp(raw rawApp, snap *Snapshot) AppConfig {
	timezone, _ := resolveString(snap.Timezone, raw.Timezone, defaultTimezone)

	return AppConfig{
		VersionCheckURL:   strOr(raw.VersionCheckURL, ""),
		ShowVersionUpdate: boolOr(raw.ShowVersionUpdate, defaultShowVersionUpdate),
		Timezone:          timezone,
	}
}

func resolveCrawler(raw rawCrawler, snap *Snapshot) CrawlerConfig {
	enabled, _ := resolveBool(snap.EnableCrawler, raw.EnableCrawler, defaultEnableCrawler)

	return CrawlerConfig{
		RequestInterval: intOr(raw.RequestInterval, defaultRequestInterval),
		UseProxy:        boolOr(raw.UseProxy, false),
		DefaultProxy:    strOr(raw.DefaultProxy, ""),
		EnableCrawler:   enabled,
	}
}

func resolveReport(raw rawReport, snap *Snapshot) ReportConfig {
	mode, _ := resolveString(snap.ReportMode, raw.Mode, defaultReportMode)
	sortByPosition, _ := resolveBool(snap.SortByPositionFirst, raw.SortByPositionFirst, false)
	reverseOrder, _ := resolveBool(snap.ReverseContentOrder, raw.ReverseContentOrder, false)

	// 0 is a meaningful value here ("no limit"), so an environment override
	// of 0 falls through to the file value.
	maxNews, _ := resolveIntZeroAsUnset(snap.MaxNewsPerKeyword, raw.MaxNewsPerKeyword, 0)

	return ReportConfig{
		Mode:                mode,
		RankThreshold:       intOr(raw.RankThreshold, defaultRankThreshold),
		SortByPositionFirst: sortByPosition,
		MaxNewsPerKeyword:   maxNews,
		ReverseContentOrder: reverseOrder,
	}
}

func resolveNotification(raw rawNotification, snap *Snapshot) NotificationConfig {
	enabled, _ := resolveBool(snap.EnableNotification, raw.EnableNotification, defaultEnableNotification)
	maxAccounts, _ := resolveIntZeroAsUnset(
		snap.MaxAccountsPerChannel, raw.MaxAccountsPerChannel, defaultMaxAccountsPerChannel)

	return NotificationConfig{
		EnableNotification:     enabled,
		MessageBatchSize:       intOr(raw.MessageBatchSize, defaultMessageBatchSize),
		DingtalkBatchSize:      intOr(raw.DingtalkBatchSize, defaultDingtalkBatchSize),
		FeishuBatchSize:        intOr(raw.FeishuBatchSize, defaultFeishuBatchSize),
		BarkBatchSize:          intOr(raw.BarkBatchSize, defaultBarkBatchSize),
		SlackBatchSize:         intOr(raw.SlackBatchSize, defaultSlackBatchSize),
		BatchSendInterval:      floatOr(raw.BatchSendInterval, defaultBatchSendInterval),
		FeishuMessageSeparator: strOr(raw.FeishuMessageSeparator, defaultFeishuSeparator),
		MaxAccountsPerChannel:  maxAccounts,
	}
}

func resolvePushWindow(raw rawPushWindow, snap *Snapshot) PushWindowConfig {
	enabled, _ := resolveBool(snap.PushWindowEnabled, raw.Enabled, false)
	oncePerDay, _ := resolveBool(snap.PushWindowOncePerDay, raw.OncePerDay, defaultPushWindowOncePerDay)
	start, _ := resolveString(snap.PushWindowStart, raw.TimeRange.Start, defaultPushWindowStart)
	end, _ := resolveString(snap.PushWindowEnd, raw.TimeRange.End, defaultPushWindowEnd)

	return PushWindowConfig{
		Enabled:    enabled,
		Start:      start,
		End:        end,
		OncePerDay: oncePerDay,
	}
}

func resolveWeight(raw rawWeight) WeightConfig {
	return WeightConfig{
		RankWeight:      floatOr(raw.RankWeight, defaultWeight),
		FrequencyWeight: floatOr(raw.FrequencyWeight, defaultWeight),
		HotnessWeight:   floatOr(raw.HotnessWeight, defaultWeight),
	}
}

func resolveStorage(raw rawStorage, snap *Snapshot) StorageConfig {
	backend, _ := resolveString(snap.StorageBackend, raw.Backend, defaultStorageBackend)
	txtEnabled, _ := resolveBool(snap.StorageTXTEnabled, raw.Formats.TXT, true)
	htmlEnabled, _ := resolveBool(snap.StorageHTMLEnabled, raw.Formats.HTML, true)
	localRetention, _ := resolveIntZeroAsUnset(snap.LocalRetentionDays, raw.Local.RetentionDays, 0)

	endpointURL, _ := resolveString(snap.S3EndpointURL, raw.Remote.EndpointURL, "")
	bucketName, _ := resolveString(snap.S3BucketName, raw.Remote.BucketName, "")
	accessKeyID, _ := resolveString(snap.S3AccessKeyID, raw.Remote.AccessKeyID, "")
	secretAccessKey, _ := resolveString(snap.S3SecretAccessKey, raw.Remote.SecretAccessKey, "")
	region, _ := resolveString(snap.S3Region, raw.Remote.Region, "")
	remoteRetention, _ := resolveIntZeroAsUnset(snap.RemoteRetentionDays, raw.Remote.RetentionDays, 0)

	pullEnabled, _ := resolveBool(snap.PullEnabled, raw.Pull.Enabled, false)
	pullDays, _ := resolveIntZeroAsUnset(snap.PullDays, raw.Pull.Days, defaultPullDays)

	return StorageConfig{
		Backend: backend,
		Formats: StorageFormats{
			SQLite: boolOr(raw.Formats.SQLite, true),
			TXT:    txtEnabled,
			HTML:   htmlEnabled,
		},
		Local: LocalStorageConfig{
			DataDir:       strOr(raw.Local.DataDir, defaultStorageDataDir),
			RetentionDays: localRetention,
		},
		Remote: RemoteStorageConfig{
			EndpointURL:     endpointURL,
			BucketName:      bucketName,
			AccessKeyID:     accessKeyID,
			SecretAccessKey: secretAccessKey,
			Region:          region,
			RetentionDays:   remoteRetention,
		},
		Pull: PullConfig{
			Enabled: pullEnabled,
			Days:    pullDays,
		},
	}
}
