// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/MKhiriev/trend-digest/internal/logger"
	"gopkg.in/yaml.v3"
)

// localOverlaySuffix names the optional sibling overlay file merged on top
// of the base config file ("config.yaml" -> "config.local.yaml").
const localOverlaySuffix = ".local"

// rawConfig is the schema of the YAML configuration file. Every leaf is a
// pointer so that a key explicitly set to zero or false stays distinguishable
// from a key that is absent; resolution decides between environment, file and
// default per field.
type rawConfig struct {
	App          rawApp          `yaml:"app"`
	Crawler      rawCrawler      `yaml:"crawler"`
	Report       rawReport       `yaml:"report"`
	Notification rawNotification `yaml:"notification"`
	Weight       rawWeight       `yaml:"weight"`
	Storage      rawStorage      `yaml:"storage"`
	Platforms    []string        `yaml:"platforms"`
}

type rawApp struct {
	VersionCheckURL   *string `yaml:"version_check_url"`
	ShowVersionUpdate *bool   `yaml:"show_version_update"`
	Timezone          *string `yaml:"timezone"`
}

type rawCrawler struct {
	RequestInterval *int    `yaml:"request_interval"`
	UseProxy        *bool   `yaml:"use_proxy"`
	DefaultProxy    *string `yaml:"default_proxy"`
	EnableCrawler   *bool   `yaml:"enable_crawler"`
}

type rawReport struct {
	Mode                *string `yaml:"mode"`
	RankThreshold       *int    `yaml:"rank_threshold"`
	SortByPositionFirst *bool   `yaml:"sort_by_position_first"`
	MaxNewsPerKeyword   *int    `yaml:"max_news_per_keyword"`
	ReverseContentOrder *bool   `yaml:"reverse_content_order"`
}

type rawNotification struct {
	EnableNotification     *bool         `yaml:"enable_notification"`
	MessageBatchSize       *int          `yaml:"message_batch_size"`
	DingtalkBatchSize      *int          `yaml:"dingtalk_batch_size"`
	FeishuBatchSize        *int          `yaml:"feishu_batch_size"`
	BarkBatchSize          *int          `yaml:"bark_batch_size"`
	SlackBatchSize         *int          `yaml:"slack_batch_size"`
	BatchSendInterval      *float64      `yaml:"batch_send_interval"`
	FeishuMessageSeparator *string       `yaml:"feishu_message_separator"`
	MaxAccountsPerChannel  *int          `yaml:"max_accounts_per_channel"`
	Webhooks               rawWebhooks   `yaml:"webhooks"`
	PushWindow             rawPushWindow `yaml:"push_window"`
}

type rawWebhooks struct {
	FeishuURL        *string `yaml:"feishu_url"`
	DingtalkURL      *string `yaml:"dingtalk_url"`
	WeworkURL        *string `yaml:"wework_url"`
	WeworkMsgType    *string `yaml:"wework_msg_type"`
	TelegramBotToken *string `yaml:"telegram_bot_token"`
	TelegramChatID   *string `yaml:"telegram_chat_id"`
	EmailFrom        *string `yaml:"email_from"`
	EmailPassword    *string `yaml:"email_password"`
	EmailTo          *string `yaml:"email_to"`
	EmailSMTPServer  *string `yaml:"email_smtp_server"`
	EmailSMTPPort    *string `yaml:"email_smtp_port"`
	NtfyServerURL    *string `yaml:"ntfy_server_url"`
	NtfyTopic        *string `yaml:"ntfy_topic"`
	NtfyToken        *string `yaml:"ntfy_token"`
	BarkURL          *string `yaml:"bark_url"`
	SlackWebhookURL  *string `yaml:"slack_webhook_url"`
}

type rawPushWindow struct {
	Enabled    *bool        `yaml:"enabled"`
	TimeRange  rawTimeRange `yaml:"time_range"`
	OncePerDay *bool        `yaml:"once_per_day"`
}

type rawTimeRange struct {
	Start *string `yaml:"start"`
	End   *string `yaml:"end"`
}

type rawWeight struct {
	RankWeight      *float64 `yaml:"rank_weight"`
	FrequencyWeight *float64 `yaml:"frequency_weight"`
	HotnessWeight   *float64 `yaml:"hotness_weight"`
}

type rawStorage struct {
	Backend *string           `yaml:"backend"`
	Formats rawStorageFormats `yaml:"formats"`
	Local   rawStorageLocal   `yaml:"local"`
	Remote  rawStorageRemote  `yaml:"remote"`
	Pull    rawStoragePull    `yaml:"pull"`
}

type rawStorageFormats struct {
	SQLite *bool `yaml:"sqlite"`
	TXT    *bool `yaml:"txt"`
	HTML   *bool `yaml:"html"`
}

type rawStorageLocal struct {
	DataDir       *string `yaml:"data_dir"`
	RetentionDays *int    `yaml:"retention_days"`
}

type rawStorageRemote struct {
	EndpointURL     *string `yaml:"endpoint_url"`
	BucketName      *string `yaml:"bucket_name"`
	AccessKeyID     *string `yaml:"access_key_id"`
	SecretAccessKey *string `yaml:"secret_access_key"`
	Region          *string `yaml:"region"`
	RetentionDays   *int    `yaml:"retention_days"`
}

type rawStoragePull struct {
	Enabled *bool `yaml:"enabled"`
	Days    *int  `yaml:"days"`
}

// readRawConfig loads the base config file and, when present, merges the
// sibling ".local" overlay on top of it. A missing base file is the single
// fatal condition of the whole resolution pipeline; malformed YAML degrades
// to an empty section set with a warning.
func readRawConfig(path string, log *logger.Logger) (*rawConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	raw := &rawConfig{}
	if err = yaml.Unmarshal(data, raw); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("malformed config file, continuing with defaults")
		raw = &rawConfig{}
	}

	overlay, ok := readLocalOverlay(path, log)
	if !ok {
		return raw, nil
	}

	// Overlay values win; empty overlay fields are filled from the base.
	if err = mergo.Merge(overlay, *raw); err != nil {
		log.Warn().Err(err).Msg("error merging local config overlay, using base config")
		return raw, nil
	}

	return overlay, nil
}

// readLocalOverlay loads "<name>.local.<ext>" next to the base config file.
// The overlay is optional and never fatal.
func readLocalOverlay(basePath string, log *logger.Logger) (*rawConfig, bool) {
	ext := filepath.Ext(basePath)
	overlayPath := strings.TrimSuffix(basePath, ext) + localOverlaySuffix + ext

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return nil, false
	}

	overlay := &rawConfig{}
	if err = yaml.Unmarshal(data, overlay); err != nil {
		log.Warn().Err(err).Str("path", overlayPath).Msg("malformed local config overlay, ignoring it")
		return nil, false
	}

	log.Debug().Str("path", overlayPath).Msg("local config overlay loaded")
	return overlay, true
}
