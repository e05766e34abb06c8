// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Snapshot is an immutable capture of every environment variable the
// resolver understands, taken exactly once per [Load] call. Resolution is a
// pure function of (file config, Snapshot): a variable mutated mid-run can
// never produce an internally inconsistent result.
//
// Every field is a *string so that "variable not set" (nil) stays
// distinguishable from "set to some value". Typed interpretation happens in
// the envStr/envBool/envInt accessors, not here.
type Snapshot struct {
	ConfigPath *string `env:"CONFIG_PATH"`

	Timezone *string `env:"TIMEZONE"`

	EnableCrawler *string `env:"ENABLE_CRAWLER"`

	ReportMode          *string `env:"REPORT_MODE"`
	SortByPositionFirst *string `env:"SORT_BY_POSITION_FIRST"`
	ReverseContentOrder *string `env:"REVERSE_CONTENT_ORDER"`
	MaxNewsPerKeyword   *string `env:"MAX_NEWS_PER_KEYWORD"`

	EnableNotification    *string `env:"ENABLE_NOTIFICATION"`
	MaxAccountsPerChannel *string `env:"MAX_ACCOUNTS_PER_CHANNEL"`

	PushWindowEnabled    *string `env:"PUSH_WINDOW_ENABLED"`
	PushWindowOncePerDay *string `env:"PUSH_WINDOW_ONCE_PER_DAY"`
	PushWindowStart      *string `env:"PUSH_WINDOW_START"`
	PushWindowEnd        *string `env:"PUSH_WINDOW_END"`

	StorageBackend      *string `env:"STORAGE_BACKEND"`
	StorageTXTEnabled   *string `env:"STORAGE_TXT_ENABLED"`
	StorageHTMLEnabled  *string `env:"STORAGE_HTML_ENABLED"`
	LocalRetentionDays  *string `env:"LOCAL_RETENTION_DAYS"`
	S3EndpointURL       *string `env:"S3_ENDPOINT_URL"`
	S3BucketName        *string `env:"S3_BUCKET_NAME"`
	S3AccessKeyID       *string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey   *string `env:"S3_SECRET_ACCESS_KEY"`
	S3Region            *string `env:"S3_REGION"`
	RemoteRetentionDays *string `env:"REMOTE_RETENTION_DAYS"`
	PullEnabled         *string `env:"PULL_ENABLED"`
	PullDays            *string `env:"PULL_DAYS"`

	FeishuWebhookURL   *string `env:"FEISHU_WEBHOOK_URL"`
	DingtalkWebhookURL *string `env:"DINGTALK_WEBHOOK_URL"`
	WeworkWebhookURL   *string `env:"WEWORK_WEBHOOK_URL"`
	WeworkMsgType      *string `env:"WEWORK_MSG_TYPE"`
	TelegramBotToken   *string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID     *string `env:"TELEGRAM_CHAT_ID"`
	EmailFrom          *string `env:"EMAIL_FROM"`
	EmailPassword      *string `env:"EMAIL_PASSWORD"`
	EmailTo            *string `env:"EMAIL_TO"`
	EmailSMTPServer    *string `env:"EMAIL_SMTP_SERVER"`
	EmailSMTPPort      *string `env:"EMAIL_SMTP_PORT"`
	NtfyServerURL      *string `env:"NTFY_SERVER_URL"`
	NtfyTopic          *string `env:"NTFY_TOPIC"`
	NtfyToken          *string `env:"NTFY_TOKEN"`
	BarkURL            *string `env:"BARK_URL"`
	SlackWebhookURL    *string `env:"SLACK_WEBHOOK_URL"`
}

// captureEnv reads the process environment into a Snapshot using the
// caarlos0/env library. Unset variables leave their field nil.
func captureEnv() (*Snapshot, error) {
	snap := &Snapshot{}
	if err := env.Parse(snap); err != nil {
		return nil, fmt.Errorf("error capturing environment snapshot: %w", err)
	}

	return snap, nil
}

// envStr reports the string value of a snapshot field. A variable that is
// unset, or set to whitespace only, counts as absent.
func envStr(v *string) (string, bool) {
	if v == nil {
		return "", false
	}

	s := strings.TrimSpace(*v)
	if s == "" {
		return "", false
	}
	return s, true
}

// envBool interprets a snapshot field as a boolean. "true" and "1"
// (case-insensitive) mean true; any other non-empty value means false and
// still counts as an explicit override. Unset or empty means absent.
func envBool(v *string) (bool, bool) {
	s, ok := envStr(v)
	if !ok {
		return false, false
	}

	return strings.EqualFold(s, "true") || s == "1", true
}

// envInt interprets a snapshot field as an integer. A value that does not
// parse behaves exactly like an unset variable: the caller falls through to
// the file value or the default. It never reports an error.
func envInt(v *string) (int, bool) {
	s, ok := envStr(v)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
