// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile drops a config file into a fresh temp dir and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
	assert.Nil(t, cfg)
}

func TestLoad_DefaultsOnEmptyFile(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, err := Load(path, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, defaultTimezone, cfg.App.Timezone)
	assert.Equal(t, defaultReportMode, cfg.Report.Mode)
	assert.True(t, cfg.Crawler.EnableCrawler)
	assert.True(t, cfg.Notification.EnableNotification)
	assert.Equal(t, defaultMaxAccountsPerChannel, cfg.Notification.MaxAccountsPerChannel)
	assert.Equal(t, defaultStorageDataDir, cfg.Storage.Local.DataDir)
	assert.Equal(t, noChannelSummary, cfg.ChannelSummary())
}

func TestLoad_MalformedFileDegradesToDefaults(t *testing.T) {
	path := writeConfigFile(t, "report: [unclosed")

	cfg, err := Load(path, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, defaultReportMode, cfg.Report.Mode)
}

func TestLoad_FileValuesAndChannelSummary(t *testing.T) {
	path := writeConfigFile(t, `
app:
  timezone: "UTC"
report:
  mode: "current"
notification:
  webhooks:
    feishu_url: "u1,u2"
platforms:
  - zhihu
  - weibo
`)

	cfg, err := Load(path, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, "current", cfg.Report.Mode)
	assert.Equal(t, []string{"zhihu", "weibo"}, cfg.Platforms)
	assert.Equal(t, []string{"u1", "u2"}, cfg.Webhooks.FeishuURLs)

	expected := "feishu: source=file, 2 accounts\nmax accounts per channel: 3"
	assert.Equal(t, expected, cfg.ChannelSummary())
}

func TestLoad_EnvOverridesFileChannel(t *testing.T) {
	path := writeConfigFile(t, `
notification:
  webhooks:
    feishu_url: "u1,u2"
`)
	t.Setenv("FEISHU_WEBHOOK_URL", "env-url")

	cfg, err := Load(path, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, []string{"env-url"}, cfg.Webhooks.FeishuURLs)

	expected := "feishu: source=environment, 1 account\nmax accounts per channel: 3"
	assert.Equal(t, expected, cfg.ChannelSummary())
}

func TestLoad_AccountCountCapped(t *testing.T) {
	path := writeConfigFile(t, `
notification:
  webhooks:
    slack_webhook_url: "a,b,c,d,e"
`)
	t.Setenv("MAX_ACCOUNTS_PER_CHANNEL", "3")

	cfg, err := Load(path, logger.Nop())

	require.NoError(t, err)
	require.Len(t, cfg.Channels, 1)
	assert.Equal(t, 3, cfg.Channels[0].Count)
	assert.Len(t, cfg.Webhooks.SlackURLs, 5, "cap applies to the reported count only")
}

func TestLoad_EnvExplicitFalseWins(t *testing.T) {
	path := writeConfigFile(t, `
notification:
  enable_notification: true
`)
	t.Setenv("ENABLE_NOTIFICATION", "false")

	cfg, err := Load(path, logger.Nop())

	require.NoError(t, err)
	assert.False(t, cfg.Notification.EnableNotification)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeConfigFile(t, `
app:
  timezone: "UTC"
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("", logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.App.Timezone)
}

func TestLoad_LocalOverlayWins(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "config.yaml")
	overlay := filepath.Join(dir, "config.local.yaml")

	require.NoError(t, os.WriteFile(base, []byte(`
app:
  timezone: "UTC"
report:
  mode: "daily"
`), 0o644))
	require.NoError(t, os.WriteFile(overlay, []byte(`
report:
  mode: "current"
`), 0o644))

	cfg, err := Load(base, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "current", cfg.Report.Mode, "overlay value wins")
	assert.Equal(t, "UTC", cfg.App.Timezone, "base value kept where overlay is silent")
}

func TestLoad_TelegramMismatchNeverFatal(t *testing.T) {
	path := writeConfigFile(t, `
notification:
  webhooks:
    telegram_bot_token: "t1,t2"
    telegram_chat_id: "c1"
`)

	cfg, err := Load(path, logger.Nop())

	require.NoError(t, err)
	assert.Empty(t, cfg.Webhooks.Telegram)
	assert.Equal(t, noChannelSummary, cfg.ChannelSummary())
}

func TestLoad_DotEnvNeverOverwritesEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REPORT_MODE=incremental\nTIMEZONE=UTC\n"), 0o644))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	t.Setenv("REPORT_MODE", "current")
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	// the .env loader sets TIMEZONE in the real process environment
	t.Cleanup(func() { _ = os.Unsetenv("TIMEZONE") })

	cfg, err := Load(path, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "current", cfg.Report.Mode, "process environment wins over .env")
	assert.Equal(t, "UTC", cfg.App.Timezone, ".env fills variables that are unset")
}
