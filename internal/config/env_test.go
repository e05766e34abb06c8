// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureEnv_SetAndUnset(t *testing.T) {
	// Arrange
	t.Setenv("TIMEZONE", "Europe/Moscow")
	t.Setenv("FEISHU_WEBHOOK_URL", "https://example.com/hook")

	// Act
	snap, err := captureEnv()

	// Assert
	require.NoError(t, err)

	require.NotNil(t, snap.Timezone)
	assert.Equal(t, "Europe/Moscow", *snap.Timezone)

	require.NotNil(t, snap.FeishuWebhookURL)
	assert.Equal(t, "https://example.com/hook", *snap.FeishuWebhookURL)

	assert.Nil(t, snap.TelegramBotToken)
	assert.Nil(t, snap.MaxNewsPerKeyword)
}

func TestEnvStr(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		expected string
		present  bool
	}{
		{"unset", nil, "", false},
		{"empty", ptr(""), "", false},
		{"whitespace only", ptr("   "), "", false},
		{"plain value", ptr("daily"), "daily", true},
		{"trimmed value", ptr("  daily "), "daily", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := envStr(tt.value)

			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		expected bool
		present  bool
	}{
		{"unset", nil, false, false},
		{"empty", ptr(""), false, false},
		{"true lowercase", ptr("true"), true, true},
		{"true uppercase", ptr("TRUE"), true, true},
		{"one", ptr("1"), true, true},
		// any other non-empty value is an explicit false override
		{"false", ptr("false"), false, true},
		{"zero", ptr("0"), false, true},
		{"no", ptr("no"), false, true},
		{"garbage", ptr("banana"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := envBool(tt.value)

			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		expected int
		present  bool
	}{
		{"unset", nil, 0, false},
		{"empty", ptr(""), 0, false},
		{"valid", ptr("42"), 42, true},
		{"valid with spaces", ptr(" 7 "), 7, true},
		{"zero", ptr("0"), 0, true},
		{"negative", ptr("-3"), -3, true},
		// an unparsable value behaves exactly like an unset variable
		{"unparsable", ptr("many"), 0, false},
		{"float", ptr("1.5"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := envInt(tt.value)

			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ptr is a test helper for literal pointer fields.
func ptr[T any](v T) *T {
	return &v
}
