// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the effective trend-digest configuration from
// three layered sources: a YAML config file, an optional .env local override
// file, and the process environment. Precedence is uniform across all
// fields: a present environment variable wins outright (including explicit
// false/0), then the file value, then a documented default.
//
// Multi-account notification channels encode several accounts per field as
// comma-separated lists. Fields that must travel together (Telegram bot
// token + chat id, ntfy topic + token) are validated to have equal, non-zero
// length; a mismatch disables the channel with a diagnostic instead of
// failing the run. The only fatal condition is a missing config file.
package config
