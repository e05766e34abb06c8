// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/trend-digest/internal/logger"
)

// Channel names, in the fixed order they are resolved and reported.
const (
	ChannelFeishu   = "feishu"
	ChannelDingtalk = "dingtalk"
	ChannelWework   = "wework"
	ChannelTelegram = "telegram"
	ChannelEmail    = "email"
	ChannelNtfy     = "ntfy"
	ChannelBark     = "bark"
	ChannelSlack    = "slack"
)

// WebhookConfig holds the parsed, validated accounts of every notification
// channel. Account lists carry every valid account; the capped count used
// for reporting and throttling lives in [ChannelStatus].
type WebhookConfig struct {
	FeishuURLs   []string
	DingtalkURLs []string

	WeworkURLs    []string
	WeworkMsgType string

	// Telegram accounts pair a bot token with a chat id positionally.
	Telegram []TelegramAccount

	// Email is nil unless from, password and recipient are all configured.
	Email *EmailAccount

	NtfyServerURL string
	Ntfy          []NtfyAccount

	BarkURLs  []string
	SlackURLs []string
}

// TelegramAccount is one bot token / chat id pair.
type TelegramAccount struct {
	BotToken string
	ChatID   string
}

// EmailAccount holds the SMTP delivery settings.
type EmailAccount struct {
	From       string
	Password   string
	To         string
	SMTPServer string
	SMTPPort   string
}

// NtfyAccount is one topic, optionally with its access token.
type NtfyAccount struct {
	Topic string
	Token string
}

// ChannelStatus describes one configured channel for the summary: its name,
// where its configuration came from, and the account count capped at
// MaxAccountsPerChannel. Channels with zero valid accounts are omitted.
type ChannelStatus struct {
	Name   string
	Source Source
	Count  int
}

// resolveWebhooks resolves every channel field with the uniform precedence
// rule, splits multi-account values, validates the paired lists and caps the
// reported counts. A channel that fails pairing is logged and treated as
// unconfigured; nothing here is fatal.
func resolveWebhooks(raw rawWebhooks, snap *Snapshot, maxAccounts int, log *logger.Logger) (WebhookConfig, []ChannelStatus) {
	cfg := WebhookConfig{}
	statuses := make([]ChannelStatus, 0, 8)

	report := func(name string, src Source, count int) {
		if count <= 0 {
			return
		}
		if count > maxAccounts {
			count = maxAccounts
		}
		statuses = append(statuses, ChannelStatus{Name: name, Source: channelSource(src), Count: count})
	}

	feishuVal, feishuSrc := resolveString(snap.FeishuWebhookURL, raw.FeishuURL, "")
	cfg.FeishuURLs = ParseAccounts(feishuVal)
	report(ChannelFeishu, feishuSrc, len(cfg.FeishuURLs))

	dingtalkVal, dingtalkSrc := resolveString(snap.DingtalkWebhookURL, raw.DingtalkURL, "")
	cfg.DingtalkURLs = ParseAccounts(dingtalkVal)
	report(ChannelDingtalk, dingtalkSrc, len(cfg.DingtalkURLs))

	weworkVal, weworkSrc := resolveString(snap.WeworkWebhookURL, raw.WeworkURL, "")
	cfg.WeworkURLs = ParseAccounts(weworkVal)
	cfg.WeworkMsgType, _ = resolveString(snap.WeworkMsgType, raw.WeworkMsgType, defaultWeworkMsgType)
	report(ChannelWework, weworkSrc, len(cfg.WeworkURLs))

	cfg.Telegram = resolveTelegram(raw, snap, log)
	_, telegramSrc := resolveString(snap.TelegramBotToken, raw.TelegramBotToken, "")
	report(ChannelTelegram, telegramSrc, len(cfg.Telegram))

	cfg.Email = resolveEmail(raw, snap)
	_, emailSrc := resolveString(snap.EmailFrom, raw.EmailFrom, "")
	if cfg.Email != nil {
		report(ChannelEmail, emailSrc, 1)
	}

	cfg.NtfyServerURL, _ = resolveString(snap.NtfyServerURL, raw.NtfyServerURL, defaultNtfyServerURL)
	cfg.Ntfy = resolveNtfy(raw, snap, log)
	_, ntfySrc := resolveString(snap.NtfyServerURL, raw.NtfyServerURL, "")
	report(ChannelNtfy, ntfySrc, len(cfg.Ntfy))

	barkVal, barkSrc := resolveString(snap.BarkURL, raw.BarkURL, "")
	cfg.BarkURLs = ParseAccounts(barkVal)
	report(ChannelBark, barkSrc, len(cfg.BarkURLs))

	slackVal, slackSrc := resolveString(snap.SlackWebhookURL, raw.SlackWebhookURL, "")
	cfg.SlackURLs = ParseAccounts(slackVal)
	report(ChannelSlack, slackSrc, len(cfg.SlackURLs))

	return cfg, statuses
}

// resolveTelegram pairs bot tokens with chat ids. Both lists empty means the
// channel is simply unconfigured; a length mismatch disables the channel
// with a diagnostic.
func resolveTelegram(raw rawWebhooks, snap *Snapshot, log *logger.Logger) []TelegramAccount {
	tokenVal, _ := resolveString(snap.TelegramBotToken, raw.TelegramBotToken, "")
	chatVal, _ := resolveString(snap.TelegramChatID, raw.TelegramChatID, "")

	tokens := ParseAccounts(tokenVal)
	chatIDs := ParseAccounts(chatVal)

	valid, count := ValidatePaired(
		map[string][]string{"bot_token": tokens, "chat_id": chatIDs},
		ChannelTelegram,
		[]string{"bot_token", "chat_id"},
		log,
	)
	if !valid {
		return nil
	}

	accounts := make([]TelegramAccount, 0, count)
	for i := 0; i < count; i++ {
		accounts = append(accounts, TelegramAccount{BotToken: tokens[i], ChatID: chatIDs[i]})
	}
	return accounts
}

// resolveEmail returns the single email account, or nil when any of the
// required fields (from, password, recipient) is missing.
func resolveEmail(raw rawWebhooks, snap *Snapshot) *EmailAccount {
	from, _ := resolveString(snap.EmailFrom, raw.EmailFrom, "")
	password, _ := resolveString(snap.EmailPassword, raw.EmailPassword, "")
	to, _ := resolveString(snap.EmailTo, raw.EmailTo, "")
	if from == "" || password == "" || to == "" {
		return nil
	}

	server, _ := resolveString(snap.EmailSMTPServer, raw.EmailSMTPServer, "")
	port, _ := resolveString(snap.EmailSMTPPort, raw.EmailSMTPPort, "")

	return &EmailAccount{
		From:       from,
		Password:   password,
		To:         to,
		SMTPServer: server,
		SMTPPort:   port,
	}
}

// resolveNtfy returns the topic list, paired with tokens when any token is
// supplied. Topics without tokens are valid; tokens without matching topics
// disable the channel.
func resolveNtfy(raw rawWebhooks, snap *Snapshot, log *logger.Logger) []NtfyAccount {
	topicVal, _ := resolveString(snap.NtfyTopic, raw.NtfyTopic, "")
	tokenVal, _ := resolveString(snap.NtfyToken, raw.NtfyToken, "")

	topics := ParseAccounts(topicVal)
	tokens := ParseAccounts(tokenVal)

	if len(tokens) == 0 {
		accounts := make([]NtfyAccount, 0, len(topics))
		for _, topic := range topics {
			accounts = append(accounts, NtfyAccount{Topic: topic})
		}
		return accounts
	}

	valid, count := ValidatePaired(
		map[string][]string{"topic": topics, "token": tokens},
		ChannelNtfy,
		[]string{"topic", "token"},
		log,
	)
	if !valid {
		return nil
	}

	accounts := make([]NtfyAccount, 0, count)
	for i := 0; i < count; i++ {
		accounts = append(accounts, NtfyAccount{Topic: topics[i], Token: tokens[i]})
	}
	return accounts
}

// channelSource collapses the three-way resolution tag to the two-way label
// used in the channel summary: a channel either came from the environment or
// from the config file.
func channelSource(src Source) Source {
	if src == SourceEnvironment {
		return SourceEnvironment
	}
	return SourceFile
}
