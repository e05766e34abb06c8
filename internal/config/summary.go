package config

import (
	"fmt"
	"strings"
)

// noChannelSummary is printed when not a single channel resolved to a valid
// account.
const noChannelSummary = "no notification channel configured"

// ChannelSummary renders the deterministic, order-stable channel report: one
// line per configured channel stating its name, configuration source and
// capped account count, followed by the effective account cap. Channels with
// zero valid accounts are omitted.
func (c *Config) ChannelSummary() string {
	if len(c.Channels) == 0 {
		return noChannelSummary
	}

	lines := make([]string, 0, len(c.Channels)+1)
	for _, ch := range c.Channels {
		noun := "accounts"
		if ch.Count == 1 {
			noun = "account"
		}
		lines = append(lines, fmt.Sprintf("%s: source=%s, %d %s", ch.Name, ch.Source, ch.Count, noun))
	}
	lines = append(lines, fmt.Sprintf("max accounts per channel: %d", c.Notification.MaxAccountsPerChannel))

	return strings.Join(lines, "\n")
}
