package config

import (
	"strings"

	"github.com/MKhiriev/trend-digest/internal/logger"
)

// accountDelimiter joins multiple accounts inside a single webhook field.
const accountDelimiter = ","

// ParseAccounts splits a delimited webhook value into an ordered list of
// account tokens. Tokens are trimmed and empty tokens are dropped, so
// leading, trailing or doubled delimiters never surface in the result.
// An empty input yields an empty list.
//
// Position is part of the contract: token i of one field pairs with token i
// of every other field of the same channel.
func ParseAccounts(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, accountDelimiter)
	accounts := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			accounts = append(accounts, token)
		}
	}

	return accounts
}

// ValidatePaired checks that the multi-value fields which must travel
// together for one channel carry the same non-zero number of accounts.
//
// It returns (true, n) when every required field holds exactly n > 0 tokens.
// When every required field is empty the channel is simply unconfigured:
// (false, 0) with no diagnostic. A length mismatch also yields (false, 0)
// but logs a warning naming the channel and the differing lengths; the
// caller treats the channel as unconfigured and carries on.
func ValidatePaired(fields map[string][]string, channel string, required []string, log *logger.Logger) (bool, int) {
	if len(required) == 0 {
		for name := range fields {
			required = append(required, name)
		}
	}
	if len(required) == 0 {
		return false, 0
	}

	count := len(fields[required[0]])

	allEmpty := true
	mismatch := false
	for _, name := range required {
		n := len(fields[name])
		if n != 0 {
			allEmpty = false
		}
		if n != count {
			mismatch = true
		}
	}

	if allEmpty {
		return false, 0
	}

	if mismatch || count == 0 {
		event := log.Warn().Str("channel", channel)
		for _, name := range required {
			event = event.Int(name, len(fields[name]))
		}
		event.Msg("paired account lists have mismatched lengths, channel disabled")
		return false, 0
	}

	return true, count
}
