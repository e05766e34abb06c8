package config

import (
	"strings"
	"testing"

	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseAccounts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "a", []string{"a"}},
		{"multiple", "a,b,c", []string{"a", "b", "c"}},
		{"doubled delimiter and trailing space", "a,b,,c ", []string{"a", "b", "c"}},
		{"leading delimiter", ",a,b", []string{"a", "b"}},
		{"trailing delimiter", "a,b,", []string{"a", "b"}},
		{"tokens are trimmed", " a , b ,c", []string{"a", "b", "c"}},
		{"only delimiters", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAccounts(tt.input))
		})
	}
}

func TestParseAccounts_RoundTrip(t *testing.T) {
	inputs := []string{"a,b,c", " a, b ,, c ", "single", "u1,u2"}

	for _, input := range inputs {
		first := ParseAccounts(input)
		second := ParseAccounts(strings.Join(first, ","))

		assert.Equal(t, first, second, "re-parsing the joined form must reproduce the sequence")
	}
}

func TestValidatePaired_EqualLengths(t *testing.T) {
	fields := map[string][]string{
		"bot_token": {"t1", "t2"},
		"chat_id":   {"c1", "c2"},
	}

	valid, count := ValidatePaired(fields, "telegram", []string{"bot_token", "chat_id"}, logger.Nop())

	assert.True(t, valid)
	assert.Equal(t, 2, count)
}

func TestValidatePaired_SingleAccountPair(t *testing.T) {
	fields := map[string][]string{
		"topic": {"x"},
		"token": {"y"},
	}

	valid, count := ValidatePaired(fields, "ntfy", []string{"topic", "token"}, logger.Nop())

	assert.True(t, valid)
	assert.Equal(t, 1, count)
}

func TestValidatePaired_LengthMismatch(t *testing.T) {
	fields := map[string][]string{
		"bot_token": {"t1", "t2"},
		"chat_id":   {"c1"},
	}

	valid, count := ValidatePaired(fields, "telegram", []string{"bot_token", "chat_id"}, logger.Nop())

	assert.False(t, valid)
	assert.Zero(t, count)
}

func TestValidatePaired_AllEmptyIsUnconfigured(t *testing.T) {
	fields := map[string][]string{
		"bot_token": nil,
		"chat_id":   nil,
	}

	valid, count := ValidatePaired(fields, "telegram", []string{"bot_token", "chat_id"}, logger.Nop())

	assert.False(t, valid)
	assert.Zero(t, count)
}

func TestValidatePaired_OneSidedIsMismatch(t *testing.T) {
	fields := map[string][]string{
		"bot_token": {"t1"},
		"chat_id":   nil,
	}

	valid, count := ValidatePaired(fields, "telegram", []string{"bot_token", "chat_id"}, logger.Nop())

	assert.False(t, valid)
	assert.Zero(t, count)
}

func TestValidatePaired_DefaultsToAllFields(t *testing.T) {
	fields := map[string][]string{
		"topic": {"x"},
		"token": {"y"},
	}

	valid, count := ValidatePaired(fields, "ntfy", nil, logger.Nop())

	assert.True(t, valid)
	assert.Equal(t, 1, count)
}
