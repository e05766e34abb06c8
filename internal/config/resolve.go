package config

// Source tags where a resolved field's value came from. Keeping the tag
// explicit means an override of zero/false stays distinguishable from "the
// variable was never set".
type Source string

const (
	SourceEnvironment Source = "environment"
	SourceFile        Source = "file"
	SourceDefault     Source = "default"
)

// resolveString applies the uniform precedence rule for string fields:
// environment (non-empty after trim) > file key present > default.
func resolveString(envVal *string, fileVal *string, def string) (string, Source) {
	if v, ok := envStr(envVal); ok {
		return v, SourceEnvironment
	}
	if fileVal != nil {
		return *fileVal, SourceFile
	}
	return def, SourceDefault
}

// resolveBool applies the precedence rule for boolean fields. An explicitly
// set variable is authoritative even when it resolves to false.
func resolveBool(envVal *string, fileVal *bool, def bool) (bool, Source) {
	if v, ok := envBool(envVal); ok {
		return v, SourceEnvironment
	}
	if fileVal != nil {
		return *fileVal, SourceFile
	}
	return def, SourceDefault
}

// resolveInt applies the precedence rule for integer fields. An unparsable
// variable falls through as if unset.
func resolveInt(envVal *string, fileVal *int, def int) (int, Source) {
	if v, ok := envInt(envVal); ok {
		return v, SourceEnvironment
	}
	if fileVal != nil {
		return *fileVal, SourceFile
	}
	return def, SourceDefault
}

// resolveIntZeroAsUnset is resolveInt for the fields whose domain treats 0 as
// a meaningful file value ("no limit", "keep forever"): an environment
// override of 0 is not an override and falls through to file/default. This is
// deliberately per-field, not global, so a zero configured in the file is
// never masked.
func resolveIntZeroAsUnset(envVal *string, fileVal *int, def int) (int, Source) {
	if v, ok := envInt(envVal); ok && v != 0 {
		return v, SourceEnvironment
	}
	if fileVal != nil {
		return *fileVal, SourceFile
	}
	return def, SourceDefault
}

// strOr, boolOr, intOr and floatOr resolve file-only fields that have no
// environment override.
func strOr(fileVal *string, def string) string {
	if fileVal != nil {
		return *fileVal
	}
	return def
}

func boolOr(fileVal *bool, def bool) bool {
	if fileVal != nil {
		return *fileVal
	}
	return def
}

func intOr(fileVal *int, def int) int {
	if fileVal != nil {
		return *fileVal
	}
	return def
}

func floatOr(fileVal *float64, def float64) float64 {
	if fileVal != nil {
		return *fileVal
	}
	return def
}
