package config

import "errors"

// ErrConfigFileNotFound is returned by [Load] when the config file does not
// exist. It is the only fatal condition of the resolution pipeline; every
// other anomaly degrades to defaults or an unconfigured channel.
var ErrConfigFileNotFound = errors.New("config file not found")
