package config

import (
	"os"

	"github.com/MKhiriev/trend-digest/internal/logger"
	"github.com/joho/godotenv"
)

// localEnvFile is the optional KEY=VALUE override file for local runs.
const localEnvFile = ".env"

// loadLocalEnv loads the optional .env file into the process environment
// before the snapshot is captured. godotenv never overwrites a variable that
// is already set, so real environment always wins over the file.
func loadLocalEnv(log *logger.Logger) {
	if _, err := os.Stat(localEnvFile); err != nil {
		return
	}

	if err := godotenv.Load(localEnvFile); err != nil {
		log.Warn().Err(err).Msg("error loading .env file, skipping it")
		return
	}

	log.Debug().Str("path", localEnvFile).Msg(".env file loaded")
}
