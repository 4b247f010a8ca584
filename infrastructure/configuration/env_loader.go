package configuration

import (
	"os"

	"youtube-companion/infrastructure/logger"

	"github.com/joho/godotenv"
)

// LoadEnvFromFile loads KEY=VALUE pairs from each file that exists.
// Variables already present in the OS environment are not overridden.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			logger.GetLogger().WithField("file", p).Debug("env file not found")
			continue
		}
		if err := godotenv.Load(p); err != nil {
			logger.GetLogger().WithField("file", p).WithField("error", err).Warn("failed loading env file")
			continue
		}
		logger.GetLogger().WithField("file", p).Info("Loaded env file")
	}
}

// Reload re-applies environment overrides after LoadEnvFromFile.
func Reload() {
	initApp(&C)
	initDatabase(&C)
	initYouTube(&C)
	initIntegrations(&C)
}
