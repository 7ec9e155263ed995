package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const (
	appNameVar   = "APP_NAME"
	folderEnvVar = "FOLDER"
)

//nolint:gochecknoglobals // one-shot .env load
var once sync.Once

func init() {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	})
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "HR Console")
}

// GetDataFolder returns the folder where the credentials file lives.
func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

func (EnvVars) GetEnv() string {
	return GetEnv("ENV", "DEV")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
