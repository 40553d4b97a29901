package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type secrets struct {
	DatabaseURI      string `validate:"required"`
	DatabaseUser     string
	DatabasePassword string

	CacheURI      string `validate:"required"`
	CachePassword string
	CacheDB       int `validate:"exists"`

	// Errors aren't reported to sentry if it's empty
	SentryDSN string
}

var Secret secrets

func getEnv(key string) string {
	env, _ := os.LookupEnv(key)

	configLogger.Info("Loaded: "+key, nil)

	return env
}

var requiredEnvVars = []string{
	"DB_URI",
	"CACHE_URI",
}

func loadSecrets() {
	configLogger.Info("Loading environment variables...", nil)

	// Variables may be already set in environment, so .env file is optional
	if err := godotenv.Load(); err != nil {
		configLogger.Warning("Failed to load .env file: "+err.Error(), nil)
	}

	for _, variable := range requiredEnvVars {
		if _, exists := os.LookupEnv(variable); !exists {
			configLogger.Fatal(
				"Failed to load environment variables",
				"Missing required env variable: "+variable,
				nil,
			)
		}
	}

	cacheDB := 0
	if raw := getEnv("CACHE_DB"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			configLogger.Fatal("Failed to parse CACHE_DB env variable", err.Error(), nil)
		}
		cacheDB = v
	}

	Secret.DatabaseURI = getEnv("DB_URI")
	Secret.DatabaseUser = getEnv("DB_USER")
	Secret.DatabasePassword = getEnv("DB_PASSWORD")

	Secret.CacheURI = getEnv("CACHE_URI")
	Secret.CachePassword = getEnv("CACHE_PASSWORD")
	Secret.CacheDB = cacheDB

	Secret.SentryDSN = getEnv("SENTRY_DSN")

	configLogger.Info("Loading environment variables: OK", nil)

	configLogger.Info("Validating secrets...", nil)

	if err := newValidator().Struct(Secret); err != nil {
		configLogger.Fatal("Secrets validation failed", err.Error(), nil)
	}

	configLogger.Info("Validating secrets: OK", nil)
}
