package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "AUTOPRIME_"

// parseEnv loads .env when present, then overlays every AUTOPRIME_* variable
// that is set. Malformed numbers and booleans panic like the other loaders.
func parseEnv(cfg *Config) {
	// A missing .env is normal; variables may come from the process.
	_ = godotenv.Load()

	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.Memory = getEnvBool("MEMORY", cfg.Memory)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogBackend = strings.ToLower(getEnv("LOG_BACKEND", cfg.LogBackend))
	cfg.LogJSON = getEnvBool("LOG_JSON", cfg.LogJSON)
	cfg.DocumentsDir = getEnv("DOCUMENTS_DIR", cfg.DocumentsDir)
	cfg.Sink = strings.ToLower(getEnv("SINK", cfg.Sink))
	cfg.S3.Bucket = getEnv("S3_BUCKET", cfg.S3.Bucket)
	cfg.S3.Region = getEnv("S3_REGION", cfg.S3.Region)
	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", cfg.S3.Endpoint)
	cfg.S3.AccessKeyID = getEnv("S3_ACCESS_KEY_ID", cfg.S3.AccessKeyID)
	cfg.S3.SecretAccessKey = getEnv("S3_SECRET_ACCESS_KEY", cfg.S3.SecretAccessKey)
	cfg.S3.PathStyle = getEnvBool("S3_PATH_STYLE", cfg.S3.PathStyle)
	cfg.S3.Prefix = getEnv("S3_PREFIX", cfg.S3.Prefix)
	cfg.UploadURL = getEnv("UPLOAD_URL", cfg.UploadURL)
	cfg.UploadTimeout = getEnvDuration("UPLOAD_TIMEOUT", cfg.UploadTimeout)
	cfg.WarnWindowDays = getEnvInt("WARN_WINDOW_DAYS", cfg.WarnWindowDays)
	cfg.ShopName = getEnv("SHOP_NAME", cfg.ShopName)
	cfg.ImportPath = getEnv("IMPORT", cfg.ImportPath)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(err)
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}
