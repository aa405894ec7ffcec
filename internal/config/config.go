package config

import (
	"time"

	"github.com/dmitrijs2005/autoprime/internal/document"
	"github.com/dmitrijs2005/autoprime/internal/engine"
)

const (
	SinkFS   = "fs"
	SinkS3   = "s3"
	SinkHTTP = "http"

	BackendLogrus = "logrus"
	BackendSlog   = "slog"
)

// S3 holds the bucket settings used when Sink is SinkS3.
type S3 struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
	Prefix          string
}

// Config holds runtime settings for the AutoPrime CLI.
type Config struct {
	DBPath string
	// Memory replaces the database with an in-memory repository.
	Memory bool

	LogLevel   string
	LogBackend string
	LogJSON    bool

	DocumentsDir  string
	Sink          string
	S3            S3
	// UploadURL is the PUT base used when Sink is SinkHTTP.
	UploadURL     string
	UploadTimeout time.Duration

	WarnWindowDays int
	ShopName       string

	// ImportPath names a snapshot file loaded into storage before start.
	ImportPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "autoprime.db"
	c.LogLevel = "info"
	c.LogBackend = BackendLogrus
	c.DocumentsDir = "documents"
	c.Sink = SinkFS
	c.S3.Region = "us-east-1"
	c.UploadTimeout = 30 * time.Second
	c.WarnWindowDays = engine.DefaultWarnWindowDays
	c.ShopName = document.DefaultShopName
}

// S3Config converts the bucket settings for document.NewS3Sink.
func (c *Config) S3Config() document.S3Config {
	return document.S3Config{
		Bucket:          c.S3.Bucket,
		Region:          c.S3.Region,
		Endpoint:        c.S3.Endpoint,
		AccessKeyID:     c.S3.AccessKeyID,
		SecretAccessKey: c.S3.SecretAccessKey,
		PathStyle:       c.S3.PathStyle,
		Prefix:          c.S3.Prefix,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
