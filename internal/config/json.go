package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/flagx"
	"github.com/dmitrijs2005/autoprime/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// keep the value from earlier sources, so booleans and numbers are pointers.
type JsonConfig struct {
	DBPath         string          `json:"db_path"`
	Memory         *bool           `json:"memory"`
	LogLevel       string          `json:"log_level"`
	LogBackend     string          `json:"log_backend"`
	LogJSON        *bool           `json:"log_json"`
	DocumentsDir   string          `json:"documents_dir"`
	Sink           string          `json:"sink"`
	S3             *JsonS3         `json:"s3"`
	UploadURL      string          `json:"upload_url"`
	UploadTimeout  *timex.Duration `json:"upload_timeout"`
	WarnWindowDays *int            `json:"warn_window_days"`
	ShopName       string          `json:"shop_name"`
	ImportPath     string          `json:"import"`
}

type JsonS3 struct {
	Bucket          string `json:"bucket"`
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	PathStyle       *bool  `json:"path_style"`
	Prefix          string `json:"prefix"`
}

// parseJson overlays Config with values loaded from a JSON file named by -c,
// -config or AUTOPRIME_CONFIG. Without a path it does nothing. Read and
// unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:], envPrefix+"CONFIG")
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DBPath, jc.DBPath)
	setBool(&cfg.Memory, jc.Memory)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	setBool(&cfg.LogJSON, jc.LogJSON)
	setString(&cfg.DocumentsDir, jc.DocumentsDir)
	setString(&cfg.Sink, jc.Sink)
	setString(&cfg.UploadURL, jc.UploadURL)
	setString(&cfg.ShopName, jc.ShopName)
	setString(&cfg.ImportPath, jc.ImportPath)
	if jc.UploadTimeout != nil {
		cfg.UploadTimeout = time.Duration(jc.UploadTimeout.Duration)
	}
	if jc.WarnWindowDays != nil {
		cfg.WarnWindowDays = *jc.WarnWindowDays
	}

	if s := jc.S3; s != nil {
		setString(&cfg.S3.Bucket, s.Bucket)
		setString(&cfg.S3.Region, s.Region)
		setString(&cfg.S3.Endpoint, s.Endpoint)
		setString(&cfg.S3.AccessKeyID, s.AccessKeyID)
		setString(&cfg.S3.SecretAccessKey, s.SecretAccessKey)
		setBool(&cfg.S3.PathStyle, s.PathStyle)
		setString(&cfg.S3.Prefix, s.Prefix)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
