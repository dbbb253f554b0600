package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Port            string        `yaml:"port" validate:"required,numeric"`
	Env             string        `yaml:"env" validate:"oneof=dev local staging production"`
	DatabaseURL     string        `yaml:"databaseUrl" validate:"required_if=Env production"`
	CORSAllowOrigin []string      `yaml:"corsAllowOrigins"`
	JWTSecret       string        `yaml:"jwtSecret" validate:"required_if=Env production"`
	ObjectStoreType string        `yaml:"objectStore" validate:"oneof=local s3"`
	LocalStoreDir   string        `yaml:"localStoreDir" validate:"required_if=ObjectStoreType local"`
	AWSRegion       string        `yaml:"awsRegion"`
	S3Bucket        string        `yaml:"s3Bucket" validate:"required_if=ObjectStoreType s3"`
	S3Prefix        string        `yaml:"s3Prefix"`
	SSEKMSKeyID     string        `yaml:"sseKmsKeyId"`
	RedisAddr       string        `yaml:"redisAddr" validate:"omitempty,hostname_port"`
	RedisDB         int           `yaml:"redisDb" validate:"gte=0"`
	PDFCacheTTL     time.Duration `yaml:"pdfCacheTtl" validate:"gte=0"`
	ShareTokenTTL   time.Duration `yaml:"shareTokenTtl" validate:"gte=0"`
	PublicBaseURL   string        `yaml:"publicBaseUrl" validate:"omitempty,url"`
	DB              DBConfig      `yaml:"db"`
	Log             LogConfig     `yaml:"log"`
}

// DBConfig sizes the Postgres connection pool.
type DBConfig struct {
	MaxOpenConns    int           `yaml:"maxOpenConns" validate:"gte=0"`
	MaxIdleConns    int           `yaml:"maxIdleConns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime" validate:"gte=0"`
	ConnMaxIdleTime time.Duration `yaml:"connMaxIdleTime" validate:"gte=0"`
	PingTimeout     time.Duration `yaml:"pingTimeout" validate:"gte=0"`
}

// LogConfig configures telemetry output and file rotation.
type LogConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:            "8080",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ObjectStoreType: "local",
		LocalStoreDir:   "./data",
		PDFCacheTTL:     10 * time.Minute,
		ShareTokenTTL:   7 * 24 * time.Hour,
		DB: DBConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 2 * time.Minute,
			PingTimeout:     5 * time.Second,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// Load builds configuration from defaults, an optional YAML file named by
// CONFIG_FILE and environment variables, in increasing precedence.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.ObjectStoreType = normalizeStoreType(cfg.ObjectStoreType)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString("PORT", &cfg.Port)
	setString("ENV", &cfg.Env)
	setString("DATABASE_URL", &cfg.DatabaseURL)
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		cfg.CORSAllowOrigin = splitAndTrim(raw)
	}
	setString("JWT_SECRET", &cfg.JWTSecret)
	setString("OBJECT_STORE", &cfg.ObjectStoreType)
	setString("LOCAL_STORE_DIR", &cfg.LocalStoreDir)
	setString("AWS_REGION", &cfg.AWSRegion)
	setString("S3_BUCKET", &cfg.S3Bucket)
	setString("S3_PREFIX", &cfg.S3Prefix)
	setString("SSE_KMS_KEY_ID", &cfg.SSEKMSKeyID)
	setString("REDIS_ADDR", &cfg.RedisAddr)
	setString("PUBLIC_BASE_URL", &cfg.PublicBaseURL)
	setString("LOG_LEVEL", &cfg.Log.Level)
	setString("LOG_FILE", &cfg.Log.File)

	for key, dst := range map[string]*int{
		"REDIS_DB":          &cfg.RedisDB,
		"DB_MAX_OPEN_CONNS": &cfg.DB.MaxOpenConns,
		"DB_MAX_IDLE_CONNS": &cfg.DB.MaxIdleConns,
		"LOG_MAX_SIZE_MB":   &cfg.Log.MaxSizeMB,
		"LOG_MAX_BACKUPS":   &cfg.Log.MaxBackups,
		"LOG_MAX_AGE_DAYS":  &cfg.Log.MaxAgeDays,
	} {
		if err := setInt(key, dst); err != nil {
			return err
		}
	}
	for key, dst := range map[string]*time.Duration{
		"PDF_CACHE_TTL":         &cfg.PDFCacheTTL,
		"SHARE_TOKEN_TTL":       &cfg.ShareTokenTTL,
		"DB_CONN_MAX_LIFETIME":  &cfg.DB.ConnMaxLifetime,
		"DB_CONN_MAX_IDLE_TIME": &cfg.DB.ConnMaxIdleTime,
		"DB_PING_TIMEOUT":       &cfg.DB.PingTimeout,
	} {
		if err := setDuration(key, dst); err != nil {
			return err
		}
	}
	return nil
}

func setString(key string, dst *string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func setInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func setDuration(key string, dst *time.Duration) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
