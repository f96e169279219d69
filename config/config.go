package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"

	AdminAuthNone  = "none"
	AdminAuthToken = "token"
	AdminAuthJWT   = "jwt"
)

type Config struct {
	AppName  string
	AppEnv   string
	Port     string
	LogLevel string

	// Persistence
	StorageBackend string
	DatabaseURL    string

	AllowedOrigins []string

	// Admin gate
	AdminAuthMode string
	AdminToken    string
	JWTSecret     string

	DisplayTimezone string

	// Scheduler
	RoomStaleAfter    time.Duration
	RoomPruneInterval time.Duration
	ArchiveInterval   time.Duration

	// Cloudflare R2
	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2Bucket          string

	// Resend
	ResendAPIKey string
	MailFrom     string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "bgmi-tournament-server")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("ADMIN_AUTH_MODE", AdminAuthToken)
	v.SetDefault("DISPLAY_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("ROOM_STALE_AFTER", "168h")
	v.SetDefault("ROOM_PRUNE_INTERVAL", "1h")
	v.SetDefault("ARCHIVE_INTERVAL", "0s")
	v.SetDefault("MAIL_FROM", "onboarding@resend.dev")

	cfg := &Config{
		AppName:           v.GetString("APP_NAME"),
		AppEnv:            v.GetString("APP_ENV"),
		Port:              v.GetString("PORT"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		StorageBackend:    strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		AllowedOrigins:    splitList(v.GetString("ALLOWED_ORIGINS")),
		AdminAuthMode:     strings.ToLower(strings.TrimSpace(v.GetString("ADMIN_AUTH_MODE"))),
		AdminToken:        v.GetString("ADMIN_TOKEN"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		DisplayTimezone:   v.GetString("DISPLAY_TIMEZONE"),
		RoomStaleAfter:    v.GetDuration("ROOM_STALE_AFTER"),
		RoomPruneInterval: v.GetDuration("ROOM_PRUNE_INTERVAL"),
		ArchiveInterval:   v.GetDuration("ARCHIVE_INTERVAL"),
		R2AccountID:       v.GetString("CLOUDFLARE_ACCOUNT_ID"),
		R2AccessKeyID:     v.GetString("R2_ACCESS_KEY_ID"),
		R2AccessKeySecret: v.GetString("R2_ACCESS_KEY_SECRET"),
		R2Bucket:          v.GetString("R2_BUCKET_NAME"),
		ResendAPIKey:      v.GetString("RESEND_API_KEY"),
		MailFrom:          v.GetString("MAIL_FROM"),
	}

	if cfg.StorageBackend == "" {
		cfg.StorageBackend = BackendMemory
		if cfg.DatabaseURL != "" {
			cfg.StorageBackend = BackendPostgres
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=%s", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want %s or %s)", c.StorageBackend, BackendMemory, BackendPostgres)
	}

	switch c.AdminAuthMode {
	case AdminAuthNone:
	case AdminAuthToken:
		if c.AdminToken == "" {
			return fmt.Errorf("ADMIN_TOKEN is required when ADMIN_AUTH_MODE=%s", AdminAuthToken)
		}
	case AdminAuthJWT:
		if len(c.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 characters when ADMIN_AUTH_MODE=%s", AdminAuthJWT)
		}
	default:
		return fmt.Errorf("unknown ADMIN_AUTH_MODE %q", c.AdminAuthMode)
	}

	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", c.DisplayTimezone, err)
	}

	if c.RoomStaleAfter < 0 || c.RoomPruneInterval < 0 || c.ArchiveInterval < 0 {
		return fmt.Errorf("scheduler durations must not be negative")
	}
	return nil
}

// Location returns the display timezone. Validate has already checked it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// R2Enabled reports whether all Cloudflare R2 credentials are present.
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2AccessKeySecret != "" && c.R2Bucket != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
