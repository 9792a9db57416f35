package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	DB struct {
		Driver string
		DSN    string
	}
	Log struct {
		Level  string
		Pretty bool
	}
	JWT struct {
		Secret string
		Issuer string
		TTL    time.Duration
	}
	OIDC struct {
		Issuer   string
		ClientID string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
		TTL      time.Duration
	}
	Trace struct {
		Enabled     bool
		Endpoint    string
		ServiceName string
	}
	ShortCode struct {
		Alphabet  string
		MinLength int
	}
}

// Load reads config from a .env file (if present), the environment (JB_
// prefix) and an optional joe-bookmarks.yaml, in increasing precedence of
// environment over file.
//
// A MySQL DSN must carry parseTime=true so DATETIME columns scan into time.Time.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env; never overrides variables already set

	v := viper.New()
	v.SetEnvPrefix("JB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("joe-bookmarks")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("jwt.issuer", "joe-bookmarks")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "1h")
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.endpoint", "127.0.0.1:4317")
	v.SetDefault("trace.service_name", "joe-bookmarks")
	v.SetDefault("shortcode.min_length", 6)

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Pretty = v.GetBool("log.pretty")
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.OIDC.Issuer = v.GetString("oidc.issuer")
	cfg.OIDC.ClientID = v.GetString("oidc.client_id")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Trace.Enabled = v.GetBool("trace.enabled")
	cfg.Trace.Endpoint = v.GetString("trace.endpoint")
	cfg.Trace.ServiceName = v.GetString("trace.service_name")
	cfg.ShortCode.Alphabet = v.GetString("shortcode.alphabet")
	cfg.ShortCode.MinLength = v.GetInt("shortcode.min_length")

	var err error
	if cfg.HTTP.ShutdownTimeout, err = parseDuration(v, "http.shutdown_timeout"); err != nil {
		return nil, err
	}
	if cfg.JWT.TTL, err = parseDuration(v, "jwt.ttl"); err != nil {
		return nil, err
	}
	if cfg.Redis.TTL, err = parseDuration(v, "redis.ttl"); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "sqlite3", "mysql", "postgres", "pgx":
	case "":
		return fmt.Errorf("JB_DB_DRIVER is required (sqlite3, mysql, postgres, pgx)")
	default:
		return fmt.Errorf("invalid JB_DB_DRIVER %q: must be sqlite3, mysql, postgres, or pgx", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("JB_DB_DSN is required")
	}
	if c.OIDC.Issuer != "" && c.OIDC.ClientID == "" {
		return fmt.Errorf("JB_OIDC_CLIENT_ID is required when JB_OIDC_ISSUER is set")
	}
	if c.JWT.Secret != "" && c.JWT.TTL <= 0 {
		return fmt.Errorf("JB_JWT_TTL must be positive")
	}
	if c.ShortCode.MinLength < 1 || c.ShortCode.MinLength > 32 {
		return fmt.Errorf("JB_SHORTCODE_MIN_LENGTH must be between 1 and 32, got %d", c.ShortCode.MinLength)
	}
	return nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", envName(key), err)
	}
	return d, nil
}

func envName(key string) string {
	return "JB_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
