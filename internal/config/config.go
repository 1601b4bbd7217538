package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string `mapstructure:"port"`
	AppEnv  string `mapstructure:"app_env"`
	GinMode string `mapstructure:"gin_mode"`

	Admin AdminConfig `mapstructure:"admin"`
	Store StoreConfig `mapstructure:"store"`

	RevalidateURL    string        `mapstructure:"revalidate_url"`
	RevalidateSecret string        `mapstructure:"revalidate_secret"`
	PageCacheTTL     time.Duration `mapstructure:"page_cache_ttl"`

	LoginRateLimit  int64         `mapstructure:"login_rate_limit"`
	LoginRateWindow time.Duration `mapstructure:"login_rate_window"`
}

type AdminConfig struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"`
	JWTSecret    string `mapstructure:"jwt_secret"`
	// AllowInsecureDefaultPassword lets the built-in password log in when
	// no password is configured. Refused in production.
	AllowInsecureDefaultPassword bool `mapstructure:"allow_insecure_default_password"`
}

type StoreConfig struct {
	// URL selects the backing store: redis://, rediss://, postgres://.
	// Empty means memory and seed data only.
	URL string `mapstructure:"url"`
	Key string `mapstructure:"key"`
}

var ErrInsecureDefaultInProduction = errors.New("ALLOW_INSECURE_DEFAULT_PASSWORD cannot be enabled when APP_ENV=production")

// envBindings maps config keys to the environment variables that set them.
// The first variable found wins.
var envBindings = map[string][]string{
	"port":                                  {"PORT"},
	"app_env":                               {"APP_ENV"},
	"gin_mode":                              {"GIN_MODE"},
	"admin.username":                        {"ADMIN_USERNAME"},
	"admin.password":                        {"ADMIN_PASSWORD"},
	"admin.password_hash":                   {"ADMIN_PASSWORD_HASH"},
	"admin.jwt_secret":                      {"ADMIN_JWT_SECRET"},
	"admin.allow_insecure_default_password": {"ALLOW_INSECURE_DEFAULT_PASSWORD"},
	"store.url":                             {"STORE_URL", "REDIS_URL"},
	"store.key":                             {"STORE_KEY"},
	"revalidate_url":                        {"REVALIDATE_URL"},
	"revalidate_secret":                     {"REVALIDATE_SECRET"},
	"page_cache_ttl":                        {"PAGE_CACHE_TTL"},
	"login_rate_limit":                      {"LOGIN_RATE_LIMIT"},
	"login_rate_window":                     {"LOGIN_RATE_WINDOW"},
}

// Load reads configuration from the environment and, when configFile is
// set or a config.yaml exists in the working directory, from that file.
// Environment variables take precedence over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	v.SetDefault("port", "4000")
	v.SetDefault("app_env", "development")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.allow_insecure_default_password", false)
	v.SetDefault("store.key", "flipword:topics-document")
	v.SetDefault("page_cache_ttl", time.Duration(0))
	v.SetDefault("login_rate_limit", 10)
	v.SetDefault("login_rate_window", time.Minute)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %v environment variables: %w", envs, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate rejects combinations that must never run. A missing JWT secret
// is not rejected here: public pages work without it and the session
// service fails closed on its own.
func (c *Config) Validate() error {
	if c.IsProduction() && c.Admin.AllowInsecureDefaultPassword {
		return ErrInsecureDefaultInProduction
	}
	if c.Admin.Username == "" {
		return errors.New("ADMIN_USERNAME must not be empty")
	}
	return nil
}
