package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, env := range envs {
			t.Setenv(env, "")
			os.Unsetenv(env)
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		configContent string
		want          *Config
		wantErr       error
		wantErrText   string
	}{
		{
			name: "defaults",
			want: &Config{
				Port:            "4000",
				AppEnv:          "development",
				Admin:           AdminConfig{Username: "admin"},
				Store:           StoreConfig{Key: "flipword:topics-document"},
				LoginRateLimit:  10,
				LoginRateWindow: time.Minute,
			},
		},
		{
			name: "environment variables",
			env: map[string]string{
				"PORT":                "8080",
				"ADMIN_USERNAME":      "editor",
				"ADMIN_PASSWORD":      "plain",
				"ADMIN_PASSWORD_HASH": "$2a$10$hash",
				"ADMIN_JWT_SECRET":    "secret",
				"REDIS_URL":           "redis://localhost:6379/0",
				"REVALIDATE_URL":      "http://frontend/api/revalidate",
				"PAGE_CACHE_TTL":      "30s",
				"LOGIN_RATE_LIMIT":    "3",
			},
			want: &Config{
				Port:   "8080",
				AppEnv: "development",
				Admin: AdminConfig{
					Username:     "editor",
					Password:     "plain",
					PasswordHash: "$2a$10$hash",
					JWTSecret:    "secret",
				},
				Store:           StoreConfig{URL: "redis://localhost:6379/0", Key: "flipword:topics-document"},
				RevalidateURL:   "http://frontend/api/revalidate",
				PageCacheTTL:    30 * time.Second,
				LoginRateLimit:  3,
				LoginRateWindow: time.Minute,
			},
		},
		{
			name: "STORE_URL wins over REDIS_URL",
			env: map[string]string{
				"STORE_URL": "postgres://flipword@db/flipword",
				"REDIS_URL": "redis://localhost:6379",
			},
			want: &Config{
				Port:            "4000",
				AppEnv:          "development",
				Admin:           AdminConfig{Username: "admin"},
				Store:           StoreConfig{URL: "postgres://flipword@db/flipword", Key: "flipword:topics-document"},
				LoginRateLimit:  10,
				LoginRateWindow: time.Minute,
			},
		},
		{
			name: "config file with env override",
			configContent: `port: "5000"
admin:
  username: fromfile
store:
  key: custom:key
`,
			env: map[string]string{"ADMIN_USERNAME": "fromenv"},
			want: &Config{
				Port:            "5000",
				AppEnv:          "development",
				Admin:           AdminConfig{Username: "fromenv"},
				Store:           StoreConfig{Key: "custom:key"},
				LoginRateLimit:  10,
				LoginRateWindow: time.Minute,
			},
		},
		{
			name: "insecure default allowed outside production",
			env:  map[string]string{"ALLOW_INSECURE_DEFAULT_PASSWORD": "true"},
			want: &Config{
				Port:            "4000",
				AppEnv:          "development",
				Admin:           AdminConfig{Username: "admin", AllowInsecureDefaultPassword: true},
				Store:           StoreConfig{Key: "flipword:topics-document"},
				LoginRateLimit:  10,
				LoginRateWindow: time.Minute,
			},
		},
		{
			name:    "insecure default refused in production",
			env:     map[string]string{"ALLOW_INSECURE_DEFAULT_PASSWORD": "true", "APP_ENV": "production"},
			wantErr: ErrInsecureDefaultInProduction,
		},
		{
			name:          "unreadable config file",
			configContent: "port: [[[\n",
			wantErrText:   "configuration file found but could not be read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			configFile := ""
			if tt.configContent != "" {
				configFile = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(configFile, []byte(tt.configContent), 0o644))
			} else {
				t.Chdir(t.TempDir())
			}

			got, err := Load(configFile)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantErrText != "" {
				assert.ErrorContains(t, err, tt.wantErrText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
