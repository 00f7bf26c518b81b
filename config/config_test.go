package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `env:
  env: development
  serviceName: keygate
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 10s
    writeTimeout: 15s
postgres:
  host: localhost
  port: 5432
  username: keygate
  password: secret
  database: keygate
  sslMode: disable
  connMaxLifetime: 5m
secretKey:
  access: test-secret
auth:
  bcryptCost: 10
  maxActiveSessions: 5
client:
  baseUrl: https://app.example.com
`

func writeTestConfig(t *testing.T, name, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_YAMLFile(t *testing.T) {
	writeTestConfig(t, "test", testYAML)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env.Env)
	assert.Equal(t, "keygate", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 5*time.Minute, cfg.Postgres.ConnMaxLifetime)
	assert.Equal(t, "test-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5, cfg.Auth.MaxActiveSessions)
	assert.Equal(t, "https://app.example.com", cfg.Client.BaseURL)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	writeTestConfig(t, "test", testYAML)

	// ENV_VAR segments must realign with the camelCase YAML keys.
	t.Setenv("POSTGRES_SSLMODE", "require")
	t.Setenv("SECRETKEY_ACCESS", "env-secret")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "require", cfg.Postgres.SSLMode)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("nope")

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Cookie)
	assert.Equal(t, "c_r_t", cfg.Cookie.RefreshName)
	assert.Equal(t, "signup_id", cfg.Cookie.SignupName)
	assert.Equal(t, "google_code_verifier", cfg.Cookie.VerifierName)
	assert.Equal(t, 5*24*time.Hour, cfg.Cookie.MaxAge)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.MaxActiveSessions)
	require.NotNil(t, cfg.Cleanup)
	assert.Equal(t, "@every 10m", cfg.Cleanup.Schedule)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{MaxActiveSessions: 3},
		Cookie:  &CookieConfig{RefreshName: "session", MaxAge: time.Hour},
		Cleanup: &CleanupConfig{Schedule: "@every 1h"},
	}
	applyDefaults(cfg)

	assert.Equal(t, 3, cfg.Auth.MaxActiveSessions)
	assert.Equal(t, "session", cfg.Cookie.RefreshName)
	assert.Equal(t, time.Hour, cfg.Cookie.MaxAge)
	assert.Equal(t, "@every 1h", cfg.Cleanup.Schedule)
	// Unset names still get filled in.
	assert.Equal(t, "signup_id", cfg.Cookie.SignupName)
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsProduction())

	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env.Env = "development"
	assert.False(t, cfg.IsProduction())
}
