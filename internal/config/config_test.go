package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile — запись временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

// chdir — смена рабочего каталога с авто-возвратом.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

const sampleYAML = `
env: "prod"
http:
  host: "0.0.0.0"
  port: "8080"
  base_path: "/v1"
db:
  url: "postgres://u:p@db:5432/chirper"
  max_conns: 7
  max_conn_idle_time: "45s"
  connect_timeout: "3s"
auth:
  access_secret: "a-secret"
  refresh_secret: "r-secret"
  access_ttl: "1h"
  refresh_ttl: "48h"
  issuer: "iss"
  access_audience: "aud-a"
  refresh_audience: "aud-r"
limits:
  default: 10
  max: 50
avatar:
  allowed_content_types: ["image/png"]
cors:
  allowed_origins: ["https://chirper.example"]
timeouts:
  request: "3s"
`

// Минимальный YAML: только обязательные поля, остальное из дефолтов.
const minimalYAML = `
env: "dev"
db:
  url: "postgres://localhost/chirper"
auth:
  access_secret: "a"
  refresh_secret: "r"
`

const brokenYAML = `
env: [unclosed
`

func TestHTTPConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := HTTPConfig{Host: "0.0.0.0", Port: "8080"}
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestConfig_ExposeInternalErrors(t *testing.T) {
	t.Parallel()

	require.True(t, (&Config{Env: EnvLocal}).ExposeInternalErrors())
	require.True(t, (&Config{Env: EnvDev}).ExposeInternalErrors())
	require.False(t, (&Config{Env: EnvProd}).ExposeInternalErrors())
	require.False(t, (&Config{Env: "stage"}).ExposeInternalErrors())
}

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	require.Equal(t, "/v1", cfg.HTTP.BasePath)

	require.Equal(t, "postgres://u:p@db:5432/chirper", cfg.DB.URL)
	require.EqualValues(t, 7, cfg.DB.MaxConns)
	require.Equal(t, 45*time.Second, cfg.DB.MaxConnIdleTime)
	require.Equal(t, 3*time.Second, cfg.DB.ConnectTimeout)

	require.Equal(t, "a-secret", cfg.Auth.AccessSecret)
	require.Equal(t, "r-secret", cfg.Auth.RefreshSecret)
	require.Equal(t, time.Hour, cfg.Auth.AccessTTL)
	require.Equal(t, 48*time.Hour, cfg.Auth.RefreshTTL)
	require.Equal(t, "iss", cfg.Auth.Issuer)
	require.Equal(t, "aud-a", cfg.Auth.AccessAudience)
	require.Equal(t, "aud-r", cfg.Auth.RefreshAudience)

	require.Equal(t, 10, cfg.Limits.Default)
	require.Equal(t, 50, cfg.Limits.Max)
	require.Equal(t, []string{"image/png"}, cfg.Avatar.AllowedContentTypes)
	require.Equal(t, []string{"https://chirper.example"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Request)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", minimalYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "/api", cfg.HTTP.BasePath)
	require.Equal(t, "3001", cfg.HTTP.Port)
	require.EqualValues(t, 20, cfg.DB.MaxConns)
	require.Equal(t, 30*time.Second, cfg.DB.MaxConnIdleTime)
	require.Equal(t, 2*time.Second, cfg.DB.ConnectTimeout)

	require.Equal(t, 168*time.Hour, cfg.Auth.AccessTTL)
	require.Equal(t, 720*time.Hour, cfg.Auth.RefreshTTL)
	require.Equal(t, "chirper", cfg.Auth.Issuer)
	require.Equal(t, "chirper-users", cfg.Auth.AccessAudience)
	require.Equal(t, "chirper-refresh", cfg.Auth.RefreshAudience)

	require.EqualValues(t, 65536, cfg.Password.MemoryKiB)
	require.EqualValues(t, 3, cfg.Password.Iterations)
	require.EqualValues(t, 1, cfg.Password.Parallelism)

	require.Equal(t, 20, cfg.Limits.Default)
	require.Equal(t, 100, cfg.Limits.Max)

	require.Empty(t, cfg.Redis.URL)
	require.Empty(t, cfg.NATS.URL)
	require.Empty(t, cfg.S3.Endpoint)
	require.Equal(t, []string{"image/jpeg", "image/png", "image/webp"}, cfg.Avatar.AllowedContentTypes)
	require.Equal(t, 20, cfg.RateLimit.AuthRequests)
	require.Equal(t, time.Minute, cfg.RateLimit.Window)
	require.Equal(t, 10*time.Second, cfg.Timeouts.Shutdown)
}

func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_WithExplicitPath_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "stat failed")
}

func TestLoad_WithCONFIG_PATH_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "from_env_path.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
}

func TestLoad_WithLocalYAML_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "8080", cfg.HTTP.Port)
}

// CONFIG_PATH важнее local.yaml.
func TestLoad_Priority_ENVWinsOverLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, ".", "local.yaml", sampleYAML)
	envPath := writeFile(t, dir, "from_env.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", envPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
}

// Явный путь важнее CONFIG_PATH и local.yaml.
func TestLoad_Priority_ExplicitWinsOverEnvAndLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	explicit := writeFile(t, dir, "explicit.yaml", sampleYAML)
	badFromEnv := writeFile(t, dir, "bad.yaml", brokenYAML)
	t.Setenv("CONFIG_PATH", badFromEnv)
	writeFile(t, ".", "local.yaml", minimalYAML)

	cfg, err := Load(explicit)
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
}

func TestLoad_EnvOverlay_OverridesValuesFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	t.Setenv("HTTP_PORT", "18080")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("LIMIT_MAX", "25")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "18080", cfg.HTTP.Port)
	require.Equal(t, "from-env", cfg.Auth.AccessSecret)
	require.Equal(t, 25, cfg.Limits.Max)
	require.Equal(t, 5*time.Second, cfg.Timeouts.Request)
}

// «Только ENV» без файлов.
func TestLoad_EnvOnly_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")

	t.Setenv("ENV", "dev")
	t.Setenv("DATABASE_URL", "postgres://env/chirper")
	t.Setenv("JWT_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "postgres://env/chirper", cfg.DB.URL)
	require.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	require.Equal(t, "/api", cfg.HTTP.BasePath)
}

func TestLoad_EnvOnly_MissingRequired(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "config not found")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// Пустой секрет из ENV перекрывает файл и должен отвергаться.
func TestLoad_EmptySecretOverlay(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", minimalYAML)

	t.Setenv("JWT_SECRET", "")

	_, err := Load(cfgPath)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "access_secret")
}

func TestLoad_EqualSecrets(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")

	t.Setenv("DATABASE_URL", "postgres://env/chirper")
	t.Setenv("JWT_SECRET", "same")
	t.Setenv("JWT_REFRESH_SECRET", "same")

	_, err := Load("")
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "must differ")
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			DB:   DBConfig{URL: "postgres://localhost/chirper"},
			Auth: AuthConfig{AccessSecret: "a", RefreshSecret: "r"},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.validate())

	cases := map[string]func(c *Config){
		"empty db url":         func(c *Config) { c.DB.URL = "" },
		"empty access secret":  func(c *Config) { c.Auth.AccessSecret = "" },
		"empty refresh secret": func(c *Config) { c.Auth.RefreshSecret = "" },
		"equal secrets":        func(c *Config) { c.Auth.RefreshSecret = c.Auth.AccessSecret },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			require.ErrorIs(t, c.validate(), ErrInvalidConfig)
		})
	}
}

func TestMustLoad_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", minimalYAML)

	require.NotPanics(t, func() {
		cfg := MustLoad(cfgPath)
		require.Equal(t, "dev", cfg.Env)
	})
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	require.Panics(t, func() { _ = MustLoad(cfgPath) })
}
