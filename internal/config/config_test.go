package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidYAML_PopulatesFields(t *testing.T) {
	// Given
	path := writeConfig(t, `server:
  port: 8080
  corsOrigins: ["http://localhost:3000"]
database:
  driver: postgres
  host: db
  user: roi
  password: "p@ss"
  name: roi
minio:
  enabled: true
  endpoint: minio:9000
  presignTTL: 15m
log:
  level: debug
`)

	// When
	cfg, err := Load(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port, "driver default port")
	assert.Equal(t, 15*time.Minute, cfg.Minio.PresignTTL)
	assert.Equal(t, "roi-reports", cfg.Minio.BucketName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "postgres://roi:p%40ss@db:5432/roi?sslmode=disable", cfg.PostgresDSN())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Server.RateLimit.Capacity)
	assert.Equal(t, "$", cfg.Report.Currency)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [port: 1"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"unknown driver":       "database:\n  driver: sqlite\n",
		"mysql without host":   "database:\n  driver: mysql\n  name: roi\n",
		"port out of range":    "server:\n  port: 70000\n",
		"minio needs endpoint": "minio:\n  enabled: true\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	cfg := Default()
	cfg.Database.Driver = DriverMySQL
	cfg.Database.User = "roi"
	cfg.Database.Password = "secret"
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 3306
	cfg.Database.Name = "roi"

	assert.Equal(t, "roi:secret@tcp(127.0.0.1:3306)/roi?parseTime=true&charset=utf8mb4&loc=UTC", cfg.MySQLDSN())
}
