package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[logs]
level = "debug"

[google]
credentials_path = "/etc/calendar/credentials.json"

[calendar]
spreadsheet_id = "from-file"
date_start_cell = "C7"
date_start = "24.11.2025"

[database]
enabled = true
host = "db"
user = "calendar"
dbname = "calendar"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.LoadRatePerMinute)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "C7", cfg.Calendar.DateStartCell)
	assert.Equal(t, "24.11.2025", cfg.Calendar.DateStart)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "host=db port=5432 user=calendar password= dbname=calendar sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 15, cfg.Auth.AccessTokenExpireMinutes)
	assert.Equal(t, 7, cfg.Auth.RefreshTokenExpireDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "from-env")
	t.Setenv("DATE_START", "2025-12-01")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Calendar.SpreadsheetID)
	assert.Equal(t, "2025-12-01", cfg.Calendar.DateStart)
	assert.Equal(t, 30, cfg.Auth.AccessTokenExpireMinutes)
}

func TestLoad_InvalidEnvInt(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_EXPIRE_DAYS", "week")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("GOOGLE_CREDENTIALS_PATH", "")

	_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
	assert.ErrorContains(t, err, "credentials_path")

	_, err = Load(writeConfig(t, sampleConfig+"\n[auth]\nenabled = true\n"))
	assert.ErrorContains(t, err, "auth")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
