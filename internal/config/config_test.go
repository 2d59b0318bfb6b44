package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, StoreCSV, cfg.Store.Driver)
	assert.Equal(t, "strict", cfg.Ledger.JoinPolicy)
	assert.Equal(t, "LKR", cfg.Ledger.Currency)
	assert.Equal(t, 10, cfg.Ledger.HistogramBins)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "0 8 * * 1", cfg.WeeklyReport.CronSchedule)
	assert.False(t, cfg.WeeklyReport.Enabled)
	assert.Equal(t, 1.0, cfg.RateLimit.LoginRPS)
	assert.Equal(t, 5, cfg.RateLimit.LoginBurst)
}

func TestNewConfigFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())

	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/ledger.db")
	t.Setenv("BRANCH_JOIN_POLICY", "auto_insert")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("WEEKLY_REPORT_ENABLED", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/ledger.db", cfg.Store.SQLitePath)
	assert.Equal(t, "auto_insert", cfg.Ledger.JoinPolicy)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL)
	assert.True(t, cfg.WeeklyReport.Enabled)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store:  Store{Driver: StoreCSV, DataDir: "."},
			Auth:   Auth{TokenTTL: time.Hour},
			Ledger: Ledger{HistogramBins: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "csv válido", mutate: func(c *Config) {}},
		{name: "driver desconhecido", mutate: func(c *Config) { c.Store.Driver = "mysql" }, wantErr: true},
		{name: "postgres sem url", mutate: func(c *Config) { c.Store.Driver = StorePostgres }, wantErr: true},
		{name: "bins zerado", mutate: func(c *Config) { c.Ledger.HistogramBins = 0 }, wantErr: true},
		{name: "ttl zerado", mutate: func(c *Config) { c.Auth.TokenTTL = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
