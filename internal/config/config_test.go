package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBuilder_LoadEnv(t *testing.T) {
	var (
		serverAddress  = "http://lieferspatz.loc"
		socketAddress  = "ws://lieferspatz.loc/ws"
		statePath      = "/tmp/state.json"
		metricsAddress = "localhost:9090"
		requestTimeout = 3 * time.Second
		pollInterval   = 20 * time.Second
		builder        = &Builder{
			parameters: &parameters{},
		}
	)

	t.Setenv("LIEFERSPATZ_ADDRESS", serverAddress)
	t.Setenv("SOCKET_ADDRESS", socketAddress)
	t.Setenv("INITIAL_STATE", statePath)
	t.Setenv("METRICS_ADDRESS", metricsAddress)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("POLL_INTERVAL", "20s")

	cfg, err := builder.LoadEnv().Build()
	require.NoError(t, err)
	assert.Equal(t, serverAddress, cfg.ServerAddress())
	assert.Equal(t, socketAddress, cfg.SocketAddress())
	assert.Equal(t, statePath, cfg.InitialStatePath())
	assert.Equal(t, metricsAddress, cfg.MetricsAddress())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, requestTimeout, cfg.RequestTimeout())
	assert.Equal(t, pollInterval, cfg.PollInterval())
}

func TestBuilder_LoadFlags(t *testing.T) {
	var (
		serverAddress  = "http://lieferspatz.loc"
		socketAddress  = "ws://lieferspatz.loc/ws"
		statePath      = "/tmp/state.json"
		metricsAddress = "localhost:9090"
		builder        = &Builder{
			parameters: &parameters{},
			arguments: []string{
				"-a", serverAddress,
				"-w", socketAddress,
				"-s", statePath,
				"-m", metricsAddress,
			},
		}
	)

	cfg, err := builder.LoadFlags().Build()
	require.NoError(t, err)
	assert.Equal(t, serverAddress, cfg.ServerAddress())
	assert.Equal(t, socketAddress, cfg.SocketAddress())
	assert.Equal(t, statePath, cfg.InitialStatePath())
	assert.Equal(t, metricsAddress, cfg.MetricsAddress())
}

func TestBuilder_LoadFlagsError(t *testing.T) {
	builder := &Builder{
		parameters: &parameters{},
		arguments:  []string{"-unknown"},
	}

	_, err := builder.LoadFlags().LoadEnv().Build()
	assert.Error(t, err, "неизвестный флаг")
}

func TestBuilder_LoadDotEnv(t *testing.T) {
	var (
		dir     = t.TempDir()
		path    = filepath.Join(dir, ".env")
		builder = &Builder{
			parameters: &parameters{},
		}
	)
	require.NoError(t, os.WriteFile(path, []byte("LOG_FORMAT=json\n"), 0o600))
	t.Setenv("LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))

	cfg, err := builder.LoadDotEnv(path).LoadEnv().Build()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat(), "переменные из файла .env")

	_, err = (&Builder{parameters: &parameters{}}).LoadDotEnv(filepath.Join(dir, "missing")).Build()
	assert.NoError(t, err, "отсутствующий файл .env не является ошибкой")
}

func TestNewBuilder(t *testing.T) {
	builder := NewBuilder()
	builder.arguments = nil

	cfg, err := builder.LoadFlags().Build()
	require.NoError(t, err)
	assert.Equal(t, defaultServerAddress, cfg.ServerAddress())
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout())
	assert.Equal(t, defaultPollInterval, cfg.PollInterval())
	assert.Equal(t, defaultFlashTTL, cfg.FlashTTL())
}
