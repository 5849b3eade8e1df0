package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asciipath/config"
	"github.com/katalvlaran/asciipath/report"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestLoad_Defaults checks the values used when nothing is configured.
func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load(viper.New(), config.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		LogLevel: "info",
		Output:   string(report.Text),
		Server: config.ServerConfig{
			Addr:        ":8080",
			MaxBody:     1 << 20,
			WalkTimeout: 5 * time.Second,
			MaxSteps:    1_000_000,
		},
	}, cfg)
}

// TestLoad_File checks values read from an explicit YAML file.
func TestLoad_File(t *testing.T) {
	path := writeFile(t, "pathwalk.yaml", `
log-level: debug
output: table
lenient: true
server:
  addr: 127.0.0.1:9000
  walk-timeout: 250ms
`)
	cfg, err := config.Load(viper.New(), config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "table", cfg.Output)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Server.WalkTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBody, "unset keys keep defaults")
}

// TestLoad_EnvOverridesFile checks precedence of environment variables.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "pathwalk.yaml", "output: table\n")
	t.Setenv("PATHWALK_OUTPUT", "json")
	t.Setenv("PATHWALK_SERVER_MAX_BODY", "2048")
	t.Setenv("PATHWALK_SERVER_MAX_STEPS", "500")

	cfg, err := config.Load(viper.New(), config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, int64(2048), cfg.Server.MaxBody)
	assert.Equal(t, 500, cfg.Server.MaxSteps)
}

// TestLoad_DotEnv checks that a .env file feeds the environment.
func TestLoad_DotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	// Register for cleanup; godotenv sets it through os.Setenv.
	t.Setenv("PATHWALK_CHECK", "")
	require.NoError(t, os.Unsetenv("PATHWALK_CHECK"))

	envFile := writeFile(t, ".env", "PATHWALK_CHECK=true\n")
	cfg, err := config.Load(viper.New(), config.LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.True(t, cfg.Check)
}

// TestLoad_MissingDotEnvIgnored checks that an absent .env is not an error.
func TestLoad_MissingDotEnvIgnored(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := config.Load(viper.New(), config.LoadOptions{EnvFile: filepath.Join(t.TempDir(), ".env")})
	require.NoError(t, err)
}

// TestLoad_Errors covers unreadable files and invalid values.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(viper.New(), config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "output: xml\n")
	_, err = config.Load(viper.New(), config.LoadOptions{ConfigFile: path})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)

	path = writeFile(t, "bad.yaml", "log-level: chatty\n")
	_, err = config.Load(viper.New(), config.LoadOptions{ConfigFile: path})
	assert.Error(t, err)

	path = writeFile(t, "bad.yaml", "server:\n  max-body: 0\n")
	_, err = config.Load(viper.New(), config.LoadOptions{ConfigFile: path})
	assert.Error(t, err)

	path = writeFile(t, "bad.yaml", "server:\n  walk-timeout: 0s\n")
	_, err = config.Load(viper.New(), config.LoadOptions{ConfigFile: path})
	assert.ErrorContains(t, err, config.KeyWalkTimeout)

	path = writeFile(t, "bad.yaml", "server:\n  max-steps: -1\n")
	_, err = config.Load(viper.New(), config.LoadOptions{ConfigFile: path})
	assert.ErrorContains(t, err, config.KeyMaxSteps)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
