package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.App.Width)
	assert.Equal(t, 0, cfg.App.Height)
	assert.False(t, cfg.App.ShowFooter)
	assert.False(t, cfg.App.Verbose)
	assert.Equal(t, "local", cfg.App.Source)
	assert.Equal(t, 500*time.Millisecond, cfg.App.Catalog.Debounce)
	assert.False(t, cfg.Logging.Trace)
	assert.Empty(t, cfg.Logging.FilePath)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-width", "90",
		"-height", "30",
		"-footer",
		"-verbose",
		"-trace",
		"-log-file", "/tmp/popover-test.log",
		"-source", "catalog",
		"-catalog-url", "https://catalog.example.com/api",
		"-catalog-debounce", "750ms",
	}, []string{"POPOVER_CATALOG_TOKEN=sekrit"})
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.App.Width)
	assert.Equal(t, 30, cfg.App.Height)
	assert.True(t, cfg.App.ShowFooter)
	assert.True(t, cfg.App.Verbose)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/popover-test.log", cfg.Logging.FilePath)
	assert.Equal(t, "catalog", cfg.App.Source)
	assert.Equal(t, "https://catalog.example.com/api", cfg.App.Catalog.BaseURL)
	assert.Equal(t, "sekrit", cfg.App.Catalog.Token)
	assert.Equal(t, 750*time.Millisecond, cfg.App.Catalog.Debounce)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"POPOVER_WIDTH=120",
		"POPOVER_FOOTER=true",
		"POPOVER_SOURCE=catalog",
		"POPOVER_CATALOG_URL=https://catalog.example.com",
		"POPOVER_CATALOG_TOKEN=from-env",
		"POPOVER_CATALOG_DEBOUNCE=2s",
	})
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.App.Width)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, "catalog", cfg.App.Source)
	assert.Equal(t, "from-env", cfg.App.Catalog.Token)
	assert.Equal(t, 2*time.Second, cfg.App.Catalog.Debounce)
}

func TestLoadArgsFlagsBeatEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "50"}, []string{"POPOVER_WIDTH=120"})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.App.Width)
}

func TestLoadArgsTokenNeverReachesFlags(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"POPOVER_CATALOG_TOKEN=sekrit"})
	require.NoError(t, err)
	for name, value := range cfg.Flags {
		assert.NotEqual(t, "sekrit", value, "flag %s leaks the credential", name)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	_, err := LoadArgs([]string{"-width", "-1"}, nil)
	require.ErrorContains(t, err, "width must be >= 0")

	_, err = LoadArgs([]string{"-height", "-2"}, nil)
	require.ErrorContains(t, err, "height must be >= 0")
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	cfg, err := LoadArgs([]string{"-source", "ldap"}, nil)
	require.NoError(t, err)
	require.ErrorContains(t, Validate(cfg), "invalid configuration")
}

func TestValidateCatalogRequirements(t *testing.T) {
	cfg, err := LoadArgs([]string{"-source", "catalog"}, nil)
	require.NoError(t, err)
	require.ErrorContains(t, Validate(cfg), "catalog-url")

	cfg, err = LoadArgs(
		[]string{"-source", "catalog", "-catalog-url", "https://catalog.example.com"},
		nil,
	)
	require.NoError(t, err)
	require.ErrorContains(t, Validate(cfg), "POPOVER_CATALOG_TOKEN")
}
