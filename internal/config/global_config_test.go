package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, []string{"CCP: EPK", "Configuration file:"}, cfg.FilterConfig.Keywords)
	assert.Equal(t, "red", cfg.FilterConfig.HighlightWords["mismatch"])
	assert.Equal(t, "green", cfg.FilterConfig.HighlightWords["match"])
	assert.Equal(t, "blue", cfg.FilterConfig.HighlightWords["Configuration file:"])
	assert.True(t, cfg.LocatorConfig.IncludeArchives)
	assert.Equal(t, DefaultOutputPrefix, cfg.ReporterConfig.OutputPrefix)
	assert.Equal(t, DefaultReportTitle, cfg.ReporterConfig.ReportTitle)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	logger := zerolog.Nop()
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	configData := `
filter_config:
  keywords:
    - "error"
locator_config:
  base_path: "/data/logs"
  serials:
    - "82902308"
  include_archives: false
reporter_config:
  output_prefix: "nightly"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, logger)

	require.NoError(t, err)
	assert.Equal(t, []string{"error"}, cfg.FilterConfig.Keywords)
	assert.Equal(t, "/data/logs", cfg.LocatorConfig.BasePath)
	assert.Equal(t, []string{"82902308"}, cfg.LocatorConfig.Serials)
	assert.False(t, cfg.LocatorConfig.IncludeArchives)
	assert.Equal(t, "nightly", cfg.ReporterConfig.OutputPrefix)
	// Untouched sections keep their defaults.
	assert.Equal(t, "red", cfg.FilterConfig.HighlightWords["mismatch"])
}

func TestLoadGlobalConfig_TOMLFile(t *testing.T) {
	logger := zerolog.Nop()
	configFile := filepath.Join(t.TempDir(), "config.toml")

	configData := `
[locator_config]
base_path = "/mnt/logs"
serials = ["111", "222"]
include_archives = true
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, logger)

	require.NoError(t, err)
	assert.Equal(t, "/mnt/logs", cfg.LocatorConfig.BasePath)
	assert.Equal(t, []string{"111", "222"}, cfg.LocatorConfig.Serials)
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	logger := zerolog.Nop()
	configFile := filepath.Join(t.TempDir(), "config.json")

	configData := `{"reporter_config": {"report_title": "Custom Title"}}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, logger)

	require.NoError(t, err)
	assert.Equal(t, "Custom Title", cfg.ReporterConfig.ReportTitle)
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	logger := zerolog.Nop()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(":\n  - not: [valid"), 0644))

	cfg, err := LoadGlobalConfig(configFile, logger)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestApplyProfile(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	noArchives := false
	cfg.Profiles = map[string]ProfileConfig{
		"nightly": {
			BasePath:        "/mnt/nightly",
			Serials:         []string{"333"},
			IncludeArchives: &noArchives,
			OutputPrefix:    "nightly_results",
		},
	}

	require.NoError(t, cfg.ApplyProfile("nightly"))

	assert.Equal(t, "/mnt/nightly", cfg.LocatorConfig.BasePath)
	assert.Equal(t, []string{"333"}, cfg.LocatorConfig.Serials)
	assert.False(t, cfg.LocatorConfig.IncludeArchives)
	assert.Equal(t, "nightly_results", cfg.ReporterConfig.OutputPrefix)
	assert.Equal(t, "nightly", cfg.ActiveProfile)
}

func TestApplyProfile_PartialOverride(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LocatorConfig.BasePath = "/original"
	cfg.Profiles = map[string]ProfileConfig{
		"serials-only": {Serials: []string{"444"}},
	}

	require.NoError(t, cfg.ApplyProfile("serials-only"))

	assert.Equal(t, "/original", cfg.LocatorConfig.BasePath, "unset profile fields leave defaults untouched")
	assert.Equal(t, []string{"444"}, cfg.LocatorConfig.Serials)
	assert.True(t, cfg.LocatorConfig.IncludeArchives)
}

func TestApplyProfile_UnknownName(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	err := cfg.ApplyProfile("missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "profile not defined")
}

func TestApplyProfile_EmptyNameIsNoop(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	require.NoError(t, cfg.ApplyProfile(""))
	assert.Empty(t, cfg.ActiveProfile)
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, ValidateConfig(NewDefaultGlobalConfig()))
}

func TestValidateConfig_BadLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose"

	err := ValidateConfig(cfg)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestValidateConfig_BadStyleName(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.FilterConfig.HighlightWords = map[string]string{"match": "purple"}

	err := ValidateConfig(cfg)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stylename")
}

func TestSaveGlobalConfig_RoundTrip(t *testing.T) {
	logger := zerolog.Nop()
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	cfg := NewDefaultGlobalConfig()
	cfg.LocatorConfig.BasePath = "/saved/path"
	require.NoError(t, SaveGlobalConfig(cfg, configFile, logger))

	loaded, err := LoadGlobalConfig(configFile, logger)
	require.NoError(t, err)
	assert.Equal(t, "/saved/path", loaded.LocatorConfig.BasePath)
	assert.Equal(t, cfg.FilterConfig.Keywords, loaded.FilterConfig.Keywords)
}

func TestGetConfigPath_FlagMissingFileFallsThrough(t *testing.T) {
	// A flag pointing at a missing file falls back to the default search,
	// which finds nothing inside a scratch directory.
	t.Setenv("LOGSIFT_CONFIG_PATH", "")

	path := GetConfigPath(filepath.Join(t.TempDir(), "absent.yaml"))

	// The default locations depend on the working directory; only assert
	// that the missing flag path itself is never returned.
	assert.NotContains(t, path, "absent.yaml")
}

func TestGetConfigPath_EnvVariable(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "env-config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("{}"), 0644))
	t.Setenv("LOGSIFT_CONFIG_PATH", configFile)

	assert.Equal(t, configFile, GetConfigPath(""))
}
