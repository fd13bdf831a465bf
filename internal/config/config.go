package config

import (
	"encoding/json"
	"path/filepath"

	"logsift/internal/common"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Locator Defaults
	DefaultIncludeArchives = true

	// Reporter Defaults
	DefaultOutputPrefix       = "filtered_log_results"
	DefaultReportTitle        = "LOG File Filtering Results"
	DefaultSummaryTitle       = "Vehicle Summary"
	DefaultDailySummaryTitle  = "Daily Vehicle Summary"
	DefaultFilePermissions    = 0644
	DefaultNoDataHeadingRange = "Vehicles has no LOG files in selected date range"
	DefaultNoDataHeadingDaily = "Vehicles has no LOG files from today"
)

// GlobalConfig aggregates every per-concern configuration section.
type GlobalConfig struct {
	FilterConfig   FilterConfig             `json:"filter_config,omitempty" yaml:"filter_config,omitempty" toml:"filter_config,omitempty"`
	LocatorConfig  LocatorConfig            `json:"locator_config,omitempty" yaml:"locator_config,omitempty" toml:"locator_config,omitempty"`
	LogConfig      LogConfig                `json:"log_config,omitempty" yaml:"log_config,omitempty" toml:"log_config,omitempty"`
	ReporterConfig ReporterConfig           `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty" toml:"reporter_config,omitempty"`
	Profiles       map[string]ProfileConfig `json:"profiles,omitempty" yaml:"profiles,omitempty" toml:"profiles,omitempty"`
	ActiveProfile  string                   `json:"active_profile,omitempty" yaml:"active_profile,omitempty" toml:"active_profile,omitempty"`
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		FilterConfig:   NewDefaultFilterConfig(),
		LocatorConfig:  NewDefaultLocatorConfig(),
		LogConfig:      NewDefaultLogConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
	}
}

// FilterConfig supplies the keyword list and the highlight term -> style
// mapping consumed read-only by the filtering and reporting code.
type FilterConfig struct {
	Keywords       []string          `json:"keywords,omitempty" yaml:"keywords,omitempty" toml:"keywords,omitempty" validate:"omitempty,dive,required"`
	HighlightWords map[string]string `json:"highlight_words,omitempty" yaml:"highlight_words,omitempty" toml:"highlight_words,omitempty" validate:"omitempty,dive,stylename"`
}

func NewDefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Keywords: []string{"CCP: EPK", "Configuration file:"},
		HighlightWords: map[string]string{
			"mismatch":            "red",
			"match":               "green",
			"Configuration file:": "blue",
		},
	}
}

// LocatorConfig holds the default scan selection: base directory, identity
// strings (logger serials or vehicle names) and whether ZIP archives are
// searched alongside plain LOG files.
type LocatorConfig struct {
	BasePath        string   `json:"base_path,omitempty" yaml:"base_path,omitempty" toml:"base_path,omitempty"`
	Serials         []string `json:"serials,omitempty" yaml:"serials,omitempty" toml:"serials,omitempty"`
	IncludeArchives bool     `json:"include_archives" yaml:"include_archives" toml:"include_archives"`
}

func NewDefaultLocatorConfig() LocatorConfig {
	return LocatorConfig{
		BasePath:        "",
		Serials:         []string{},
		IncludeArchives: DefaultIncludeArchives,
	}
}

type ReporterConfig struct {
	OutputPrefix string `json:"output_prefix,omitempty" yaml:"output_prefix,omitempty" toml:"output_prefix,omitempty"`
	ReportTitle  string `json:"report_title,omitempty" yaml:"report_title,omitempty" toml:"report_title,omitempty"`
	SummaryTitle string `json:"summary_title,omitempty" yaml:"summary_title,omitempty" toml:"summary_title,omitempty"`
}

func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputPrefix: DefaultOutputPrefix,
		ReportTitle:  DefaultReportTitle,
		SummaryTitle: DefaultSummaryTitle,
	}
}

type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty" toml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" toml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" toml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty" toml:"max_log_backups,omitempty"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty" toml:"max_log_size_mb,omitempty"`
}

func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFile:       DefaultLogFile,
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}

// ProfileConfig is a named override set for the locator and reporter
// sections. Unset fields leave the corresponding default untouched.
type ProfileConfig struct {
	BasePath        string   `json:"base_path,omitempty" yaml:"base_path,omitempty" toml:"base_path,omitempty"`
	Serials         []string `json:"serials,omitempty" yaml:"serials,omitempty" toml:"serials,omitempty"`
	IncludeArchives *bool    `json:"include_archives,omitempty" yaml:"include_archives,omitempty" toml:"include_archives,omitempty"`
	OutputPrefix    string   `json:"output_prefix,omitempty" yaml:"output_prefix,omitempty" toml:"output_prefix,omitempty"`
}

// ApplyProfile merges the named profile into the locator and reporter
// sections. An unknown profile name is reported as an error so a typo does
// not silently scan the wrong directory.
func (cfg *GlobalConfig) ApplyProfile(name string) error {
	if name == "" {
		return nil
	}
	profile, ok := cfg.Profiles[name]
	if !ok {
		return common.NewValidationError("profile", name, "profile not defined in configuration")
	}

	if profile.BasePath != "" {
		cfg.LocatorConfig.BasePath = profile.BasePath
	}
	if len(profile.Serials) > 0 {
		cfg.LocatorConfig.Serials = profile.Serials
	}
	if profile.IncludeArchives != nil {
		cfg.LocatorConfig.IncludeArchives = *profile.IncludeArchives
	}
	if profile.OutputPrefix != "" {
		cfg.ReporterConfig.OutputPrefix = profile.OutputPrefix
	}
	cfg.ActiveProfile = name
	return nil
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and parses JSON,
// YAML or TOML based on the file extension. A missing config file is not an
// error; the defaults are returned unchanged.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	fileManager := common.NewFileManager(logger)
	if !fileManager.FileExists(filePath) {
		return nil, common.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := fileManager.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Configuration loaded")
	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	switch ext := filepath.Ext(filePath); {
	case isYAMLFile(ext):
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
	case ext == ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal TOML from '%s': %w", filePath, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
		}
	}
	return nil
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// SaveGlobalConfig saves the configuration to a file, choosing the encoding
// by extension the same way LoadGlobalConfig does.
func SaveGlobalConfig(cfg *GlobalConfig, filePath string, logger zerolog.Logger) error {
	if cfg == nil {
		return common.NewValidationError("config", cfg, "config cannot be nil")
	}
	if filePath == "" {
		filePath = "config.yaml"
	}

	var data []byte
	var err error
	switch ext := filepath.Ext(filePath); {
	case isYAMLFile(ext):
		data, err = yaml.Marshal(cfg)
	case ext == ".toml":
		data, err = toml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return common.WrapError(err, "failed to marshal config")
	}

	fileManager := common.NewFileManager(logger)
	if err := fileManager.WriteFile(filePath, data, DefaultFilePermissions); err != nil {
		return common.WrapError(err, "failed to write config file")
	}

	logger.Info().Str("path", filePath).Msg("Successfully saved config file")
	return nil
}
