package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"logsift/internal/config"
	"logsift/internal/logger"
	"logsift/internal/scanner"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

func main() {
	fmt.Println("logsift starting...")

	flags := ParseFlags()

	// Load Global Configuration (path determined by the config flag)
	bootstrapLogger := zerolog.Nop()
	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile, bootstrapLogger)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", flags.ConfigFile, err)
	}
	if gCfg == nil {
		log.Fatalf("[FATAL] Main: Loaded configuration is nil, though no error was reported. This should not happen.")
	}

	profile := flags.Profile
	if profile == "" {
		profile = gCfg.ActiveProfile
	}
	if err := gCfg.ApplyProfile(profile); err != nil {
		log.Fatalf("[FATAL] Main: Could not apply profile '%s': %v", profile, err)
	}

	// Initialize zerolog logger with a unique run ID
	runID := uuid.NewString()
	zLogger, err := logger.NewWithRunID(gCfg.LogConfig, runID)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}
	zLogger.Info().Str("run_id", runID).Msg("Logger initialized successfully.")
	if profile != "" {
		zLogger.Info().Str("profile", profile).Msg("Configuration profile applied.")
	}

	// Validate the loaded configuration
	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	applyFlagOverrides(gCfg, flags, zLogger)

	from, to, err := resolveDates(flags)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Invalid date arguments")
	}

	scan, err := scanner.NewScanner(zLogger, gCfg.ReporterConfig.ReportTitle)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize scanner")
	}

	if err := run(scan, gCfg, flags, from, to); err != nil {
		zLogger.Fatal().Err(err).Msg("Run failed")
	}
	zLogger.Info().Msg("Run completed.")
}

// applyFlagOverrides merges the command-line values over the loaded
// configuration. Flags always win over the file.
func applyFlagOverrides(gCfg *config.GlobalConfig, flags AppFlags, zLogger zerolog.Logger) {
	if flags.BasePath != "" {
		gCfg.LocatorConfig.BasePath = flags.BasePath
	}
	if flags.Serials != "" {
		gCfg.LocatorConfig.Serials = splitList(flags.Serials)
	}
	if flags.IncludeArchives {
		gCfg.LocatorConfig.IncludeArchives = true
	}
	if flags.NoArchives {
		gCfg.LocatorConfig.IncludeArchives = false
	}
	if flags.OutputPrefix != "" {
		gCfg.ReporterConfig.OutputPrefix = flags.OutputPrefix
	}
	if flags.SummaryTitle != "" {
		gCfg.ReporterConfig.SummaryTitle = flags.SummaryTitle
	}
	zLogger.Debug().
		Str("base_path", gCfg.LocatorConfig.BasePath).
		Strs("serials", gCfg.LocatorConfig.Serials).
		Bool("include_archives", gCfg.LocatorConfig.IncludeArchives).
		Msg("Effective run configuration")
}

// resolveDates turns the -date/-from/-to flags into a requested window.
// -date sets both ends to the same day and excludes -from/-to.
func resolveDates(flags AppFlags) (time.Time, time.Time, error) {
	var from, to time.Time

	if flags.Date != "" {
		if flags.DateFrom != "" || flags.DateTo != "" {
			return from, to, fmt.Errorf("-date cannot be combined with -from/-to")
		}
		day, err := time.Parse(dateLayout, flags.Date)
		if err != nil {
			return from, to, fmt.Errorf("invalid -date value '%s': %w", flags.Date, err)
		}
		return day, day, nil
	}

	if flags.DateFrom != "" {
		day, err := time.Parse(dateLayout, flags.DateFrom)
		if err != nil {
			return from, to, fmt.Errorf("invalid -from value '%s': %w", flags.DateFrom, err)
		}
		from = day
	}
	if flags.DateTo != "" {
		day, err := time.Parse(dateLayout, flags.DateTo)
		if err != nil {
			return from, to, fmt.Errorf("invalid -to value '%s': %w", flags.DateTo, err)
		}
		to = day
	}
	return from, to, nil
}

// run dispatches to the requested operation: summary, daily summary, local
// directory scan or the default base-path scan.
func run(scan *scanner.Scanner, gCfg *config.GlobalConfig, flags AppFlags, from, to time.Time) error {
	keywords := gCfg.FilterConfig.Keywords
	highlights := gCfg.FilterConfig.HighlightWords
	prefix := gCfg.ReporterConfig.OutputPrefix
	outputTxt := prefix + ".txt"
	outputHTML := prefix + ".html"

	switch {
	case flags.DailySummary:
		return scan.RunDailySummary(
			gCfg.LocatorConfig.BasePath,
			gCfg.LocatorConfig.Serials,
			gCfg.LocatorConfig.IncludeArchives,
			prefix, keywords, highlights,
		)

	case flags.Summary:
		return scan.RunSummary(
			gCfg.LocatorConfig.BasePath,
			gCfg.LocatorConfig.Serials,
			from, to,
			gCfg.LocatorConfig.IncludeArchives,
			prefix, keywords, highlights,
			gCfg.ReporterConfig.SummaryTitle,
		)

	case flags.Directory != "":
		_, err := scan.RunLocal(flags.Directory, gCfg.LocatorConfig.IncludeArchives, keywords, outputTxt, outputHTML, highlights)
		return err

	default:
		logFiles, archiveFiles, err := scan.Locate(
			gCfg.LocatorConfig.BasePath,
			gCfg.LocatorConfig.Serials,
			from, to,
			gCfg.LocatorConfig.IncludeArchives,
		)
		if err != nil {
			return err
		}
		_, err = scan.ProcessSelected(logFiles, archiveFiles, keywords, outputTxt, outputHTML, highlights)
		return err
	}
}

// splitList parses a comma-separated flag value into trimmed entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
