package main

import (
	"flag"
)

// AppFlags holds the parsed command-line options. Every value left empty
// falls back to the loaded configuration.
type AppFlags struct {
	ConfigFile      string
	Profile         string
	BasePath        string
	Serials         string
	Date            string
	DateFrom        string
	DateTo          string
	Directory       string
	OutputPrefix    string
	IncludeArchives bool
	NoArchives      bool
	Summary         bool
	DailySummary    bool
	SummaryTitle    string
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/TOML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	profile := flag.String("profile", "", "Named profile from the configuration file to apply.")

	basePath := flag.String("base", "", "Base directory holding the logger/vehicle folders. If empty, the configured value is used.")
	basePathAlias := flag.String("b", "", "Alias for -base")

	serials := flag.String("serial", "", "Comma-separated logger serial numbers or vehicle names. If empty, the configured values are used.")
	serialsAlias := flag.String("s", "", "Alias for -serial")

	date := flag.String("date", "", "Single date (YYYY-MM-DD). A file matches if its date window overlaps this date.")
	dateFrom := flag.String("from", "", "Start date (YYYY-MM-DD) for range filtering.")
	dateTo := flag.String("to", "", "End date (YYYY-MM-DD) for range filtering.")

	directory := flag.String("dir", "", "Run against one local directory instead of the base path discovery.")
	directoryAlias := flag.String("d", "", "Alias for -dir")

	outputPrefix := flag.String("output", "", "Prefix for the generated report files. If empty, the configured value is used.")
	outputPrefixAlias := flag.String("o", "", "Alias for -output")

	includeArchives := flag.Bool("include-zips", false, "Also process .ZIP archives containing LOG files.")
	noArchives := flag.Bool("no-zip", false, "Disable processing of .ZIP archives (overrides -include-zips and config).")

	summaryFlag := flag.Bool("summary", false, "Build the per-vehicle summary for the selected date range.")
	dailySummary := flag.Bool("daily-summary", false, "Build the per-vehicle summary for today only.")
	summaryTitle := flag.String("summary-title", "", "Title for the generated summary page.")

	flag.Parse()

	flags := AppFlags{
		ConfigFile:      *configFile,
		Profile:         *profile,
		BasePath:        *basePath,
		Serials:         *serials,
		Date:            *date,
		DateFrom:        *dateFrom,
		DateTo:          *dateTo,
		Directory:       *directory,
		OutputPrefix:    *outputPrefix,
		IncludeArchives: *includeArchives,
		NoArchives:      *noArchives,
		Summary:         *summaryFlag,
		DailySummary:    *dailySummary,
		SummaryTitle:    *summaryTitle,
	}

	if flags.ConfigFile == "" {
		flags.ConfigFile = *configFileAlias
	}
	if flags.BasePath == "" {
		flags.BasePath = *basePathAlias
	}
	if flags.Serials == "" {
		flags.Serials = *serialsAlias
	}
	if flags.Directory == "" {
		flags.Directory = *directoryAlias
	}
	if flags.OutputPrefix == "" {
		flags.OutputPrefix = *outputPrefixAlias
	}

	return flags
}
