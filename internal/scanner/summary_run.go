package scanner

import (
	"path/filepath"
	"time"

	"logsift/internal/common"
	"logsift/internal/config"
	"logsift/internal/filter"
	"logsift/internal/locator"
	"logsift/internal/models"
	"logsift/internal/reporter"
	"logsift/internal/summary"
)

// summaryOptions carries the per-run parameters of a vehicle summary.
type summaryOptions struct {
	basePath        string
	identities      []string
	from, to        time.Time
	includeArchives bool
	keywords        []string
	highlightWords  map[string]string
	title           string
	noDataHeading   string
	outputPath      string
}

// RunSummary builds the per-vehicle summary over an arbitrary date range
// and writes it to {outputPrefix}_summary.html.
func (s *Scanner) RunSummary(basePath string, identities []string, from, to time.Time, includeArchives bool, outputPrefix string, keywords []string, highlightWords map[string]string, title string) error {
	if title == "" {
		title = config.DefaultSummaryTitle
	}
	return s.runSummary(summaryOptions{
		basePath:        basePath,
		identities:      identities,
		from:            from,
		to:              to,
		includeArchives: includeArchives,
		keywords:        keywords,
		highlightWords:  highlightWords,
		title:           title,
		noDataHeading:   config.DefaultNoDataHeadingRange,
		outputPath:      outputPrefix + "_summary.html",
	})
}

// RunDailySummary builds the summary for today's date only and writes it to
// {outputPrefix}_daily_summary.html.
func (s *Scanner) RunDailySummary(basePath string, identities []string, includeArchives bool, outputPrefix string, keywords []string, highlightWords map[string]string) error {
	today := models.Day(time.Now())
	return s.runSummary(summaryOptions{
		basePath:        basePath,
		identities:      identities,
		from:            today,
		to:              today,
		includeArchives: includeArchives,
		keywords:        keywords,
		highlightWords:  highlightWords,
		title:           config.DefaultDailySummaryTitle,
		noDataHeading:   config.DefaultNoDataHeadingDaily,
		outputPath:      outputPrefix + "_daily_summary.html",
	})
}

// runSummary locates the files, filters them, groups matches per vehicle
// and renders the summary page, tracking which requested identities
// produced no files at all.
func (s *Scanner) runSummary(opts summaryOptions) error {
	identities := locator.CleanIdentities(opts.identities)
	if len(identities) == 0 {
		return common.NewValidationError("identities", opts.identities, "no serial numbers or vehicle names specified for summary")
	}

	s.logger.Info().
		Time("from", locator.RequestedWindow(opts.from, opts.to).Start).
		Time("to", locator.RequestedWindow(opts.from, opts.to).End).
		Strs("identities", identities).
		Msg("Running vehicle summary")

	logFiles, archiveFiles, err := s.locator.Locate(opts.basePath, identities, opts.from, opts.to, opts.includeArchives)
	if err != nil {
		return err
	}
	s.logger.Info().
		Int("log_files", len(logFiles)).
		Int("archive_files", len(archiveFiles)).
		Msg("Files found for summary")

	matchers := filter.Compile(opts.keywords)
	var allLines []models.MatchedLine
	identitiesWithFiles := make(map[string]struct{})

	markIdentity := func(path string) {
		if id := locator.IdentityFromPath(opts.basePath, path); id != "" {
			identitiesWithFiles[id] = struct{}{}
		}
	}

	for _, logPath := range logFiles {
		markIdentity(logPath)
		allLines = append(allLines, s.filter.Scan(logPath, matchers)...)
	}

	if len(archiveFiles) > 0 {
		err := s.withScratchDir(func(scratchDir string) {
			for _, archivePath := range archiveFiles {
				markIdentity(archivePath)
				s.logger.Info().Str("archive", filepath.Base(archivePath)).Msg("Processing ZIP file for summary")
				for _, extracted := range s.expander.Expand(archivePath, scratchDir) {
					allLines = append(allLines, s.filter.Scan(extracted, matchers)...)
				}
			}
		})
		if err != nil {
			return err
		}
	}

	builder := summary.NewBuilder(s.logger)
	records := builder.Build(allLines)

	withData := make([]string, 0, len(identitiesWithFiles))
	for id := range identitiesWithFiles {
		withData = append(withData, id)
	}
	noData := summary.MissingIdentities(identities, withData)

	pageData := reporter.BuildSummaryPageData(records, noData, opts.title, opts.noDataHeading)
	if err := s.htmlReporter.WriteSummary(pageData, opts.outputPath); err != nil {
		return err
	}

	abs, err := filepath.Abs(opts.outputPath)
	if err != nil {
		abs = opts.outputPath
	}
	s.logger.Info().Str("output", abs).Msg("Summary saved")
	return nil
}
