package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"logsift/internal/archive"
	"logsift/internal/common"
	"logsift/internal/filter"
	"logsift/internal/locator"
	"logsift/internal/models"
	"logsift/internal/reporter"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// echoLimit caps how many example matches a run echoes to the log.
const echoLimit = 10

// Scanner wires discovery, archive expansion, keyword filtering and report
// generation into the caller-facing run operations. All processing is
// synchronous; a caller wanting a responsive surface offloads a whole run
// onto one background worker.
type Scanner struct {
	logger       zerolog.Logger
	locator      *locator.FileLocator
	expander     *archive.Expander
	filter       *filter.KeywordFilter
	textReporter *reporter.TextReporter
	htmlReporter *reporter.HTMLReporter
	styles       reporter.StyleTable
	reportTitle  string
}

// NewScanner creates a Scanner with all components wired up
func NewScanner(logger zerolog.Logger, reportTitle string) (*Scanner, error) {
	htmlReporter, err := reporter.NewHTMLReporter(logger)
	if err != nil {
		return nil, common.WrapError(err, "failed to initialize HTML reporter")
	}

	return &Scanner{
		logger:       logger.With().Str("module", "Scanner").Logger(),
		locator:      locator.NewFileLocator(logger),
		expander:     archive.NewExpander(logger),
		filter:       filter.NewKeywordFilter(logger),
		textReporter: reporter.NewTextReporter(logger),
		htmlReporter: htmlReporter,
		styles:       reporter.DefaultStyleTable(),
		reportTitle:  reportTitle,
	}, nil
}

// Locate discovers log and archive files under the base directory for the
// given identities and date range.
func (s *Scanner) Locate(basePath string, identities []string, from, to time.Time, includeArchives bool) ([]string, []string, error) {
	return s.locator.Locate(basePath, identities, from, to, includeArchives)
}

// ProcessSelected filters the given log and archive files by the keywords
// and, when anything matched, writes the text and HTML reports. Returns the
// matches grouped by source file base name.
func (s *Scanner) ProcessSelected(logFiles, archiveFiles []string, keywords []string, outputTxt, outputHTML string, highlightWords map[string]string) (map[string][]models.MatchedLine, error) {
	matchers := filter.Compile(keywords)
	results := make(map[string][]models.MatchedLine)
	var allLines []models.MatchedLine

	collect := func(lines []models.MatchedLine) {
		if len(lines) == 0 {
			return
		}
		results[lines[0].SourceFile] = append(results[lines[0].SourceFile], lines...)
		allLines = append(allLines, lines...)
	}

	if len(archiveFiles) > 0 {
		err := s.withScratchDir(func(scratchDir string) {
			for _, archivePath := range archiveFiles {
				s.logger.Info().Str("archive", filepath.Base(archivePath)).Msg("Processing ZIP file")
				for _, extracted := range s.expander.Expand(archivePath, scratchDir) {
					collect(s.filter.Scan(extracted, matchers))
				}
			}
		})
		if err != nil {
			return nil, err
		}
	}

	for _, logPath := range logFiles {
		collect(s.filter.Scan(logPath, matchers))
	}

	if len(allLines) > 0 {
		if err := s.textReporter.WriteText(allLines, outputTxt); err != nil {
			return results, err
		}
		if err := s.htmlReporter.WriteHTML(allLines, outputHTML, s.reportTitle, highlightWords); err != nil {
			return results, err
		}
	}

	s.echoMatches(allLines, highlightWords)
	return results, nil
}

// RunLocal runs against one local directory without identity or date
// filtering: every .LOG (and optionally .ZIP) below it is processed.
func (s *Scanner) RunLocal(dir string, includeArchives bool, keywords []string, outputTxt, outputHTML string, highlightWords map[string]string) (map[string][]models.MatchedLine, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, common.NewValidationError("directory", dir, "no such directory")
	}

	var logFiles, archiveFiles []string
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		upper := strings.ToUpper(d.Name())
		switch {
		case strings.HasSuffix(upper, ".LOG"):
			logFiles = append(logFiles, path)
		case includeArchives && strings.HasSuffix(upper, ".ZIP"):
			archiveFiles = append(archiveFiles, path)
		}
		return nil
	})
	if walkErr != nil {
		s.logger.Warn().Err(walkErr).Str("dir", dir).Msg("Directory walk aborted")
	}

	if len(logFiles) == 0 && len(archiveFiles) == 0 {
		s.logger.Info().Str("dir", dir).Msg("No .LOG or .ZIP files found in the specified folder")
		return map[string][]models.MatchedLine{}, nil
	}

	return s.ProcessSelected(logFiles, archiveFiles, keywords, outputTxt, outputHTML, highlightWords)
}

// withScratchDir creates a scratch directory exclusively owned by this run,
// invokes fn with it and removes it on every exit path.
func (s *Scanner) withScratchDir(fn func(scratchDir string)) error {
	scratchDir := filepath.Join(os.TempDir(), "logsift-"+uuid.NewString())
	if err := os.MkdirAll(scratchDir, 0755); err != nil {
		return common.WrapError(err, "failed to create scratch directory")
	}
	s.logger.Info().Str("scratch_dir", scratchDir).Msg("Created scratch directory for archive extraction")

	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			s.logger.Warn().Err(err).Str("scratch_dir", scratchDir).Msg("Failed to remove scratch directory")
			return
		}
		s.logger.Debug().Str("scratch_dir", scratchDir).Msg("Removed scratch directory")
	}()

	fn(scratchDir)
	return nil
}

// echoMatches logs up to echoLimit example matches with console highlighting.
func (s *Scanner) echoMatches(lines []models.MatchedLine, highlightWords map[string]string) {
	if len(lines) == 0 {
		s.logger.Info().Msg("No matches found in any files")
		return
	}

	shown := len(lines)
	if shown > echoLimit {
		shown = echoLimit
	}
	for _, line := range lines[:shown] {
		highlighted := reporter.HighlightConsole(line.Content, highlightWords, s.styles)
		s.logger.Info().Msg(fmt.Sprintf("%s - Line %d: %s", line.SourceFile, line.LineNumber, highlighted))
	}
	if rest := len(lines) - shown; rest > 0 {
		s.logger.Info().Msgf("...and %d more results", rest)
	}
}
