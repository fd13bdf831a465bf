package filter

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"logsift/internal/models"

	"github.com/rs/zerolog"
)

// maxLineSize bounds the scanner buffer; logger lines are short but a
// corrupted file must not abort the scan.
const maxLineSize = 1024 * 1024

// Matcher is a compiled case-insensitive literal substring matcher.
// Keyword text is never interpreted as a pattern language.
type Matcher struct {
	keyword string
	lowered string
}

// Keyword returns the original keyword text.
func (m Matcher) Keyword() string { return m.keyword }

// MatchesLine reports whether the keyword occurs anywhere in the line.
func (m Matcher) MatchesLine(line string) bool {
	return strings.Contains(strings.ToLower(line), m.lowered)
}

// Compile turns each keyword into a case-insensitive substring matcher.
// Empty keywords are dropped.
func Compile(keywords []string) []Matcher {
	matchers := make([]Matcher, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		matchers = append(matchers, Matcher{keyword: kw, lowered: strings.ToLower(kw)})
	}
	return matchers
}

// KeywordFilter scans log files line by line for compiled keyword matchers.
type KeywordFilter struct {
	logger zerolog.Logger
}

// NewKeywordFilter creates a new KeywordFilter
func NewKeywordFilter(logger zerolog.Logger) *KeywordFilter {
	return &KeywordFilter{
		logger: logger.With().Str("module", "KeywordFilter").Logger(),
	}
}

// Scan opens the file as text and emits a MatchedLine for every line at
// least one matcher hits, with a 1-based line number and the line trimmed
// of surrounding whitespace. Undecodable bytes are replaced, never fatal.
// A missing or unreadable file is reported and yields an empty result.
func (kf *KeywordFilter) Scan(path string, matchers []Matcher) []models.MatchedLine {
	baseName := filepath.Base(path)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			kf.logger.Error().Str("file", path).Msg("File not found")
		} else {
			kf.logger.Error().Err(err).Str("file", path).Msg("Error opening file")
		}
		return nil
	}
	defer func() {
		if err := file.Close(); err != nil {
			kf.logger.Warn().Err(err).Str("file", baseName).Msg("Failed to close file")
		}
	}()

	kf.logger.Info().Str("file", baseName).Msg("Processing file")

	var matches []models.MatchedLine
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.ToValidUTF8(scanner.Text(), "�")

		for _, m := range matchers {
			if m.MatchesLine(line) {
				matches = append(matches, models.MatchedLine{
					SourceFile: baseName,
					LineNumber: lineNo,
					Content:    strings.TrimSpace(line),
				})
				break
			}
		}
	}

	if err := scanner.Err(); err != nil {
		kf.logger.Error().Err(err).Str("file", baseName).Msg("Error reading file")
	}

	return matches
}
