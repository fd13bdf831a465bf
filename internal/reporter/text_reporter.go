package reporter

import (
	"fmt"
	"os"
	"strings"

	"logsift/internal/common"
	"logsift/internal/models"

	"github.com/rs/zerolog"
)

// FilePermissions for generated report files
const FilePermissions = 0644

// TextReporter writes the plain-text match report.
type TextReporter struct {
	logger zerolog.Logger
}

// NewTextReporter creates a new TextReporter
func NewTextReporter(logger zerolog.Logger) *TextReporter {
	return &TextReporter{
		logger: logger.With().Str("module", "TextReporter").Logger(),
	}
}

// WriteText writes a header with the total match count followed by one line
// per match formatted as "{file} - Line {n}: {content}". The file is
// written fresh on each run.
func (tr *TextReporter) WriteText(lines []models.MatchedLine, outputPath string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total matches found: %d\n", len(lines))
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	for _, line := range lines {
		fmt.Fprintf(&b, "%s - Line %d: %s\n", line.SourceFile, line.LineNumber, line.Content)
	}

	if err := os.WriteFile(outputPath, []byte(b.String()), FilePermissions); err != nil {
		tr.logger.Error().Err(err).Str("output", outputPath).Msg("Failed to write text report")
		return common.WrapError(err, "failed to write text report to "+outputPath)
	}

	tr.logger.Info().Str("output", outputPath).Int("matches", len(lines)).Msg("Text report saved")
	return nil
}
