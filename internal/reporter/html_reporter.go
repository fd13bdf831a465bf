package reporter

import (
	"bytes"
	"embed"
	"html/template"
	"os"
	"strings"
	"time"

	"logsift/internal/common"
	"logsift/internal/models"

	"github.com/rs/zerolog"
)

//go:embed templates/report.html.tmpl templates/summary.html.tmpl
var templateFS embed.FS

const (
	reportTemplateName  = "report.html.tmpl"
	summaryTemplateName = "summary.html.tmpl"
)

// HTMLReporter renders the highlighted match report and the vehicle summary
// from embedded templates.
type HTMLReporter struct {
	logger          zerolog.Logger
	reportTemplate  *template.Template
	summaryTemplate *template.Template
}

// NewHTMLReporter creates a new HTMLReporter with parsed embedded templates
func NewHTMLReporter(logger zerolog.Logger) (*HTMLReporter, error) {
	moduleLogger := logger.With().Str("module", "HTMLReporter").Logger()

	reportTmpl, err := loadEmbeddedTemplate(reportTemplateName)
	if err != nil {
		return nil, err
	}
	summaryTmpl, err := loadEmbeddedTemplate(summaryTemplateName)
	if err != nil {
		return nil, err
	}

	return &HTMLReporter{
		logger:          moduleLogger,
		reportTemplate:  reportTmpl,
		summaryTemplate: summaryTmpl,
	}, nil
}

// loadEmbeddedTemplate parses one embedded template by name
func loadEmbeddedTemplate(name string) (*template.Template, error) {
	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, common.WrapError(err, "failed to load embedded template "+name)
	}

	cleaned := strings.ReplaceAll(string(content), "\r\n", "\n")
	tmpl, err := template.New(name).Parse(cleaned)
	if err != nil {
		return nil, common.WrapError(err, "failed to parse embedded template "+name)
	}
	return tmpl, nil
}

// WriteHTML renders the styled match report: each match becomes a block
// showing file and line with the configured highlight words wrapped in
// styled spans.
func (hr *HTMLReporter) WriteHTML(lines []models.MatchedLine, outputPath, title string, highlightWords map[string]string) error {
	pageData := models.ReportPageData{
		Title:        title,
		GeneratedAt:  time.Now().Format("2006-01-02 15:04:05"),
		TotalMatches: len(lines),
	}

	for _, line := range lines {
		pageData.Lines = append(pageData.Lines, models.MatchedLineDisplay{
			SourceFile: line.SourceFile,
			LineNumber: line.LineNumber,
			Content:    template.HTML(HighlightHTML(line.Content, highlightWords)),
		})
	}

	if err := hr.executeAndWrite(hr.reportTemplate, pageData, outputPath); err != nil {
		return err
	}

	hr.logger.Info().Str("output", outputPath).Int("matches", len(lines)).Msg("HTML report saved")
	return nil
}

// WriteSummary renders the grouped vehicle summary page.
func (hr *HTMLReporter) WriteSummary(pageData models.SummaryPageData, outputPath string) error {
	if pageData.GeneratedAt == "" {
		pageData.GeneratedAt = time.Now().Format("2006-01-02 15:04:05")
	}

	if err := hr.executeAndWrite(hr.summaryTemplate, pageData, outputPath); err != nil {
		return err
	}

	hr.logger.Info().
		Str("output", outputPath).
		Int("vehicles", len(pageData.Vehicles)).
		Int("no_data", len(pageData.NoData)).
		Msg("Vehicle summary saved")
	return nil
}

// executeAndWrite executes a template and writes the result to a file
func (hr *HTMLReporter) executeAndWrite(tmpl *template.Template, data interface{}, outputPath string) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		hr.logger.Error().Err(err).Str("output", outputPath).Msg("Failed to execute template")
		return common.WrapError(err, "template execution failed")
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), FilePermissions); err != nil {
		hr.logger.Error().Err(err).Str("output", outputPath).Msg("Failed to write report file")
		return common.WrapError(err, "failed to write report to "+outputPath)
	}
	return nil
}
