package scanner

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"logsift/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHighlights = map[string]string{
	"mismatch":            "red",
	"match":               "green",
	"Configuration file:": "blue",
}

func newTestScanner(t *testing.T) *Scanner {
	t.Helper()
	s, err := NewScanner(zerolog.Nop(), "LOG File Filtering Results")
	require.NoError(t, err)
	return s
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeZipWithLog(t *testing.T, dir, zipName, entryName, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, zipName)

	out, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(out)
	entry, err := w.Create(entryName)
	require.NoError(t, err)
	_, err = entry.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, out.Close())
	return path
}

func TestRunLocal_WritesReports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "VEH_20250110_T120000.LOG", "boot ok\nConfiguration file: VEH_cfg.xml\n")

	outDir := t.TempDir()
	outputTxt := filepath.Join(outDir, "results.txt")
	outputHTML := filepath.Join(outDir, "results.html")

	s := newTestScanner(t)
	results, err := s.RunLocal(dir, true, []string{"Configuration file:"}, outputTxt, outputHTML, testHighlights)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results["VEH_20250110_T120000.LOG"], 1)

	txt, err := os.ReadFile(outputTxt)
	require.NoError(t, err)
	assert.Contains(t, string(txt), "Total matches found: 1")
	assert.Contains(t, string(txt), "VEH_20250110_T120000.LOG - Line 2: Configuration file: VEH_cfg.xml")

	html, err := os.ReadFile(outputHTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<span class="configuration">Configuration file:</span>`)
}

func TestRunLocal_NoMatchesWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "quiet.LOG", "nothing interesting\n")

	outDir := t.TempDir()
	outputTxt := filepath.Join(outDir, "results.txt")
	outputHTML := filepath.Join(outDir, "results.html")

	s := newTestScanner(t)
	results, err := s.RunLocal(dir, true, []string{"error"}, outputTxt, outputHTML, testHighlights)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoFileExists(t, outputTxt)
	assert.NoFileExists(t, outputHTML)
}

func TestRunLocal_MissingDirectory(t *testing.T) {
	s := newTestScanner(t)

	_, err := s.RunLocal(filepath.Join(t.TempDir(), "absent"), true, []string{"error"}, "out.txt", "out.html", nil)

	assert.Error(t, err)
}

func TestProcessSelected_ExpandsArchives(t *testing.T) {
	dir := t.TempDir()
	archivePath := writeZipWithLog(t, dir, "2025-01-10_08_05_36_VEH_111.ZIP", "inner.LOG", "Protocols: CCP mismatch\n")

	outDir := t.TempDir()
	outputTxt := filepath.Join(outDir, "results.txt")
	outputHTML := filepath.Join(outDir, "results.html")

	s := newTestScanner(t)
	results, err := s.ProcessSelected(nil, []string{archivePath}, []string{"Protocols:"}, outputTxt, outputHTML, testHighlights)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results["inner.LOG"], 1)

	txt, err := os.ReadFile(outputTxt)
	require.NoError(t, err)
	assert.Contains(t, string(txt), "inner.LOG - Line 1: Protocols: CCP mismatch")
}

func TestRunSummary_WritesSummaryPage(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "ipelog2_111"), "MEA_20250110_T120000.LOG",
		"Configuration file: MEA_cfg.xml\nProtocols: CCP mismatch\n")

	outDir := t.TempDir()
	prefix := filepath.Join(outDir, "filtered_log_results")

	s := newTestScanner(t)
	err := s.RunSummary(base, []string{"111", "999"}, time.Time{}, time.Time{}, true,
		prefix, []string{"Configuration file:", "Protocols:"}, testHighlights, "")

	require.NoError(t, err)

	data, err := os.ReadFile(prefix + "_summary.html")
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "<title>Vehicle Summary</title>")
	assert.Contains(t, content, "MEA")
	assert.Contains(t, content, `<span class="mismatch">mismatch</span>`)
	assert.Contains(t, content, "999: No LOG files found")
}

func TestRunSummary_EmptyIdentities(t *testing.T) {
	s := newTestScanner(t)

	err := s.RunSummary(t.TempDir(), nil, time.Time{}, time.Time{}, true,
		"out", []string{"error"}, nil, "")

	assert.Error(t, err)
}

func TestRunDailySummary_OnlyTodayFiles(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "ipelog2_111")

	today := models.Day(time.Now()).Format("20060102")
	writeFile(t, dir, "MEA_"+today+"_T080000.LOG", "Protocols: CCP match\n")
	writeFile(t, dir, "MEA_20200101_T080000.LOG", "Protocols: CCP mismatch\n")

	outDir := t.TempDir()
	prefix := filepath.Join(outDir, "filtered_log_results")

	s := newTestScanner(t)
	err := s.RunDailySummary(base, []string{"111"}, true, prefix, []string{"Protocols:"}, testHighlights)

	require.NoError(t, err)

	data, err := os.ReadFile(prefix + "_daily_summary.html")
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "<title>Daily Vehicle Summary</title>")
	assert.Contains(t, content, `<span class="match">match</span>`)
	assert.NotContains(t, content, `<span class="mismatch">mismatch</span>`)
}
