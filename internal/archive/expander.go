package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Expander extracts log entries from ZIP archives into a scratch directory
// owned by the current run. Corrupt or unreadable archives are reported and
// skipped; they never abort the scan.
type Expander struct {
	logger zerolog.Logger
}

// NewExpander creates a new Expander
func NewExpander(logger zerolog.Logger) *Expander {
	return &Expander{
		logger: logger.With().Str("module", "ArchiveExpander").Logger(),
	}
}

// Expand extracts every .LOG entry of the archive into scratchDir, keeping
// only the entry's base name. When two entries collide on a base name the
// later one is renamed with the archive's own file name as suffix so
// nothing is overwritten. Returns the extracted paths; an unreadable
// archive or an archive without .LOG entries yields an empty slice.
func (e *Expander) Expand(archivePath, scratchDir string) []string {
	archiveName := filepath.Base(archivePath)

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		e.logger.Error().Err(err).Str("archive", archiveName).Msg("Not a valid ZIP file")
		return nil
	}
	defer func() {
		if err := reader.Close(); err != nil {
			e.logger.Warn().Err(err).Str("archive", archiveName).Msg("Failed to close archive")
		}
	}()

	var logEntries []*zip.File
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToUpper(entry.Name), ".LOG") {
			logEntries = append(logEntries, entry)
		}
	}
	if len(logEntries) == 0 {
		e.logger.Info().Str("archive", archiveName).Msg("No LOG files found in archive")
		return nil
	}

	e.logger.Info().Str("archive", archiveName).Int("count", len(logEntries)).Msg("Found LOG files in archive")

	extracted := make([]string, 0, len(logEntries))
	for _, entry := range logEntries {
		dst := filepath.Join(scratchDir, filepath.Base(entry.Name))
		if _, err := os.Stat(dst); err == nil {
			dst = collisionPath(scratchDir, filepath.Base(entry.Name), archiveName)
		}

		if err := e.extractEntry(entry, dst); err != nil {
			e.logger.Error().Err(err).
				Str("archive", archiveName).
				Str("entry", entry.Name).
				Msg("Failed to extract LOG entry")
			continue
		}
		extracted = append(extracted, dst)
	}

	return extracted
}

// extractEntry copies one archive entry to the destination path
func (e *Expander) extractEntry(entry *zip.File, dst string) error {
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// collisionPath renames a colliding entry using the archive's own file name
// as suffix, e.g. run.LOG from data.ZIP becomes run_data.ZIP.LOG.
func collisionPath(scratchDir, entryBase, archiveName string) string {
	ext := filepath.Ext(entryBase)
	stem := strings.TrimSuffix(entryBase, ext)
	return filepath.Join(scratchDir, stem+"_"+archiveName+ext)
}
