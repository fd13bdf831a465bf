package locator

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"logsift/internal/common"
	"logsift/internal/models"

	"github.com/rs/zerolog"
)

// FileLocator walks a base directory and collects log and archive files
// whose date window overlaps a requested range and whose serial/vehicle
// identity matches a requested set.
type FileLocator struct {
	logger zerolog.Logger
}

// NewFileLocator creates a new FileLocator
func NewFileLocator(logger zerolog.Logger) *FileLocator {
	return &FileLocator{
		logger: logger.With().Str("module", "FileLocator").Logger(),
	}
}

// Locate returns two ordered lists of absolute paths: plain .LOG files and
// .ZIP archives, both restricted to entries whose file window overlaps the
// requested range. A zero from/to leaves that side of the range open.
// A missing base path is reported and yields two empty lists; an empty
// identity set is rejected before any file I/O.
func (fl *FileLocator) Locate(basePath string, identities []string, from, to time.Time, includeArchives bool) ([]string, []string, error) {
	cleaned := CleanIdentities(identities)
	if len(cleaned) == 0 {
		return nil, nil, common.NewValidationError("identities", identities, "at least one serial number or vehicle name is required")
	}

	wanted := RequestedWindow(from, to)

	absBase, err := filepath.Abs(basePath)
	if err != nil {
		absBase = basePath
	}

	entries, err := os.ReadDir(absBase)
	if err != nil {
		fl.logger.Error().Str("base_path", basePath).Msg("Base path not found")
		return []string{}, []string{}, nil
	}

	subdirNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			subdirNames = append(subdirNames, entry.Name())
		}
	}

	strategy := selectStrategy(subdirNames, cleaned)
	fl.logger.Debug().
		Str("convention", strategy.Name()).
		Int("subdirs", len(subdirNames)).
		Msg("Folder naming convention detected")

	var logFiles, archiveFiles []string
	for _, name := range subdirNames {
		if !strategy.Matches(name) {
			continue
		}
		logs, archives := fl.collectFiles(filepath.Join(absBase, name), wanted, includeArchives)
		logFiles = append(logFiles, logs...)
		archiveFiles = append(archiveFiles, archives...)
	}

	fl.logger.Info().
		Int("log_files", len(logFiles)).
		Int("archive_files", len(archiveFiles)).
		Msg("File discovery completed")

	return logFiles, archiveFiles, nil
}

// collectFiles recursively walks one matched subtree and gathers files by
// extension and date-window overlap.
func (fl *FileLocator) collectFiles(root string, wanted models.DateWindow, includeArchives bool) ([]string, []string) {
	var logFiles, archiveFiles []string

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fl.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}

		upper := strings.ToUpper(d.Name())
		isLog := strings.HasSuffix(upper, ".LOG")
		isArchive := includeArchives && strings.HasSuffix(upper, ".ZIP")
		if !isLog && !isArchive {
			return nil
		}

		if !FileWindow(path).Overlaps(wanted) {
			return nil
		}

		if isLog {
			logFiles = append(logFiles, path)
		} else {
			archiveFiles = append(archiveFiles, path)
		}
		return nil
	})
	if walkErr != nil {
		fl.logger.Warn().Err(walkErr).Str("root", root).Msg("Directory walk aborted")
	}

	return logFiles, archiveFiles
}

// IdentityFromPath resolves the identity a file belongs to: the serial
// number captured from any logger-style path segment, or the first path
// element below the base directory under the vehicle convention. Returns
// an empty string when neither applies.
func IdentityFromPath(basePath, path string) string {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if m := serialFolderPattern.FindStringSubmatch(segment); m != nil {
			return m[1]
		}
	}

	absBase, errBase := filepath.Abs(basePath)
	absPath, errPath := filepath.Abs(path)
	if errBase != nil || errPath != nil {
		return ""
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) == 0 || parts[0] == "." {
		return ""
	}
	return parts[0]
}

// CleanIdentities trims the requested identity strings and drops empties.
func CleanIdentities(identities []string) []string {
	cleaned := make([]string, 0, len(identities))
	for _, id := range identities {
		id = strings.TrimSpace(id)
		if id != "" {
			cleaned = append(cleaned, id)
		}
	}
	return cleaned
}
