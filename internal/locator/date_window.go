package locator

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"logsift/internal/models"
)

// Filename date encodings produced by the logger units.
// Old style: VEH_20250101_T123000.LOG
// Timestamp style: 2025-11-25_08_05_36_MEA_4711.ZIP
var (
	loggerDatePattern    = regexp.MustCompile(`_(\d{8})_T\d{6}`)
	timestampDatePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})_\d{2}_\d{2}_\d{2}`)
)

// DatesFromName extracts every candidate date embedded in a path. Both
// patterns are tried against the base name first; only when neither matches
// there are they re-applied to every path segment, since the date sometimes
// lives in a directory name. Unparseable candidates are skipped.
func DatesFromName(path string) []time.Time {
	dates := datesInSegment(filepath.Base(path))
	if len(dates) > 0 {
		return dates
	}

	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		dates = append(dates, datesInSegment(segment)...)
	}
	return dates
}

// datesInSegment applies both filename date patterns to a single segment
func datesInSegment(segment string) []time.Time {
	var dates []time.Time

	for _, m := range loggerDatePattern.FindAllStringSubmatch(segment, -1) {
		if d, err := time.Parse("20060102", m[1]); err == nil {
			dates = append(dates, models.Day(d))
		}
	}

	for _, m := range timestampDatePattern.FindAllStringSubmatch(segment, -1) {
		if d, err := time.Parse("2006-01-02", m[1]); err == nil {
			dates = append(dates, models.Day(d))
		}
	}

	return dates
}

// FileWindow derives the inclusive date interval a file is believed to
// cover. Dates found in the name win; otherwise the file's last-modified
// date is used, and if even that is unavailable the current date. It never
// fails, whatever the path looks like.
func FileWindow(path string) models.DateWindow {
	dates := DatesFromName(path)
	if len(dates) > 0 {
		earliest, latest := dates[0], dates[0]
		for _, d := range dates[1:] {
			if d.Before(earliest) {
				earliest = d
			}
			if d.After(latest) {
				latest = d
			}
		}
		return models.NewDateWindow(earliest, latest)
	}

	if info, err := os.Stat(path); err == nil {
		return models.SingleDayWindow(info.ModTime())
	}
	return models.SingleDayWindow(time.Now())
}

// RequestedWindow builds the selection window from optional from/to dates.
// A zero "from" resolves to the minimum representable date and a zero "to"
// to the maximum, so an open-ended range matches everything on that side.
func RequestedWindow(from, to time.Time) models.DateWindow {
	if from.IsZero() {
		from = models.MinDate
	}
	if to.IsZero() {
		to = models.MaxDate
	}
	return models.NewDateWindow(from, to)
}
