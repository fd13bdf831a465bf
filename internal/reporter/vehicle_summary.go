package reporter

import (
	"html/template"
	"sort"
	"strings"

	"logsift/internal/models"
)

// Highlight maps applied inside the summary blocks. Configuration lines get
// their marker emphasized; protocol lines get word-boundary match/mismatch
// emphasis.
var (
	summaryConfigHighlights   = map[string]string{"Configuration file:": "blue"}
	summaryProtocolHighlights = map[string]string{"match": "green", "mismatch": "red"}
)

// BuildSummaryPageData turns grouped vehicle records into template data for
// the summary page. The records are rendered in the order given; for each
// vehicle the lexicographically greatest contributing source file name is
// shown as the newest one.
func BuildSummaryPageData(records []*models.VehicleRecord, noData []string, title, noDataHeading string) models.SummaryPageData {
	pageData := models.SummaryPageData{
		Title:         title,
		NoDataHeading: noDataHeading,
		NoData:        noData,
	}

	for _, record := range records {
		pageData.Vehicles = append(pageData.Vehicles, models.VehicleDisplay{
			Name:          record.DisplayName,
			LatestSource:  latestSource(record.Sources),
			ConfigBlock:   renderConfigBlock(record.Configs),
			ProtocolBlock: renderProtocolBlock(record.Protocols),
		})
	}

	return pageData
}

// latestSource picks the lexicographically greatest source base name. For
// the date-stamped logger file names this approximates the newest file.
func latestSource(sources map[string]struct{}) string {
	latest := ""
	for name := range sources {
		if name > latest {
			latest = name
		}
	}
	return latest
}

// renderConfigBlock renders the deduplicated, sorted configuration strings
// with the "Configuration file:" marker emphasized.
func renderConfigBlock(configs map[string]struct{}) template.HTML {
	if len(configs) == 0 {
		return ""
	}

	sorted := make([]string, 0, len(configs))
	for cfg := range configs {
		sorted = append(sorted, cfg)
	}
	sort.Strings(sorted)

	lines := make([]string, 0, len(sorted))
	for _, cfg := range sorted {
		lines = append(lines, HighlightHTML("Configuration file: "+cfg, summaryConfigHighlights))
	}
	return template.HTML(strings.Join(lines, "\n"))
}

// renderProtocolBlock renders the deduplicated, sorted protocol strings
// with "match"/"mismatch" tokens wrapped for emphasis.
func renderProtocolBlock(protocols []string) template.HTML {
	if len(protocols) == 0 {
		return ""
	}

	unique := make(map[string]struct{}, len(protocols))
	for _, prot := range protocols {
		unique[prot] = struct{}{}
	}
	sorted := make([]string, 0, len(unique))
	for prot := range unique {
		sorted = append(sorted, prot)
	}
	sort.Strings(sorted)

	lines := make([]string, 0, len(sorted))
	for _, prot := range sorted {
		lines = append(lines, HighlightHTML("Protocols: "+prot, summaryProtocolHighlights))
	}
	return template.HTML(strings.Join(lines, "\n"))
}
