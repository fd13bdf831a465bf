package models

import "html/template"

// MatchedLineDisplay is a MatchedLine prepared for the HTML report: the
// content is already escaped and highlight terms are wrapped in spans.
type MatchedLineDisplay struct {
	SourceFile string
	LineNumber int
	Content    template.HTML
}

// ReportPageData holds everything the match-report HTML template needs.
type ReportPageData struct {
	Title        string
	GeneratedAt  string
	TotalMatches int
	Lines        []MatchedLineDisplay
}

// VehicleDisplay is one vehicle section of the summary page. The config and
// protocol blocks are pre-rendered HTML with highlight spans applied.
type VehicleDisplay struct {
	Name          string
	LatestSource  string
	ConfigBlock   template.HTML
	ProtocolBlock template.HTML
}

// SummaryPageData holds everything the vehicle-summary HTML template needs.
type SummaryPageData struct {
	Title         string
	GeneratedAt   string
	Vehicles      []VehicleDisplay
	NoDataHeading string
	NoData        []string
}
