package summary

import (
	"sort"
	"strings"

	"logsift/internal/models"

	"github.com/rs/zerolog"
)

// Line markers contributing to a vehicle's summary record.
const (
	configFileMarker = "Configuration file:"
	protocolsMarker  = "Protocols:"
	ccpEpkMarker     = "CCP: EPK"
)

// Builder groups matched lines by inferred vehicle identity and tracks
// configuration strings, protocol reports and mismatch conditions per
// vehicle. Records live for one summary run.
type Builder struct {
	logger zerolog.Logger
}

// NewBuilder creates a new summary Builder
func NewBuilder(logger zerolog.Logger) *Builder {
	return &Builder{
		logger: logger.With().Str("module", "VehicleSummaryBuilder").Logger(),
	}
}

// Build groups the matched lines into VehicleRecords, sorted for rendering:
// vehicles with a mismatch first, then alphabetically by display name
// (case-insensitive).
func (b *Builder) Build(lines []models.MatchedLine) []*models.VehicleRecord {
	// Pre-pass: configuration lines pin a file to a vehicle so that later
	// lines from the same file that infer as Unknown are reattributed.
	fileToVehicle := make(map[string]string)
	for _, line := range lines {
		if !strings.Contains(line.Content, configFileMarker) {
			continue
		}
		if veh := InferVehicle(line.SourceFile, line.Content); veh != UnknownVehicle {
			fileToVehicle[line.SourceFile] = veh
		}
	}

	records := make(map[string]*models.VehicleRecord)
	for _, line := range lines {
		vehicle := InferVehicle(line.SourceFile, line.Content)
		if vehicle == UnknownVehicle {
			if mapped, ok := fileToVehicle[line.SourceFile]; ok {
				vehicle = mapped
			}
		}

		key := strings.ToLower(strings.TrimSpace(vehicle))
		if key == "" {
			key = strings.ToLower(UnknownVehicle)
			vehicle = UnknownVehicle
		}

		record, ok := records[key]
		if !ok {
			record = models.NewVehicleRecord(vehicle)
			records[key] = record
		}

		record.AddSource(line.SourceFile)
		b.applyMarkers(record, line.Content)
	}

	sorted := make([]*models.VehicleRecord, 0, len(records))
	for _, record := range records {
		sorted = append(sorted, record)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].HasMismatch != sorted[j].HasMismatch {
			return sorted[i].HasMismatch
		}
		return strings.ToLower(sorted[i].DisplayName) < strings.ToLower(sorted[j].DisplayName)
	})

	b.logger.Debug().Int("vehicles", len(sorted)).Int("lines", len(lines)).Msg("Vehicle records built")
	return sorted
}

// applyMarkers feeds one matched line's configuration/protocol content into
// the record. "CCP: EPK" lines count as protocol entries but only when the
// line carries no "Protocols:" marker of its own.
func (b *Builder) applyMarkers(record *models.VehicleRecord, content string) {
	if _, suffix, ok := strings.Cut(content, configFileMarker); ok {
		record.AddConfig(strings.TrimSpace(suffix))
	}

	if _, suffix, ok := strings.Cut(content, protocolsMarker); ok {
		protocol := strings.TrimSpace(suffix)
		record.Protocols = append(record.Protocols, protocol)
		if strings.Contains(strings.ToLower(protocol), "mismatch") {
			record.HasMismatch = true
		}
		return
	}

	if _, suffix, ok := strings.Cut(content, ccpEpkMarker); ok {
		protocol := ccpEpkMarker
		if trimmed := strings.TrimSpace(suffix); trimmed != "" {
			protocol = ccpEpkMarker + " " + trimmed
		}
		record.Protocols = append(record.Protocols, protocol)
		if strings.Contains(strings.ToLower(protocol), "mismatch") {
			record.HasMismatch = true
		}
	}
}

// MissingIdentities returns the requested identities that produced no data,
// compared case-insensitively against the identities that did, deduplicated
// and sorted alphabetically.
func MissingIdentities(requested []string, withData []string) []string {
	have := make(map[string]struct{}, len(withData))
	for _, id := range withData {
		id = strings.TrimSpace(id)
		if id != "" {
			have[strings.ToLower(id)] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	var missing []string
	for _, id := range requested {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		lower := strings.ToLower(id)
		if _, ok := have[lower]; ok {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		missing = append(missing, id)
	}

	sort.Slice(missing, func(i, j int) bool {
		return strings.ToLower(missing[i]) < strings.ToLower(missing[j])
	})
	return missing
}
