package summary

import (
	"path/filepath"
	"regexp"
)

// UnknownVehicle is the fallback identity when no inference rule applies.
const UnknownVehicle = "Unknown"

// Vehicle identity hints found in log content and file names.
var (
	configFileVehiclePattern = regexp.MustCompile(`Configuration file:\s*([^_\\/ \t]+)_`)
	bev3VehiclePattern       = regexp.MustCompile(`\b([A-Za-z0-9]+)_BEV3`)
	fileNameVehiclePattern   = regexp.MustCompile(`^([A-Za-z0-9]+)_\d{8}_T`)
)

// InferVehicle guesses the vehicle a matched line belongs to. The rules are
// layered heuristics applied in a fixed priority order:
//
//  1. the text after "Configuration file:" up to the next underscore,
//     path separator or space,
//  2. the token immediately preceding "_BEV3",
//  3. the leading alphanumeric run of the source file name before an
//     8-digit-date-and-T marker.
//
// The order is load-bearing: reordering changes which display name wins for
// a vehicle with conflicting hints.
func InferVehicle(fileName, content string) string {
	if m := configFileVehiclePattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := bev3VehiclePattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := fileNameVehiclePattern.FindStringSubmatch(filepath.Base(fileName)); m != nil {
		return m[1]
	}
	return UnknownVehicle
}
