package locator

import (
	"regexp"
	"strings"
)

// serialFolderPattern recognizes the fixed-prefix logger folders of the old
// directory convention, capturing the unit's serial number.
var serialFolderPattern = regexp.MustCompile(`(?i)^(?:ipelog|ipelog2|ipelogger|logger|ipelog3|arcos2)_?(\d+)$`)

// identityStrategy decides which immediate subdirectories of the base path
// belong to the requested identity set. The strategy is chosen once per
// base directory scan and reused for every entry.
type identityStrategy interface {
	// Name identifies the convention for diagnostics.
	Name() string
	// Matches reports whether the subdirectory belongs to a requested identity.
	Matches(dirName string) bool
}

// serialStrategy matches logger folders whose captured serial number is in
// the requested set. Membership is exact: leading zeros or extra characters
// around the digits exclude the folder.
type serialStrategy struct {
	serials map[string]struct{}
}

func newSerialStrategy(identities []string) *serialStrategy {
	serials := make(map[string]struct{}, len(identities))
	for _, id := range identities {
		serials[id] = struct{}{}
	}
	return &serialStrategy{serials: serials}
}

func (s *serialStrategy) Name() string { return "serial" }

func (s *serialStrategy) Matches(dirName string) bool {
	m := serialFolderPattern.FindStringSubmatch(dirName)
	if m == nil {
		return false
	}
	_, ok := s.serials[m[1]]
	return ok
}

// vehicleStrategy matches subdirectories named after a requested vehicle,
// case-insensitively.
type vehicleStrategy struct {
	names map[string]struct{}
}

func newVehicleStrategy(identities []string) *vehicleStrategy {
	names := make(map[string]struct{}, len(identities))
	for _, id := range identities {
		names[strings.ToUpper(id)] = struct{}{}
	}
	return &vehicleStrategy{names: names}
}

func (v *vehicleStrategy) Name() string { return "vehicle" }

func (v *vehicleStrategy) Matches(dirName string) bool {
	name := strings.TrimSpace(dirName)
	if name == "" {
		return false
	}
	_, ok := v.names[strings.ToUpper(name)]
	return ok
}

// selectStrategy detects which folder-naming convention the base directory
// uses. A single logger-style folder anywhere among the subdirectories puts
// the whole base directory under the serial convention; otherwise every
// subdirectory name is treated as a vehicle name.
func selectStrategy(subdirNames []string, identities []string) identityStrategy {
	for _, name := range subdirNames {
		if serialFolderPattern.MatchString(name) {
			return newSerialStrategy(identities)
		}
	}
	return newVehicleStrategy(identities)
}
