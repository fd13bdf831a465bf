package models

// VehicleRecord aggregates everything a single vehicle reported during one
// summary run. Records are keyed by the lower-cased vehicle name; the first
// non-"Unknown" identity seen wins as DisplayName.
type VehicleRecord struct {
	DisplayName string
	Configs     map[string]struct{}
	Protocols   []string
	HasMismatch bool
	Sources     map[string]struct{}
}

// NewVehicleRecord creates an empty record for the given display name.
func NewVehicleRecord(displayName string) *VehicleRecord {
	return &VehicleRecord{
		DisplayName: displayName,
		Configs:     make(map[string]struct{}),
		Sources:     make(map[string]struct{}),
	}
}

// AddConfig records a distinct configuration string.
func (v *VehicleRecord) AddConfig(cfg string) {
	v.Configs[cfg] = struct{}{}
}

// AddSource records a contributing source file name.
func (v *VehicleRecord) AddSource(name string) {
	v.Sources[name] = struct{}{}
}
