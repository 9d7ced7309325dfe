package models

// ShiftDefinition describes when a named shift starts and ends
type ShiftDefinition struct {
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// PlannedShift is a staged, not-yet-submitted selection. Its identity is the
// (Name, Date, ShiftType) triple; there is no synthetic id.
type PlannedShift struct {
	Name      string `json:"name"`
	Date      string `json:"date"` // YYYY-MM-DD
	ShiftType string `json:"shift_type"`
}

// OptionsResponse is the payload of GET /api/options
type OptionsResponse struct {
	Names      []string `json:"names"`
	ShiftTypes []string `json:"shift_types"`
}

// ShiftTypesResponse is the payload of GET /api/shift_types/:name
type ShiftTypesResponse struct {
	ShiftTypes []string `json:"shift_types"`
}
