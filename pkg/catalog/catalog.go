package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

// Catalog maps person -> shift type -> definition. All keys are lowercase.
// It is loaded once at startup and read-only afterwards.
type Catalog struct {
	shifts map[string]map[string]models.ShiftDefinition
	names  []string // sorted person keys
}

// Load reads a shift-definition file. The file is parsed as YAML, which also
// accepts the legacy JSON shifts_config format.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shift config: %w", err)
	}

	var shifts map[string]map[string]models.ShiftDefinition
	if err := yaml.Unmarshal(data, &shifts); err != nil {
		return nil, fmt.Errorf("parse shift config %s: %w", path, err)
	}

	return New(shifts), nil
}

// New builds a catalog from an in-memory definition map, normalizing all
// person and shift-type keys to lowercase.
func New(shifts map[string]map[string]models.ShiftDefinition) *Catalog {
	normalized := make(map[string]map[string]models.ShiftDefinition, len(shifts))
	for name, types := range shifts {
		entry := make(map[string]models.ShiftDefinition, len(types))
		for shiftType, def := range types {
			entry[strings.ToLower(shiftType)] = def
		}
		normalized[strings.ToLower(name)] = entry
	}

	names := make([]string, 0, len(normalized))
	for name := range normalized {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Catalog{shifts: normalized, names: names}
}

// Names returns the sorted lowercase person keys.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// ShiftTypes returns the sorted shift-type keys for a person, or false if the
// person is unknown.
func (c *Catalog) ShiftTypes(name string) ([]string, bool) {
	types, ok := c.shifts[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(types))
	for t := range types {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, true
}

// Definitions returns all shift definitions for a person.
func (c *Catalog) Definitions(name string) (map[string]models.ShiftDefinition, bool) {
	types, ok := c.shifts[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	out := make(map[string]models.ShiftDefinition, len(types))
	for t, def := range types {
		out[t] = def
	}
	return out, true
}

// Lookup resolves a (person, shift type) pair, case-insensitive.
func (c *Catalog) Lookup(name, shiftType string) (models.ShiftDefinition, bool) {
	types, ok := c.shifts[strings.ToLower(name)]
	if !ok {
		return models.ShiftDefinition{}, false
	}
	def, ok := types[strings.ToLower(shiftType)]
	return def, ok
}

// FormatName applies the shared display-case rule: first rune uppercased, the
// rest lowercased, regardless of input casing.
func FormatName(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FormatShiftType formats a shift-type label for display, same rule as names.
func FormatShiftType(shiftType string) string {
	return FormatName(shiftType)
}

// DurationHours computes the length of a shift in hours from "HH:MM" times.
// An end at or before the start means the shift crosses midnight.
func DurationHours(start, end string) (float64, error) {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", end, err)
	}

	d := e.Sub(s)
	if d <= 0 {
		d += 24 * time.Hour
	}
	return d.Hours(), nil
}
