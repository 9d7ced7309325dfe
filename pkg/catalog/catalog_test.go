package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "shifts_config.yaml", `
anna:
  frueh:
    start: "06:00"
    end: "14:00"
    category: morning
  nacht:
    start: "22:00"
    end: "06:00"
ben:
  tag:
    start: "09:00"
    end: "17:00"
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	names := cat.Names()
	if len(names) != 2 || names[0] != "anna" || names[1] != "ben" {
		t.Errorf("unexpected names: %v", names)
	}

	def, ok := cat.Lookup("anna", "frueh")
	if !ok || def.Start != "06:00" || def.End != "14:00" || def.Category != "morning" {
		t.Errorf("unexpected definition: %+v ok=%v", def, ok)
	}
}

func TestLoadLegacyJSON(t *testing.T) {
	path := writeConfig(t, "shifts_config.json",
		`{"anna": {"frueh": {"start": "06:00", "end": "14:00"}}}`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, ok := cat.Lookup("anna", "frueh"); !ok {
		t.Error("expected anna/frueh in the catalog")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	cat := New(map[string]map[string]models.ShiftDefinition{
		"Anna": {"Frueh": {Start: "06:00", End: "14:00"}},
	})

	if _, ok := cat.Lookup("ANNA", "FRUEH"); !ok {
		t.Error("lookup must be case-insensitive")
	}
	if _, ok := cat.Lookup("anna", "spaet"); ok {
		t.Error("unknown shift type must not resolve")
	}
	if _, ok := cat.Lookup("carla", "frueh"); ok {
		t.Error("unknown person must not resolve")
	}
}

func TestShiftTypes(t *testing.T) {
	cat := New(map[string]map[string]models.ShiftDefinition{
		"anna": {
			"nacht": {Start: "22:00", End: "06:00"},
			"frueh": {Start: "06:00", End: "14:00"},
		},
	})

	types, ok := cat.ShiftTypes("anna")
	if !ok || len(types) != 2 || types[0] != "frueh" || types[1] != "nacht" {
		t.Errorf("unexpected shift types: %v ok=%v", types, ok)
	}
	if _, ok := cat.ShiftTypes("carla"); ok {
		t.Error("unknown person must report false")
	}
}

func TestFormatName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"anna", "Anna"},
		{"ANNA", "Anna"},
		{"üli", "Üli"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatName(tc.in); got != tc.want {
			t.Errorf("FormatName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := FormatShiftType("fRUEH"); got != "Frueh" {
		t.Errorf("FormatShiftType(fRUEH) = %q, want Frueh", got)
	}
}

func TestDurationHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"06:00", "14:00", 8.0},
		{"22:00", "06:00", 8.0}, // overnight wraparound
		{"08:00", "08:00", 24.0},
		{"23:30", "00:15", 0.75},
	}
	for _, tc := range cases {
		got, err := DurationHours(tc.start, tc.end)
		if err != nil {
			t.Errorf("DurationHours(%s, %s) failed: %v", tc.start, tc.end, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DurationHours(%s, %s) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}

	if _, err := DurationHours("sechs", "14:00"); err == nil {
		t.Error("expected an error for an invalid start time")
	}
}
