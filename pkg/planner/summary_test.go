package planner

import (
	"testing"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

func TestBuildSummaryGrouping(t *testing.T) {
	s := NewPlanningStore()
	s.Toggle("anna", "2024-03-10", "frueh")
	s.Toggle("ben", "2024-03-05", "nacht")
	s.Toggle("anna", "2024-03-05", "frueh")
	s.Toggle("anna", "2024-03-07", "nacht")

	groups := BuildSummary(s, nil)
	if len(groups) != 2 {
		t.Fatalf("expected 2 person groups, got %d", len(groups))
	}

	// Persons keep insertion order: anna first.
	if groups[0].Name != "anna" || groups[0].Count != 3 {
		t.Errorf("expected anna with 3 entries first, got %s with %d", groups[0].Name, groups[0].Count)
	}
	if groups[1].Name != "ben" {
		t.Errorf("expected ben second, got %s", groups[1].Name)
	}

	// Shift types keep insertion order within a person; dates sort ascending.
	anna := groups[0]
	if len(anna.Types) != 2 || anna.Types[0].ShiftType != "frueh" {
		t.Fatalf("expected frueh group first for anna, got %+v", anna.Types)
	}
	frueh := anna.Types[0]
	if frueh.Entries[0].Date != "2024-03-05" || frueh.Entries[1].Date != "2024-03-10" {
		t.Errorf("dates within a type must sort ascending, got %+v", frueh.Entries)
	}
	if frueh.Entries[0].Display != "05.03.2024" {
		t.Errorf("expected display date 05.03.2024, got %s", frueh.Entries[0].Display)
	}
}

func TestBuildSummaryIndexesAddressTheStore(t *testing.T) {
	s := NewPlanningStore()
	s.Toggle("anna", "2024-03-10", "frueh")
	s.Toggle("anna", "2024-03-05", "frueh")

	groups := BuildSummary(s, nil)
	// First display entry is the earlier date, staged second (index 1).
	entry := groups[0].Types[0].Entries[0]
	if entry.Index != 1 {
		t.Fatalf("expected store index 1, got %d", entry.Index)
	}

	removed, ok := s.RemoveAt(entry.Index)
	if !ok || removed.Date != "2024-03-05" {
		t.Errorf("index must address the right store element, removed %v", removed)
	}
}

func TestBuildLegendOrder(t *testing.T) {
	s := NewPlanningStore()
	s.Toggle("anna", "2024-03-05", "Nachtschicht")
	s.Toggle("anna", "2024-03-06", "Frühschicht")
	s.Toggle("ben", "2024-03-06", "Urlaub")
	s.Toggle("ben", "2024-03-07", "Frühschicht") // duplicate type, one legend item

	items := BuildLegend(s, nil)
	if len(items) != 3 {
		t.Fatalf("expected 3 distinct legend items, got %d", len(items))
	}
	// Canonical group order: morning before night before special.
	if items[0].ShiftType != "Frühschicht" || items[1].ShiftType != "Nachtschicht" || items[2].ShiftType != "Urlaub" {
		t.Errorf("legend must follow the canonical group order, got %+v", items)
	}
	if items[0].GroupName != "Frühschicht" || items[0].Glyph != "🌅" {
		t.Errorf("legend items must carry their group metadata, got %+v", items[0])
	}
}

func TestBuildLegendUsesMetadataCategory(t *testing.T) {
	s := NewPlanningStore()
	s.Toggle("anna", "2024-03-05", "Sonderdienst")

	details := map[string]map[string]models.ShiftDefinition{
		"anna": {"sonderdienst": {Start: "08:00", End: "16:00", Category: "day"}},
	}
	items := BuildLegend(s, details)
	if len(items) != 1 || items[0].Group != GroupDay {
		t.Errorf("explicit category must override the keyword match, got %+v", items)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2024-03-05"); got != "05.03.2024" {
		t.Errorf("FormatDisplayDate = %s, want 05.03.2024", got)
	}
	if got := FormatDisplayDate("kein-datum"); got != "kein-datum" {
		t.Errorf("unparseable input must pass through, got %s", got)
	}
}
