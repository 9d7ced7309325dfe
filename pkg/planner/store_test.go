package planner

import (
	"testing"
)

func TestToggleRoundTrip(t *testing.T) {
	s := NewPlanningStore()

	if changed := s.Toggle("anna", "2024-03-05", "frueh"); !changed {
		t.Fatal("expected first toggle to change the store")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}

	if changed := s.Toggle("anna", "2024-03-05", "frueh"); !changed {
		t.Fatal("expected second toggle to change the store")
	}
	if s.Len() != 0 {
		t.Errorf("expected toggling the same triple twice to restore the store, got %d entries", s.Len())
	}
}

func TestToggleRequiresSelection(t *testing.T) {
	s := NewPlanningStore()

	if s.Toggle("", "2024-03-05", "frueh") {
		t.Error("toggle with empty name must be a no-op")
	}
	if s.Toggle("anna", "2024-03-05", "") {
		t.Error("toggle with empty shift type must be a no-op")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", s.Len())
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	s := NewPlanningStore()
	s.Toggle("anna", "2024-03-05", "frueh")
	s.Toggle("ben", "2024-03-05", "nacht")
	s.Toggle("anna", "2024-03-06", "frueh")

	shifts := s.Shifts()
	if shifts[0].Name != "anna" || shifts[1].Name != "ben" || shifts[2].Date != "2024-03-06" {
		t.Errorf("insertion order not preserved: %v", shifts)
	}
}

func TestRemoveAt(t *testing.T) {
	s := NewPlanningStore()
	s.Toggle("anna", "2024-03-05", "frueh")
	s.Toggle("ben", "2024-03-06", "nacht")

	removed, ok := s.RemoveAt(0)
	if !ok || removed.Name != "anna" {
		t.Fatalf("expected to remove anna's entry, got %v ok=%v", removed, ok)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 entry after removal, got %d", s.Len())
	}

	if _, ok := s.RemoveAt(5); ok {
		t.Error("out-of-range removal must report false")
	}
	if _, ok := s.RemoveAt(-1); ok {
		t.Error("negative index removal must report false")
	}
	if s.Len() != 1 {
		t.Errorf("out-of-range removal must not change the store, got %d entries", s.Len())
	}
}

func TestHasAnyOn(t *testing.T) {
	s := NewPlanningStore()
	s.Toggle("anna", "2024-03-05", "frueh")
	s.Toggle("ben", "2024-03-05", "nacht")

	if !s.HasAnyOn("2024-03-05") {
		t.Error("expected HasAnyOn to be true for a staged date")
	}
	if s.HasAnyOn("2024-03-06") {
		t.Error("expected HasAnyOn to be false for an unstaged date")
	}

	s.RemoveAt(0)
	if !s.HasAnyOn("2024-03-05") {
		t.Error("date still has one staged entry, HasAnyOn must stay true")
	}

	s.RemoveAt(0)
	if s.HasAnyOn("2024-03-05") {
		t.Error("removing the last entry for a date must flip HasAnyOn to false")
	}
}

func TestClear(t *testing.T) {
	s := NewPlanningStore()
	s.Toggle("anna", "2024-03-05", "frueh")
	s.Toggle("ben", "2024-03-06", "nacht")

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty store after Clear, got %d entries", s.Len())
	}
}
