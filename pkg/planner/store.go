// Package planner holds the client-side planning core: the store of staged
// shift selections, the month-grid builder, shift-type coloring and the batch
// import submitter. It has no presentation dependencies; callers re-render
// whenever an operation reports a change.
package planner

import "github.com/kbenzel/schichtplaner/pkg/models"

// PlanningStore is the ordered collection of staged shift selections.
// Insertion order is preserved for display grouping; the (name, date,
// shift type) triple is unique. It is written from a single goroutine.
type PlanningStore struct {
	shifts []models.PlannedShift
}

// NewPlanningStore returns an empty store.
func NewPlanningStore() *PlanningStore {
	return &PlanningStore{}
}

// Toggle removes the triple if staged, appends it otherwise, and reports
// whether the store changed. Empty name or shift type is a silent no-op;
// callers gate selection with ErrSelectionRequired before getting here.
func (s *PlanningStore) Toggle(name, date, shiftType string) bool {
	if name == "" || shiftType == "" {
		return false
	}
	for i, sh := range s.shifts {
		if sh.Name == name && sh.Date == date && sh.ShiftType == shiftType {
			s.shifts = append(s.shifts[:i], s.shifts[i+1:]...)
			return true
		}
	}
	s.shifts = append(s.shifts, models.PlannedShift{Name: name, Date: date, ShiftType: shiftType})
	return true
}

// RemoveAt removes the element at the given position and returns it. Out of
// range indexes report false without changing the store.
func (s *PlanningStore) RemoveAt(i int) (models.PlannedShift, bool) {
	if i < 0 || i >= len(s.shifts) {
		return models.PlannedShift{}, false
	}
	removed := s.shifts[i]
	s.shifts = append(s.shifts[:i], s.shifts[i+1:]...)
	return removed, true
}

// Clear empties the store unconditionally.
func (s *PlanningStore) Clear() {
	s.shifts = nil
}

// HasAnyOn reports whether any staged selection falls on the given date.
func (s *PlanningStore) HasAnyOn(date string) bool {
	for _, sh := range s.shifts {
		if sh.Date == date {
			return true
		}
	}
	return false
}

// Len returns the number of staged selections.
func (s *PlanningStore) Len() int {
	return len(s.shifts)
}

// Shifts returns a copy of the staged selections in insertion order.
func (s *PlanningStore) Shifts() []models.PlannedShift {
	out := make([]models.PlannedShift, len(s.shifts))
	copy(out, s.shifts)
	return out
}

// On returns the staged selections for a single date, in insertion order.
func (s *PlanningStore) On(date string) []models.PlannedShift {
	var out []models.PlannedShift
	for _, sh := range s.shifts {
		if sh.Date == date {
			out = append(out, sh)
		}
	}
	return out
}
