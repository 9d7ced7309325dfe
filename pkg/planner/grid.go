package planner

import (
	"fmt"
	"time"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

// GridCells is the fixed size of the month grid: 6 weeks of 7 days.
const GridCells = 42

var monthNames = []string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// DayHeaders are the Monday-first weekday column labels.
var DayHeaders = []string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}

// DayCell is one cell of the month grid.
type DayCell struct {
	Day     int    // day-of-month number shown in the cell
	Date    string // YYYY-MM-DD, empty for out-of-month cells
	InMonth bool
	Today   bool
	Past    bool
	Shifts  []models.PlannedShift
}

// Clickable reports whether a day click may reach the store. Out-of-month and
// past cells are inert.
func (c DayCell) Clickable() bool {
	return c.InMonth && !c.Past
}

// MonthGrid is the render model for one visible month.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []DayCell
}

// Title returns the German month heading, e.g. "März 2024".
func (g MonthGrid) Title() string {
	return fmt.Sprintf("%s %d", monthNames[g.Month-1], g.Year)
}

// BuildMonthGrid renders a month into exactly 42 cells, Monday-first. Leading
// cells carry the tail of the previous month and trailing cells the head of
// the next month; both stay inert. Today and past flags are computed against
// the given reference time at day granularity.
func BuildMonthGrid(year int, month time.Month, today time.Time, store *PlanningStore) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Monday-first column index: native Sunday (0) maps to column 6.
	offset := (int(first.Weekday()) + 6) % 7

	daysInMonth := first.AddDate(0, 1, -1).Day()
	prevLast := first.AddDate(0, 0, -1).Day()
	todayKey := today.Format("2006-01-02")

	cells := make([]DayCell, 0, GridCells)

	for i := offset - 1; i >= 0; i-- {
		cells = append(cells, DayCell{Day: prevLast - i})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		cells = append(cells, DayCell{
			Day:     day,
			Date:    date,
			InMonth: true,
			Today:   date == todayKey,
			Past:    date < todayKey,
			Shifts:  store.On(date),
		})
	}

	for day := 1; len(cells) < GridCells; day++ {
		cells = append(cells, DayCell{Day: day})
	}

	return MonthGrid{Year: year, Month: month, Cells: cells}
}

// Badge is the per-entry marker drawn inside a day cell.
type Badge struct {
	Color   string // hex color from the classifier
	Initial string // uppercased first letter of the person
	Glyph   string // category glyph, empty without shift metadata
	Title   string // "Name: Schichttyp" hover text
}

// Badges builds the badge list for a cell, one badge per staged entry.
// details is the per-person shift metadata cache and may be nil.
func (c DayCell) Badges(details map[string]map[string]models.ShiftDefinition) []Badge {
	if !c.InMonth {
		return nil
	}
	badges := make([]Badge, 0, len(c.Shifts))
	for _, sh := range c.Shifts {
		category := lookupCategory(details, sh)
		group, color := ShiftColor(sh.ShiftType, category)

		initial := upperInitial(sh.Name)

		glyph := ""
		if category != "" {
			glyph = GroupGlyph(group)
		}

		badges = append(badges, Badge{
			Color:   color,
			Initial: initial,
			Glyph:   glyph,
			Title:   sh.Name + ": " + sh.ShiftType,
		})
	}
	return badges
}

func lookupCategory(details map[string]map[string]models.ShiftDefinition, sh models.PlannedShift) string {
	if details == nil {
		return ""
	}
	defs, ok := details[normalizeKey(sh.Name)]
	if !ok {
		return ""
	}
	return defs[normalizeKey(sh.ShiftType)].Category
}
