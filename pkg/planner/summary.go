package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

// SummaryEntry is one staged selection inside the summary panel. Index is the
// position in the store, so removal can address the right element.
type SummaryEntry struct {
	Index   int
	Date    string // YYYY-MM-DD
	Display string // DD.MM.YYYY
}

// TypeGroup collects the entries of one shift type under a person.
type TypeGroup struct {
	ShiftType string
	Color     string
	Entries   []SummaryEntry
}

// PersonGroup collects one person's staged selections.
type PersonGroup struct {
	Name  string
	Count int
	Types []TypeGroup
}

// BuildSummary groups the store contents for the summary panel: by person in
// insertion order, by shift type within a person in insertion order, dates
// sorted ascending within a type.
func BuildSummary(store *PlanningStore, details map[string]map[string]models.ShiftDefinition) []PersonGroup {
	shifts := store.Shifts()

	var names []string
	byName := make(map[string][]int)
	for i, sh := range shifts {
		if _, ok := byName[sh.Name]; !ok {
			names = append(names, sh.Name)
		}
		byName[sh.Name] = append(byName[sh.Name], i)
	}

	groups := make([]PersonGroup, 0, len(names))
	for _, name := range names {
		indexes := byName[name]
		pg := PersonGroup{Name: name, Count: len(indexes)}

		var types []string
		byType := make(map[string][]SummaryEntry)
		for _, i := range indexes {
			sh := shifts[i]
			if _, ok := byType[sh.ShiftType]; !ok {
				types = append(types, sh.ShiftType)
			}
			byType[sh.ShiftType] = append(byType[sh.ShiftType], SummaryEntry{
				Index:   i,
				Date:    sh.Date,
				Display: FormatDisplayDate(sh.Date),
			})
		}

		for _, t := range types {
			entries := byType[t]
			sort.Slice(entries, func(a, b int) bool { return entries[a].Date < entries[b].Date })

			category := lookupCategory(details, models.PlannedShift{Name: name, ShiftType: t})
			_, color := ShiftColor(t, category)
			pg.Types = append(pg.Types, TypeGroup{ShiftType: t, Color: color, Entries: entries})
		}
		groups = append(groups, pg)
	}
	return groups
}

// LegendItem is one distinct shift type with its display grouping.
type LegendItem struct {
	ShiftType string
	Color     string
	Group     Group
	GroupName string
	Glyph     string
}

// BuildLegend lists the distinct staged shift types, ordered by the canonical
// group order and alphabetically within a group.
func BuildLegend(store *PlanningStore, details map[string]map[string]models.ShiftDefinition) []LegendItem {
	seen := make(map[string]bool)
	var items []LegendItem
	for _, sh := range store.Shifts() {
		if seen[sh.ShiftType] {
			continue
		}
		seen[sh.ShiftType] = true

		category := lookupCategory(details, sh)
		group, color := ShiftColor(sh.ShiftType, category)
		items = append(items, LegendItem{
			ShiftType: sh.ShiftType,
			Color:     color,
			Group:     group,
			GroupName: GroupName(group),
			Glyph:     GroupGlyph(group),
		})
	}

	groups := make([]Group, len(items))
	for i, it := range items {
		groups[i] = it.Group
	}
	SortGroups(groups)
	rank := make(map[Group]int, len(groups))
	for i, g := range groups {
		if _, ok := rank[g]; !ok {
			rank[g] = i
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		if rank[items[a].Group] != rank[items[b].Group] {
			return rank[items[a].Group] < rank[items[b].Group]
		}
		return items[a].ShiftType < items[b].ShiftType
	})
	return items
}

// FormatDisplayDate converts an ISO date key to the DD.MM.YYYY display form.
// Unparseable input is returned unchanged.
func FormatDisplayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}
