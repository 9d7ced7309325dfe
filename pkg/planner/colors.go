package planner

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Group is a coarse shift classification used for coloring and legend order.
// The five canonical groups are listed below; category values coming from
// shift metadata are carried verbatim, so other keys can occur.
type Group string

const (
	GroupMorning Group = "morning"
	GroupDay     Group = "day"
	GroupEvening Group = "evening"
	GroupNight   Group = "night"
	GroupSpecial Group = "special"
)

// canonicalOrder fixes how groups sort wherever they are listed together.
var canonicalOrder = []Group{GroupMorning, GroupDay, GroupEvening, GroupNight, GroupSpecial}

type groupInfo struct {
	Name  string
	Glyph string
}

var groupInfos = map[Group]groupInfo{
	GroupMorning: {"Frühschicht", "🌅"},
	GroupDay:     {"Tagschicht", "☀️"},
	GroupEvening: {"Spätschicht", "🌆"},
	GroupNight:   {"Nachtschicht", "🌙"},
	GroupSpecial: {"Sondertermin", "⭐"},
}

// groupKeywords are tested against the lowercased label in this order.
// Special terms come first so "Urlaubsnacht" stays a Sondertermin.
var groupKeywords = []struct {
	group Group
	terms []string
}{
	{GroupSpecial, []string{"urlaub", "ferien", "frei", "krank", "schulung", "fortbildung", "bereitschaft", "sonder", "vacation", "sick", "training", "on-call"}},
	{GroupMorning, []string{"früh", "frueh", "morgen", "morning"}},
	{GroupDay, []string{"tag", "mittag", "day"}},
	{GroupEvening, []string{"spät", "spaet", "abend", "late", "evening"}},
	{GroupNight, []string{"nacht", "night"}},
}

// groupPalettes hold the ordered color candidates per group. A label always
// lands on the same palette entry via its hash.
var groupPalettes = map[Group][]string{
	GroupMorning: {"#10b981", "#34d399", "#059669", "#14b8a6"},
	GroupDay:     {"#3b82f6", "#60a5fa", "#2563eb", "#06b6d4"},
	GroupEvening: {"#f59e0b", "#fbbf24", "#f97316", "#d97706"},
	GroupNight:   {"#6366f1", "#818cf8", "#8b5cf6", "#4f46e5"},
	GroupSpecial: {"#ef4444", "#f97316", "#84cc16", "#06b6d4", "#8b5cf6", "#ec4899", "#14b8a6", "#f43f5e"},
}

// ClassifyGroup resolves the group for a shift-type label. An explicit
// category from shift metadata wins verbatim; otherwise the lowercased label
// is matched against the keyword sets in priority order, defaulting to
// special.
func ClassifyGroup(label, category string) Group {
	if category != "" {
		return Group(category)
	}
	normalized := strings.ToLower(label)
	for _, kw := range groupKeywords {
		for _, term := range kw.terms {
			if strings.Contains(normalized, term) {
				return kw.group
			}
		}
	}
	return GroupSpecial
}

// ShiftColor returns the group and display color for a shift-type label. The
// color is the group palette entry selected by a rolling hash of the raw
// label, so a label keeps its color across sessions without stored state.
func ShiftColor(label, category string) (Group, string) {
	group := ClassifyGroup(label, category)
	palette, ok := groupPalettes[group]
	if !ok {
		// Unrecognized metadata categories fall back to the special palette.
		palette = groupPalettes[GroupSpecial]
	}
	return group, palette[paletteIndex(label, len(palette))]
}

// labelHash accumulates hash = code + (hash<<5 - hash) over the UTF-16 code
// units of the raw label with 32-bit signed wraparound.
func labelHash(label string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(label)) {
		h = int32(unit) + (h<<5 - h)
	}
	return h
}

func paletteIndex(label string, size int) int {
	h := int64(labelHash(label))
	if h < 0 {
		h = -h
	}
	return int(h % int64(size))
}

// GroupName returns the German display name for a group, or the raw key for
// unrecognized groups.
func GroupName(g Group) string {
	if info, ok := groupInfos[g]; ok {
		return info.Name
	}
	return string(g)
}

// GroupGlyph returns the glyph for a group, empty for unrecognized groups.
func GroupGlyph(g Group) string {
	return groupInfos[g].Glyph
}

// SortGroups orders groups by the canonical order; unrecognized keys sort
// last, alphabetically among themselves.
func SortGroups(groups []Group) {
	rank := make(map[Group]int, len(canonicalOrder))
	for i, g := range canonicalOrder {
		rank[g] = i
	}
	sort.SliceStable(groups, func(i, j int) bool {
		ri, iKnown := rank[groups[i]]
		rj, jKnown := rank[groups[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return groups[i] < groups[j]
		}
	})
}

func normalizeKey(s string) string {
	return strings.ToLower(s)
}

func upperInitial(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}
