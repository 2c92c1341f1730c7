// Package cs2 holds the static Counter-Strike 2 reference data the bot
// works with: competitive maps, team roles, playtime slots, profile
// categories and the named ELO filter ranges.
package cs2

// Role is one of the fixed team roles a player can claim in their profile.
type Role struct {
	Name        string
	Description string
}

// Roles lists every selectable role.
var Roles = []Role{
	{Name: "IGL", Description: "In-game leader"},
	{Name: "Entry Fragger", Description: "First through the door"},
	{Name: "Support Player", Description: "Utility and trades"},
	{Name: "Lurker", Description: "Plays away from the pack"},
	{Name: "AWPer", Description: "Primary sniper"},
}

// Maps lists the competitive map pool.
var Maps = []string{
	"Ancient",
	"Dust2",
	"Inferno",
	"Mirage",
	"Nuke",
	"Overpass",
	"Train",
}

// PlaytimeSlot is a time-of-day bucket a player usually plays in.
// Slots are non-exclusive; a profile may select several.
type PlaytimeSlot struct {
	ID        string
	Name      string
	StartHour int
	EndHour   int
}

var PlaytimeSlots = []PlaytimeSlot{
	{ID: "morning", Name: "Morning (6-12)", StartHour: 6, EndHour: 12},
	{ID: "day", Name: "Day (12-18)", StartHour: 12, EndHour: 18},
	{ID: "evening", Name: "Evening (18-24)", StartHour: 18, EndHour: 24},
	{ID: "night", Name: "Night (0-6)", StartHour: 0, EndHour: 6},
}

// Category is an intent tag used as a hard search filter, not a scored
// dimension.
type Category struct {
	ID   string
	Name string
}

var Categories = []Category{
	{ID: "mm_premier", Name: "MM/Premier/Wingman"},
	{ID: "faceit", Name: "Faceit"},
	{ID: "tournaments", Name: "Tournaments"},
	{ID: "looking_for_team", Name: "Looking for a team"},
}

// EloFilterRange is a named ELO bucket selectable as a hard filter.
// Min/Max of 0 mean "unbounded on that side". TopN marks the special
// leaderboard filter that ranks the sample by ELO instead of recency.
type EloFilterRange struct {
	ID   string
	Name string
	Min  int
	Max  int
	TopN int
}

// FilterAny is the filter ID that disables ELO filtering altogether.
const FilterAny = "any"

// FilterTop1000 ranks candidates among the top 1000 players by ELO.
const FilterTop1000 = "top_1000"

var EloFilterRanges = []EloFilterRange{
	{ID: "newbie", Name: "Up to 1999 ELO", Max: 1999},
	{ID: "intermediate", Name: "2000-2699 ELO", Min: 2000, Max: 2699},
	{ID: "advanced", Name: "2700-3099 ELO", Min: 2700, Max: 3099},
	{ID: "pro", Name: "3100+ ELO", Min: 3100},
	{ID: FilterTop1000, Name: "TOP 1000", TopN: 1000},
}

// EloFilterByID returns the named range for the given filter ID, or nil if
// the ID is unknown or "any".
func EloFilterByID(id string) *EloFilterRange {
	for i := range EloFilterRanges {
		if EloFilterRanges[i].ID == id {
			return &EloFilterRanges[i]
		}
	}
	return nil
}

// EloInFilter reports whether the given ELO passes the named filter.
// Unknown filter IDs and "any" pass everything, matching how the bot treats
// stale saved filters.
func EloInFilter(elo int, filterID string) bool {
	if filterID == FilterAny {
		return true
	}
	f := EloFilterByID(filterID)
	if f == nil || f.TopN > 0 {
		return true
	}
	if f.Min > 0 && elo < f.Min {
		return false
	}
	if f.Max > 0 && elo > f.Max {
		return false
	}
	return true
}

// ValidRole reports whether name is a known role.
func ValidRole(name string) bool {
	for _, r := range Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// ValidMap reports whether name is in the competitive pool.
func ValidMap(name string) bool {
	for _, m := range Maps {
		if m == name {
			return true
		}
	}
	return false
}

// ValidPlaytimeSlot reports whether id is a known slot.
func ValidPlaytimeSlot(id string) bool {
	for _, s := range PlaytimeSlots {
		if s.ID == id {
			return true
		}
	}
	return false
}

// ValidCategories reports whether every id in the list is a known category.
func ValidCategories(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if CategoryByID(id) == nil {
			return false
		}
	}
	return true
}

// CategoryByID returns the category for the given ID, or nil.
func CategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}
