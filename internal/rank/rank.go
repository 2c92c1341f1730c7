// Package rank maps the two rank representations a profile may carry — a
// named competitive tier or a raw Faceit ELO — onto a single numeric ELO
// axis so skill distance between any two profiles is a plain difference.
package rank

import (
	svcErr "github.com/Tw1zzzzz/CisBot2/internal/errors"
)

// Kind discriminates the rank representation.
type Kind int

const (
	KindTier Kind = iota + 1
	KindElo
)

// Value is the tagged rank variant. Exactly one representation is set;
// downstream code never compares tiers and ELO directly, only normalized
// values.
type Value struct {
	Kind Kind
	Tier string
	Elo  int
}

// Tier builds a tier-valued rank.
func Tier(name string) Value { return Value{Kind: KindTier, Tier: name} }

// Elo builds an ELO-valued rank.
func Elo(elo int) Value { return Value{Kind: KindElo, Elo: elo} }

// Tiers is the fixed ordered ladder of competitive tiers, lowest first.
// The index in this slice is the tier's ordinal position.
var Tiers = []string{
	"Silver I",
	"Silver II",
	"Silver III",
	"Silver IV",
	"Silver Elite",
	"Silver Elite Master",
	"Gold Nova I",
	"Gold Nova II",
	"Gold Nova III",
	"Gold Nova Master",
	"Master Guardian I",
	"Master Guardian II",
	"Master Guardian Elite",
	"Distinguished Master Guardian",
	"Legendary Eagle",
	"Legendary Eagle Master",
	"Supreme Master First Class",
	"The Global Elite",
}

// tierMidpoints maps each tier ordinal to a representative midpoint ELO so
// tier-ranked and ELO-ranked profiles share one distance axis.
var tierMidpoints = []int{
	150,  // Silver I
	300,  // Silver II
	450,  // Silver III
	600,  // Silver IV
	750,  // Silver Elite
	900,  // Silver Elite Master
	1050, // Gold Nova I
	1200, // Gold Nova II
	1350, // Gold Nova III
	1500, // Gold Nova Master
	1650, // Master Guardian I
	1800, // Master Guardian II
	1950, // Master Guardian Elite
	2150, // Distinguished Master Guardian
	2400, // Legendary Eagle
	2700, // Legendary Eagle Master
	3000, // Supreme Master First Class
	3400, // The Global Elite
}

// TierIndex returns the ordinal position of a tier name, or -1 if unknown.
func TierIndex(name string) int {
	for i, t := range Tiers {
		if t == name {
			return i
		}
	}
	return -1
}

// Normalize resolves a rank value to ELO units. Unknown tier names and
// non-positive ELO values fail with a ValidationError; callers treat such
// profiles as unscoreable rather than aborting the batch.
func Normalize(v Value) (int, error) {
	switch v.Kind {
	case KindTier:
		idx := TierIndex(v.Tier)
		if idx < 0 {
			return 0, svcErr.Validationf("unknown rank tier %q", v.Tier)
		}
		return tierMidpoints[idx], nil
	case KindElo:
		if v.Elo <= 0 {
			return 0, svcErr.Validationf("elo must be positive, got %d", v.Elo)
		}
		return v.Elo, nil
	default:
		return 0, svcErr.Validationf("rank value is not set")
	}
}

// Distance returns the absolute normalized distance between two ranks.
func Distance(a, b Value) (int, error) {
	na, err := Normalize(a)
	if err != nil {
		return 0, err
	}
	nb, err := Normalize(b)
	if err != nil {
		return 0, err
	}
	if na > nb {
		return na - nb, nil
	}
	return nb - na, nil
}
