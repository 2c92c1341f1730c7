// Package scoring computes the 0-100 compatibility score between two
// profiles. The scorer is a pure function of the profiles' scored
// attributes: it never touches relationship edges, moderation state or the
// clock, so identical inputs always produce identical output.
package scoring

import (
	"github.com/Tw1zzzzz/CisBot2/internal/db"
	"github.com/Tw1zzzzz/CisBot2/internal/rank"
)

// Sub-score weights. They sum to 100, which naturally bounds the total.
const (
	RankWeight = 40
	MapWeight  = 20
	TimeWeight = 25
	RoleWeight = 15

	// rankBracket is the ELO distance that costs one penalty step.
	rankBracket = 100
	// rankPenaltyStep is the penalty per started bracket.
	rankPenaltyStep = 5

	// perMapBonus is chosen so three shared maps saturate MapWeight.
	perMapBonus = 7
)

// Breakdown is the full scoring result. The sub-components are retained so
// callers can explain a score and tests can pin each factor separately.
type Breakdown struct {
	Total     int `json:"total"`
	RankScore int `json:"rank_score"`
	MapScore  int `json:"map_score"`
	TimeScore int `json:"time_score"`
	RoleScore int `json:"role_score"`

	RankDistance int  `json:"rank_distance"`
	SharedMaps   int  `json:"shared_maps"`
	TimeOverlap  bool `json:"time_overlap"`
}

// Score computes the compatibility breakdown for (requester, candidate).
// All four factors are symmetric, so Score(a, b).Total == Score(b, a).Total.
// Returns a ValidationError when either profile's rank cannot be
// normalized; callers exclude that profile instead of failing the batch.
func Score(requester, candidate *db.Profile) (Breakdown, error) {
	reqRank, err := requester.RankValue()
	if err != nil {
		return Breakdown{}, err
	}
	candRank, err := candidate.RankValue()
	if err != nil {
		return Breakdown{}, err
	}

	dist, err := rank.Distance(reqRank, candRank)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		RankDistance: dist,
		SharedMaps:   sharedCount(requester.FavoriteMaps, candidate.FavoriteMaps),
		TimeOverlap:  intersects(requester.PlaytimeSlots, candidate.PlaytimeSlots),
	}

	b.RankScore = rankProximityScore(dist)

	b.MapScore = b.SharedMaps * perMapBonus
	if b.MapScore > MapWeight {
		b.MapScore = MapWeight
	}

	if b.TimeOverlap {
		b.TimeScore = TimeWeight
	}

	// Role diversity is rewarded: a stack benefits from covering
	// different roles, so identical roles earn nothing.
	if requester.Role != candidate.Role {
		b.RoleScore = RoleWeight
	}

	b.Total = b.RankScore + b.MapScore + b.TimeScore + b.RoleScore
	if b.Total > 100 {
		b.Total = 100
	}
	if b.Total < 0 {
		b.Total = 0
	}

	return b, nil
}

// rankProximityScore maps normalized ELO distance onto [0, RankWeight].
// Full marks only at distance 0; every started 100-ELO bracket costs 5
// points, so the score is monotonically non-increasing with distance and
// hits 0 at 800 ELO apart.
func rankProximityScore(dist int) int {
	if dist <= 0 {
		return RankWeight
	}
	brackets := (dist + rankBracket - 1) / rankBracket
	penalty := brackets * rankPenaltyStep
	if penalty >= RankWeight {
		return 0
	}
	return RankWeight - penalty
}

func sharedCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	n := 0
	for _, v := range b {
		if _, ok := set[v]; ok {
			n++
			delete(set, v) // duplicates in b must not double-count
		}
	}
	return n
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
