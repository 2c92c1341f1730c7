package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tw1zzzzz/CisBot2/internal/db"
	svcErr "github.com/Tw1zzzzz/CisBot2/internal/errors"
	"github.com/Tw1zzzzz/CisBot2/internal/scoring"
)

func eloProfile(id int64, elo int, role string, maps, slots []string) *db.Profile {
	return &db.Profile{
		UserID:        id,
		GameNickname:  "p",
		FaceitElo:     &elo,
		Role:          role,
		FavoriteMaps:  maps,
		PlaytimeSlots: slots,
	}
}

// A perfectly aligned pair maxes every sub-score.
func TestScorePerfectPair(t *testing.T) {
	a := eloProfile(1, 2000, "IGL", []string{"Mirage", "Dust2", "Inferno"}, []string{"evening"})
	b := eloProfile(2, 2000, "AWPer", []string{"Mirage", "Dust2", "Inferno"}, []string{"evening", "night"})

	got, err := scoring.Score(a, b)
	require.NoError(t, err)

	assert.Equal(t, 40, got.RankScore)
	assert.Equal(t, 20, got.MapScore)
	assert.Equal(t, 25, got.TimeScore)
	assert.Equal(t, 15, got.RoleScore)
	assert.Equal(t, 100, got.Total)
	assert.Equal(t, 0, got.RankDistance)
	assert.Equal(t, 3, got.SharedMaps)
	assert.True(t, got.TimeOverlap)
}

// A fully misaligned pair scores zero on every factor.
func TestScoreDisjointPair(t *testing.T) {
	a := eloProfile(1, 1000, "IGL", nil, []string{"morning"})
	b := eloProfile(2, 4000, "IGL", []string{"Nuke"}, []string{"night"})

	got, err := scoring.Score(a, b)
	require.NoError(t, err)

	assert.Equal(t, 0, got.RankScore)
	assert.Equal(t, 0, got.MapScore)
	assert.Equal(t, 0, got.TimeScore)
	assert.Equal(t, 0, got.RoleScore)
	assert.Equal(t, 0, got.Total)
}

func TestScoreBounded(t *testing.T) {
	maps := []string{"Ancient", "Dust2", "Inferno", "Mirage", "Nuke", "Overpass", "Train"}
	slots := []string{"morning", "day", "evening", "night"}
	roles := []string{"IGL", "AWPer"}
	elos := []int{1, 500, 1999, 2000, 3500, 40000}

	for _, ea := range elos {
		for _, eb := range elos {
			for _, ra := range roles {
				a := eloProfile(1, ea, ra, maps, slots)
				b := eloProfile(2, eb, "IGL", maps[:3], slots[:1])
				got, err := scoring.Score(a, b)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got.Total, 0)
				assert.LessOrEqual(t, got.Total, 100)
			}
		}
	}
}

// All four factors are symmetric; guard the implicit invariant.
func TestScoreSymmetric(t *testing.T) {
	a := eloProfile(1, 1700, "Lurker", []string{"Mirage", "Train"}, []string{"day", "evening"})
	b := eloProfile(2, 2450, "Support Player", []string{"Train", "Nuke", "Mirage"}, []string{"night"})

	ab, err := scoring.Score(a, b)
	require.NoError(t, err)
	ba, err := scoring.Score(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab.Total, ba.Total)
	assert.Equal(t, ab.RankScore, ba.RankScore)
	assert.Equal(t, ab.MapScore, ba.MapScore)
	assert.Equal(t, ab.TimeScore, ba.TimeScore)
	assert.Equal(t, ab.RoleScore, ba.RoleScore)
}

// Rank sub-score never increases as the ELO gap widens.
func TestRankScoreMonotone(t *testing.T) {
	requester := eloProfile(1, 1500, "IGL", nil, nil)

	prev := 41
	for _, elo := range []int{1500, 1550, 1700, 2000, 2300, 3000, 5000} {
		cand := eloProfile(2, elo, "AWPer", nil, nil)
		got, err := scoring.Score(requester, cand)
		require.NoError(t, err)
		assert.LessOrEqual(t, got.RankScore, prev, "elo %d", elo)
		prev = got.RankScore
	}

	// full marks only at distance zero
	same, err := scoring.Score(requester, eloProfile(2, 1500, "AWPer", nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 40, same.RankScore)

	near, err := scoring.Score(requester, eloProfile(2, 1501, "AWPer", nil, nil))
	require.NoError(t, err)
	assert.Less(t, near.RankScore, 40)
}

func TestMapScoreSaturates(t *testing.T) {
	slots := []string{"evening"}
	pool := []string{"Mirage", "Dust2", "Inferno", "Nuke", "Overpass"}

	for shared, want := range map[int]int{0: 0, 1: 7, 2: 14, 3: 20, 5: 20} {
		a := eloProfile(1, 2000, "IGL", pool[:shared], slots)
		b := eloProfile(2, 2000, "AWPer", pool, slots)
		got, err := scoring.Score(a, b)
		require.NoError(t, err)
		assert.Equal(t, want, got.MapScore, "%d shared maps", shared)
	}
}

func TestPlaytimeBonusIsBinary(t *testing.T) {
	a := eloProfile(1, 2000, "IGL", nil, []string{"morning", "day", "evening", "night"})
	b := eloProfile(2, 2000, "AWPer", nil, []string{"morning", "day", "evening", "night"})
	full, err := scoring.Score(a, b)
	require.NoError(t, err)

	a2 := eloProfile(1, 2000, "IGL", nil, []string{"night"})
	single, err := scoring.Score(a2, b)
	require.NoError(t, err)

	// sharing one bucket is worth the same as sharing all of them
	assert.Equal(t, full.TimeScore, single.TimeScore)
	assert.Equal(t, 25, single.TimeScore)
}

func TestScoreUnscoreableRank(t *testing.T) {
	a := eloProfile(1, 2000, "IGL", nil, nil)
	bad := &db.Profile{UserID: 2, Role: "AWPer"} // no rank at all

	_, err := scoring.Score(a, bad)
	require.Error(t, err)
	assert.True(t, svcErr.IsValidation(err))
}

func TestScoreTierProfile(t *testing.T) {
	tier := "The Global Elite"
	a := &db.Profile{UserID: 1, RankTier: &tier, Role: "IGL"}
	b := eloProfile(2, 3400, "AWPer", nil, nil)

	got, err := scoring.Score(a, b)
	require.NoError(t, err)
	// tier midpoint matches the candidate's ELO exactly
	assert.Equal(t, 40, got.RankScore)
	assert.Equal(t, 0, got.RankDistance)
}
