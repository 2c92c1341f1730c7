package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcErr "github.com/Tw1zzzzz/CisBot2/internal/errors"
	"github.com/Tw1zzzzz/CisBot2/internal/rank"
)

func TestTierLadder(t *testing.T) {
	require.Len(t, rank.Tiers, 18)

	// midpoints must rise strictly with the ladder so tier ordering
	// survives normalization
	prev := 0
	for _, tier := range rank.Tiers {
		n, err := rank.Normalize(rank.Tier(tier))
		require.NoError(t, err, "tier %q", tier)
		assert.Greater(t, n, prev, "tier %q must outrank the previous tier", tier)
		prev = n
	}
}

func TestNormalizeElo(t *testing.T) {
	n, err := rank.Normalize(rank.Elo(2350))
	require.NoError(t, err)
	assert.Equal(t, 2350, n)
}

func TestNormalizeRejectsUnknownTier(t *testing.T) {
	_, err := rank.Normalize(rank.Tier("Platinum IV"))
	require.Error(t, err)
	assert.True(t, svcErr.IsValidation(err))
}

func TestNormalizeRejectsNonPositiveElo(t *testing.T) {
	for _, elo := range []int{0, -1, -500} {
		_, err := rank.Normalize(rank.Elo(elo))
		require.Error(t, err, "elo %d", elo)
		assert.True(t, svcErr.IsValidation(err))
	}
}

func TestNormalizeRejectsEmptyValue(t *testing.T) {
	_, err := rank.Normalize(rank.Value{})
	require.Error(t, err)
	assert.True(t, svcErr.IsValidation(err))
}

func TestDistanceMixedRepresentations(t *testing.T) {
	// a tier and an ELO land on the same axis
	mid, err := rank.Normalize(rank.Tier("The Global Elite"))
	require.NoError(t, err)

	d, err := rank.Distance(rank.Tier("The Global Elite"), rank.Elo(mid))
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	d, err = rank.Distance(rank.Elo(1000), rank.Elo(1300))
	require.NoError(t, err)
	assert.Equal(t, 300, d)

	// distance is symmetric
	d2, err := rank.Distance(rank.Elo(1300), rank.Elo(1000))
	require.NoError(t, err)
	assert.Equal(t, d, d2)
}
