package cs2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tw1zzzzz/CisBot2/internal/cs2"
)

func TestEloInFilter(t *testing.T) {
	cases := []struct {
		name   string
		filter string
		value  int
		want   bool
	}{
		{"in newbie", "newbie", 1500, true},
		{"above newbie", "newbie", 2000, false},
		{"intermediate lower edge", "intermediate", 2000, true},
		{"intermediate upper edge", "intermediate", 2699, true},
		{"below intermediate", "intermediate", 1999, false},
		{"pro open-ended", "pro", 4200, true},
		{"below pro", "pro", 3099, false},
		{"any passes all", cs2.FilterAny, 1, true},
		{"unknown filter passes all", "no_such_filter", 1, true},
		{"top_1000 is not a range", cs2.FilterTop1000, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cs2.EloInFilter(tc.value, tc.filter))
		})
	}
}

func TestEloFilterByID(t *testing.T) {
	f := cs2.EloFilterByID(cs2.FilterTop1000)
	if assert.NotNil(t, f) {
		assert.Equal(t, 1000, f.TopN)
	}
	assert.Nil(t, cs2.EloFilterByID(cs2.FilterAny))
	assert.Nil(t, cs2.EloFilterByID("bogus"))
}

func TestValidators(t *testing.T) {
	assert.True(t, cs2.ValidRole("AWPer"))
	assert.False(t, cs2.ValidRole("Coach"))

	assert.True(t, cs2.ValidMap("Mirage"))
	assert.False(t, cs2.ValidMap("Cache"))

	assert.True(t, cs2.ValidPlaytimeSlot("night"))
	assert.False(t, cs2.ValidPlaytimeSlot("noon"))

	assert.True(t, cs2.ValidCategories([]string{"faceit", "tournaments"}))
	assert.False(t, cs2.ValidCategories([]string{"faceit", "ranked"}))
	assert.False(t, cs2.ValidCategories(nil))
}
