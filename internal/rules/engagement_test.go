package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreUser(t *testing.T) {
	tests := []struct {
		name              string
		age, years, posts int
		verified          bool
		want              int
	}{
		{"reference A", 19, 0, 5, true, 25},
		{"reference B", 35, 12, 60, true, 50},
		{"reference C", 15, 0, 0, false, -4},
		{"adult verified no posts", 18, 0, 0, true, 25},
		{"minor verified", 17, 0, 0, true, 1},
		{"veteran poster tier", 10, 6, 101, false, 40},
		{"mid tier via posts", 16, 1, 11, false, 10},
		{"heavy poster", 40, 4, 501, false, 60},
		{"verified over 250 posts", 20, 0, 251, true, 75},
		{"senior poster loyalty", 51, 0, 51, false, 11},
		{"all zero", 0, 0, 0, false, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreUser(tt.age, tt.years, tt.posts, tt.verified))
		})
	}
}

func TestScoreUserNegativeInputIsInvalid(t *testing.T) {
	for _, a := range []Activity{
		{Age: -1},
		{Age: 40, YearsActive: -1, Posts: 600, Verified: true},
		{Age: 40, YearsActive: 12, Posts: -1, Verified: true},
		{Age: -5, YearsActive: -5, Posts: -5},
	} {
		assert.Equal(t, InvalidScore, a.Score(), "%+v", a)
		b := a.Explain()
		assert.True(t, b.Invalid)
		assert.Zero(t, b.Tier+b.Activity+b.Loyalty, "invalid input must not accumulate adjustments")
	}
}

func TestEngagementExplain(t *testing.T) {
	b := Activity{Age: 35, YearsActive: 12, Posts: 60, Verified: true}.Explain()
	assert.Equal(t, EngagementBreakdown{Tier: 25, Activity: 15, Loyalty: 10, Total: 50}, b)

	b = Activity{Age: 15}.Explain()
	assert.Equal(t, EngagementBreakdown{Tier: 1, Activity: -5, Total: -4}, b)
}
