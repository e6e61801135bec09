package rules

// InvalidScore is returned by ScoreUser when any count is negative.
const InvalidScore = -1

// Activity is a user activity record.
type Activity struct {
	Age         int  `json:"age" yaml:"age"`
	YearsActive int  `json:"years_active" yaml:"years_active"`
	Posts       int  `json:"posts" yaml:"posts"`
	Verified    bool `json:"verified" yaml:"verified"`
}

// EngagementBreakdown records each additive part of an engagement score.
type EngagementBreakdown struct {
	Invalid  bool `json:"invalid"`
	Tier     int  `json:"tier"`
	Activity int  `json:"activity"`
	Loyalty  int  `json:"loyalty"`
	Total    int  `json:"total"`
}

// ScoreUser computes the engagement score, or InvalidScore for negative input.
func ScoreUser(age, yearsActive, posts int, verified bool) int {
	return Activity{Age: age, YearsActive: yearsActive, Posts: posts, Verified: verified}.Score()
}

// Score returns the total engagement score for a.
func (a Activity) Score() int {
	return a.Explain().Total
}

// Explain computes the score and reports which adjustments contributed.
func (a Activity) Explain() EngagementBreakdown {
	if a.Age < 0 || a.YearsActive < 0 || a.Posts < 0 {
		return EngagementBreakdown{Invalid: true, Total: InvalidScore}
	}

	b := EngagementBreakdown{
		Tier:     a.tierBonus(),
		Activity: a.activityAdjustment(),
		Loyalty:  a.loyaltyBonus(),
	}
	b.Total = b.Tier + b.Activity + b.Loyalty
	return b
}

func (a Activity) tierBonus() int {
	switch {
	case (a.Age >= 18 && a.Verified) || (a.YearsActive > 5 && a.Posts > 100):
		return 25
	case (a.Age >= 16 && a.YearsActive >= 1) && (a.Verified || a.Posts > 10):
		return 10
	default:
		return 1
	}
}

// activityAdjustment is evaluated from scratch, independent of the tier.
func (a Activity) activityAdjustment() int {
	switch {
	case (a.Posts > 500 && a.YearsActive > 3) || (a.Verified && a.Posts > 250):
		return 50
	case a.Posts > 50 && a.YearsActive > 1:
		return 15
	case a.Posts == 0 && !a.Verified:
		return -5
	default:
		return 0
	}
}

func (a Activity) loyaltyBonus() int {
	if (a.Age > 30 && a.YearsActive > 10 && a.Verified) || (a.Age > 50 && a.Posts > 50) {
		return 10
	}
	return 0
}
