package scoring

import "kelaskata/internal/models"

// MaxStreak caps the consecutive-correct counter. A 30-item session can
// therefore earn at most 30 bonus points.
const MaxStreak = 30

// PointTable maps a catalog tier to the points one assessment criterion is
// worth at that tier.
type PointTable map[models.Tier]int

// Rules holds the per-tier point tables for the three assessment criteria.
// Each catalog supplies its own rules.
type Rules struct {
	Reading PointTable
	Meaning PointTable
	Usage   PointTable
}

// BaseScore sums the point tables for the given tier, counting a criterion
// only when its mark is correct. Unknown tiers contribute nothing.
func (r Rules) BaseScore(tier models.Tier, reading, meaning, usage bool) int {
	score := 0
	if reading {
		score += r.Reading[tier]
	}
	if meaning {
		score += r.Meaning[tier]
	}
	if usage {
		score += r.Usage[tier]
	}
	return score
}

// MaxScore returns the highest base score a single item at the tier can earn.
func (r Rules) MaxScore(tier models.Tier) int {
	return r.Reading[tier] + r.Meaning[tier] + r.Usage[tier]
}

// StreakUpdate advances the streak counter. A non-qualifying answer resets
// the streak immediately with no partial credit. A qualifying answer bumps
// the streak, clamped at MaxStreak, and always earns a flat +1 bonus. The
// bonus keeps accruing while the streak is pinned at the cap.
func StreakUpdate(current int, qualifying bool) (newStreak, bonus int) {
	if !qualifying {
		return 0, 0
	}
	newStreak = current + 1
	if newStreak > MaxStreak {
		newStreak = MaxStreak
	}
	return newStreak, 1
}

// Qualifying reports whether an answer feeds the streak: reading and meaning
// both marked correct. The usage criterion is intentionally excluded.
func Qualifying(reading, meaning *bool) bool {
	return reading != nil && *reading && meaning != nil && *meaning
}

// FullyCorrect is the strict AND of all three marks. Display and statistics
// only; it plays no part in scoring.
func FullyCorrect(reading, meaning, usage *bool) bool {
	return reading != nil && *reading &&
		meaning != nil && *meaning &&
		usage != nil && *usage
}
