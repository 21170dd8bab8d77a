package scoring

import (
	"testing"

	"kelaskata/internal/models"
)

var testRules = Rules{
	Reading: PointTable{models.TierLow: 2, models.TierMid: 4, models.TierHigh: 6},
	Meaning: PointTable{models.TierLow: 1, models.TierMid: 2, models.TierHigh: 3},
	Usage:   PointTable{models.TierLow: 2, models.TierMid: 4, models.TierHigh: 6},
}

func boolPtr(b bool) *bool { return &b }

func TestBaseScore(t *testing.T) {
	tests := []struct {
		name                    string
		tier                    models.Tier
		reading, meaning, usage bool
		expected                int
	}{
		{"all wrong scores zero", models.TierLow, false, false, false, 0},
		{"reading only low", models.TierLow, true, false, false, 2},
		{"meaning only low", models.TierLow, false, true, false, 1},
		{"usage only low", models.TierLow, false, false, true, 2},
		{"all correct low", models.TierLow, true, true, true, 5},
		{"all correct mid", models.TierMid, true, true, true, 10},
		{"all correct high", models.TierHigh, true, true, true, 15},
		{"reading and usage high", models.TierHigh, true, false, true, 12},
		{"unknown tier scores zero", models.Tier("xl"), true, true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testRules.BaseScore(tt.tier, tt.reading, tt.meaning, tt.usage)
			if got != tt.expected {
				t.Errorf("BaseScore() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestBaseScoreIsSumOfTables(t *testing.T) {
	for _, tier := range []models.Tier{models.TierLow, models.TierMid, models.TierHigh} {
		for r := 0; r < 2; r++ {
			for m := 0; m < 2; m++ {
				for u := 0; u < 2; u++ {
					want := 0
					if r == 1 {
						want += testRules.Reading[tier]
					}
					if m == 1 {
						want += testRules.Meaning[tier]
					}
					if u == 1 {
						want += testRules.Usage[tier]
					}
					got := testRules.BaseScore(tier, r == 1, m == 1, u == 1)
					if got != want {
						t.Errorf("BaseScore(%s,%d,%d,%d) = %d, want %d", tier, r, m, u, got, want)
					}
				}
			}
		}
	}
}

func TestMaxScore(t *testing.T) {
	if got := testRules.MaxScore(models.TierLow); got != 5 {
		t.Errorf("MaxScore(low) = %d, want 5", got)
	}
	if got := testRules.MaxScore(models.TierHigh); got != 15 {
		t.Errorf("MaxScore(high) = %d, want 15", got)
	}
}

func TestStreakUpdateNotQualifying(t *testing.T) {
	for _, current := range []int{0, 1, 5, MaxStreak - 1, MaxStreak} {
		newStreak, bonus := StreakUpdate(current, false)
		if newStreak != 0 || bonus != 0 {
			t.Errorf("StreakUpdate(%d, false) = (%d, %d), want (0, 0)", current, newStreak, bonus)
		}
	}
}

func TestStreakUpdateQualifying(t *testing.T) {
	for current := 0; current <= MaxStreak; current++ {
		newStreak, bonus := StreakUpdate(current, true)

		want := current + 1
		if want > MaxStreak {
			want = MaxStreak
		}
		if newStreak != want {
			t.Errorf("StreakUpdate(%d, true) streak = %d, want %d", current, newStreak, want)
		}
		if bonus != 1 {
			t.Errorf("StreakUpdate(%d, true) bonus = %d, want 1", current, bonus)
		}
	}
}

// The bonus keeps accruing while the streak is pinned at the cap.
func TestStreakBonusAtCap(t *testing.T) {
	newStreak, bonus := StreakUpdate(MaxStreak, true)
	if newStreak != MaxStreak {
		t.Errorf("streak at cap = %d, want %d", newStreak, MaxStreak)
	}
	if bonus != 1 {
		t.Errorf("bonus at cap = %d, want 1", bonus)
	}
}

func TestQualifying(t *testing.T) {
	tests := []struct {
		name             string
		reading, meaning *bool
		expected         bool
	}{
		{"both correct", boolPtr(true), boolPtr(true), true},
		{"meaning wrong", boolPtr(true), boolPtr(false), false},
		{"reading wrong", boolPtr(false), boolPtr(true), false},
		{"reading unset", nil, boolPtr(true), false},
		{"both unset", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifying(tt.reading, tt.meaning); got != tt.expected {
				t.Errorf("Qualifying() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFullyCorrect(t *testing.T) {
	if !FullyCorrect(boolPtr(true), boolPtr(true), boolPtr(true)) {
		t.Error("expected fully correct when all marks true")
	}
	if FullyCorrect(boolPtr(true), boolPtr(true), boolPtr(false)) {
		t.Error("usage wrong should not be fully correct")
	}
	if FullyCorrect(boolPtr(true), boolPtr(true), nil) {
		t.Error("unset usage should not be fully correct")
	}
}

// The documented scoring scenario: low tier worth 2/1/2, a perfect answer at
// streak zero earns base 5 plus 1 bonus; a follow-up with meaning wrong earns
// no bonus and resets the streak even though usage was correct.
func TestScoringScenario(t *testing.T) {
	base := testRules.BaseScore(models.TierLow, true, true, true)
	if base != 5 {
		t.Fatalf("base = %d, want 5", base)
	}
	streak, bonus := StreakUpdate(0, Qualifying(boolPtr(true), boolPtr(true)))
	if streak != 1 || bonus != 1 {
		t.Fatalf("first answer: streak=%d bonus=%d, want 1/1", streak, bonus)
	}
	if total := base + bonus; total != 6 {
		t.Fatalf("total = %d, want 6", total)
	}

	streak, bonus = StreakUpdate(streak, Qualifying(boolPtr(true), boolPtr(false)))
	if streak != 0 || bonus != 0 {
		t.Fatalf("second answer: streak=%d bonus=%d, want 0/0", streak, bonus)
	}
}
