package models

import "time"

// SoloState is a self-study drill kept entirely on the local machine. It
// mirrors the shared session ledger minus the join code and host role, and
// survives restarts through a single state file.
type SoloState struct {
	Catalog      string             `json:"catalog"`
	Tier         string             `json:"tier"`
	ItemOrder    []string           `json:"item_order"`
	CurrentIndex int                `json:"current_index"`
	TotalScore   int                `json:"total_score"`
	Streak       int                `json:"streak"`
	MaxStreak    int                `json:"max_streak"`
	Results      []AssessmentResult `json:"results"`
	StartedAt    time.Time          `json:"started_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// CurrentItemID returns the item at the current position, or "" when the
// drill has no items.
func (s *SoloState) CurrentItemID() string {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.ItemOrder) {
		return ""
	}
	return s.ItemOrder[s.CurrentIndex]
}

// HasResult reports whether an item has already been assessed
func (s *SoloState) HasResult(itemID string) bool {
	for _, result := range s.Results {
		if result.ItemID == itemID {
			return true
		}
	}
	return false
}
