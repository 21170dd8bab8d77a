package models

import "time"

// DrillSession is the shared per-session ledger: the item sequence fixed at
// creation, the teacher's current position, and the cumulative score state.
// It is mutated only by the session host and observed by everyone else.
type DrillSession struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Catalog      string    `json:"catalog"`
	Tier         string    `json:"tier"` // a catalog tier, or "all"
	ItemOrder    []string  `json:"item_order"`
	CurrentIndex int       `json:"current_index"`
	TotalScore   int       `json:"total_score"`
	Streak       int       `json:"streak"`
	MaxStreak    int       `json:"max_streak"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CurrentItemID returns the item at the current position, or "" when the
// session has no items.
func (s *DrillSession) CurrentItemID() string {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.ItemOrder) {
		return ""
	}
	return s.ItemOrder[s.CurrentIndex]
}

// AssessmentResult records the teacher's marks for one vocabulary item.
// Exactly one result may exist per item per session, and a result is never
// edited or deleted once recorded. The mark pointers are nil only before
// submission; a stored result always has all three set.
type AssessmentResult struct {
	ID         int64     `json:"id"`
	SessionID  int64     `json:"session_id"`
	ItemID     string    `json:"item_id"`
	Reading    *bool     `json:"reading"`
	Meaning    *bool     `json:"meaning"`
	Usage      *bool     `json:"usage"`
	BaseScore  int       `json:"base_score"`
	BonusScore int       `json:"bonus_score"`
	TotalScore int       `json:"total_score"`
	CreatedAt  time.Time `json:"created_at"`
}

// Submitted reports whether all three marks have been recorded.
func (r *AssessmentResult) Submitted() bool {
	return r.Reading != nil && r.Meaning != nil && r.Usage != nil
}
