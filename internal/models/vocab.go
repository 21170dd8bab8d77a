package models

// Tier identifies a difficulty grouping within a vocabulary catalog.
type Tier string

// Tiers of the built-in mufradat catalog. Other catalogs register their own.
const (
	TierLow  Tier = "low"
	TierMid  Tier = "mid"
	TierHigh Tier = "high"
)

// TierAll selects every tier of a catalog.
const TierAll = "all"

// VocabItem is a single immutable entry in a vocabulary catalog.
type VocabItem struct {
	ID          string `json:"id"`
	PrimaryForm string `json:"primary_form"`      // drilled form: Arabic script, hanzi, ...
	Reading     string `json:"reading,omitempty"` // pronunciation aid (pinyin), where the catalog has one
	Meaning     string `json:"meaning"`
	Tier        Tier   `json:"tier"`
}
