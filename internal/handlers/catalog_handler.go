package handlers

import (
	"encoding/json"
	"net/http"

	"kelaskata/internal/catalog"
)

// CatalogHandler serves the vocabulary catalogs available for drills
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

type catalogResponse struct {
	Key       string         `json:"key"`
	Name      string         `json:"name"`
	Tiers     []string       `json:"tiers"`
	Items     map[string]int `json:"items_per_tier"`
	MaxScores map[string]int `json:"max_score_per_item"`
}

// List returns every registered catalog with its tiers and item counts
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	var response []catalogResponse
	for _, cat := range catalog.All() {
		tiers := make([]string, 0, len(cat.Tiers)+1)
		maxScores := make(map[string]int, len(cat.Tiers))
		for _, tier := range cat.Tiers {
			tiers = append(tiers, string(tier))
			maxScores[string(tier)] = cat.Rules.MaxScore(tier)
		}
		tiers = append(tiers, "all")

		response = append(response, catalogResponse{
			Key:       cat.Key,
			Name:      cat.Name,
			Tiers:     tiers,
			Items:     cat.Counts(),
			MaxScores: maxScores,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
