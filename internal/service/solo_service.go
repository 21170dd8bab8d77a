package service

import (
	"errors"
	"time"

	"kelaskata/internal/catalog"
	"kelaskata/internal/models"
	"kelaskata/internal/scoring"
)

// ErrNoDrill is returned when an operation needs a drill in progress
var ErrNoDrill = errors.New("no drill in progress")

// SoloService runs the local self-study drill. Every mutation is written
// back to the store immediately so quitting mid-drill loses nothing.
type SoloService struct {
	store SoloStore
	state *models.SoloState
}

// NewSoloService creates a new solo drill service
func NewSoloService(store SoloStore) *SoloService {
	return &SoloService{store: store}
}

// Resume loads a previously saved drill if one exists
func (s *SoloService) Resume() (*models.SoloState, error) {
	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	s.state = state
	return state, nil
}

// Start begins a fresh drill, replacing any saved one
func (s *SoloService) Start(catalogKey, tier string) (*models.SoloState, error) {
	cat, ok := catalog.Get(catalogKey)
	if !ok {
		return nil, models.ErrUnknownCatalog
	}

	items, err := cat.SampleSession(tier)
	if err != nil {
		return nil, err
	}

	itemOrder := make([]string, len(items))
	for i, item := range items {
		itemOrder[i] = item.ID
	}

	now := time.Now()
	s.state = &models.SoloState{
		Catalog:   catalogKey,
		Tier:      tier,
		ItemOrder: itemOrder,
		StartedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(s.state); err != nil {
		return nil, err
	}
	return s.state, nil
}

// State returns the drill in progress, or nil
func (s *SoloService) State() *models.SoloState {
	return s.state
}

// CurrentItem returns the vocabulary item at the drill cursor
func (s *SoloService) CurrentItem() (models.VocabItem, error) {
	if s.state == nil {
		return models.VocabItem{}, ErrNoDrill
	}

	cat, ok := catalog.Get(s.state.Catalog)
	if !ok {
		return models.VocabItem{}, models.ErrUnknownCatalog
	}
	item, ok := cat.Lookup(s.state.CurrentItemID())
	if !ok {
		return models.VocabItem{}, ErrNoDrill
	}
	return item, nil
}

// Advance moves the drill cursor forward one item
func (s *SoloService) Advance() (*models.SoloState, error) {
	return s.move(1)
}

// Retreat moves the drill cursor back one item
func (s *SoloService) Retreat() (*models.SoloState, error) {
	return s.move(-1)
}

func (s *SoloService) move(delta int) (*models.SoloState, error) {
	if s.state == nil {
		return nil, ErrNoDrill
	}

	next := s.state.CurrentIndex + delta
	if next >= 0 && next < len(s.state.ItemOrder) {
		s.state.CurrentIndex = next
		s.state.UpdatedAt = time.Now()
		if err := s.store.Save(s.state); err != nil {
			return nil, err
		}
	}
	return s.state, nil
}

// Submit scores the marks for the current item and appends the result.
// A repeat submission for an already-assessed item changes nothing.
func (s *SoloService) Submit(reading, meaning, usage bool) (*models.SoloState, *models.AssessmentResult, error) {
	if s.state == nil {
		return nil, nil, ErrNoDrill
	}

	itemID := s.state.CurrentItemID()
	if itemID == "" || s.state.HasResult(itemID) {
		return s.state, nil, nil
	}

	cat, ok := catalog.Get(s.state.Catalog)
	if !ok {
		return nil, nil, models.ErrUnknownCatalog
	}
	item, ok := cat.Lookup(itemID)
	if !ok {
		return s.state, nil, nil
	}

	base := cat.Rules.BaseScore(item.Tier, reading, meaning, usage)
	newStreak, bonus := scoring.StreakUpdate(s.state.Streak, reading && meaning)

	r, m, u := reading, meaning, usage
	result := models.AssessmentResult{
		ItemID:     itemID,
		Reading:    &r,
		Meaning:    &m,
		Usage:      &u,
		BaseScore:  base,
		BonusScore: bonus,
		TotalScore: base + bonus,
		CreatedAt:  time.Now(),
	}

	s.state.Results = append(s.state.Results, result)
	s.state.TotalScore += result.TotalScore
	s.state.Streak = newStreak
	if newStreak > s.state.MaxStreak {
		s.state.MaxStreak = newStreak
	}
	s.state.UpdatedAt = time.Now()

	if err := s.store.Save(s.state); err != nil {
		return nil, nil, err
	}
	return s.state, &result, nil
}

// Finished reports whether every item in the drill has been assessed
func (s *SoloService) Finished() bool {
	return s.state != nil && len(s.state.Results) == len(s.state.ItemOrder)
}

// Reset discards the drill and its saved state
func (s *SoloService) Reset() error {
	s.state = nil
	return s.store.Clear()
}
