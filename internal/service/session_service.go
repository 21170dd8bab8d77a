package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"kelaskata/internal/broker"
	"kelaskata/internal/catalog"
	"kelaskata/internal/models"
	"kelaskata/internal/repository"
	"kelaskata/internal/scoring"
	"kelaskata/internal/sessioncode"
	"kelaskata/internal/token"
)

// maxCodeAttempts bounds retries when a generated join code collides
const maxCodeAttempts = 5

// SessionService handles shared drill session business logic. All writes
// go through the host token check so only the session creator can mutate
// state; observer requests that fail the check are discarded as no-ops.
type SessionService struct {
	repo   repository.SessionStore
	hub    *broker.Hub
	issuer *token.Issuer
	recap  *RecapService

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewSessionService creates a new session service
func NewSessionService(repo repository.SessionStore, hub *broker.Hub, issuer *token.Issuer, recap *RecapService) *SessionService {
	return &SessionService{
		repo:   repo,
		hub:    hub,
		issuer: issuer,
		recap:  recap,
		locks:  make(map[int64]*sync.Mutex),
	}
}

// sessionLock returns the mutex serializing writes for one session
func (s *SessionService) sessionLock(sessionID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// releaseLock drops the mutex for a finished session
func (s *SessionService) releaseLock(sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, sessionID)
}

// CreateSession samples a drill deck for the catalog and tier, stores the
// session under a fresh join code, and returns it with the host token.
func (s *SessionService) CreateSession(catalogKey, tier string) (*models.DrillSession, string, error) {
	cat, ok := catalog.Get(catalogKey)
	if !ok {
		return nil, "", models.ErrUnknownCatalog
	}

	items, err := cat.SampleSession(tier)
	if err != nil {
		return nil, "", err
	}

	itemOrder := make([]string, len(items))
	for i, item := range items {
		itemOrder[i] = item.ID
	}

	var session *models.DrillSession
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := sessioncode.Generate()
		if err != nil {
			return nil, "", err
		}

		session, err = s.repo.Create(&models.DrillSession{
			Code:      code,
			Catalog:   catalogKey,
			Tier:      tier,
			ItemOrder: itemOrder,
			Active:    true,
		})
		if err == nil {
			break
		}
		// Assume a code collision and retry with a fresh one.
		session = nil
		log.Printf("Session create attempt %d failed for code %s: %v", attempt+1, code, err)
	}
	if session == nil {
		return nil, "", fmt.Errorf("failed to create session after %d attempts", maxCodeAttempts)
	}

	hostToken, err := s.issuer.IssueHost(session.ID)
	if err != nil {
		return nil, "", err
	}

	return session, hostToken, nil
}

// JoinSession resolves a join code to an active session snapshot together
// with the assessment ledger so far, so a late joiner starts from the same
// state the event stream continues from.
func (s *SessionService) JoinSession(code string) (*models.DrillSession, []models.AssessmentResult, error) {
	normalized, err := sessioncode.Normalize(code)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.repo.GetByCode(normalized)
	if err != nil {
		return nil, nil, err
	}
	// An ended session is indistinguishable from an unknown code.
	if !session.Active {
		return nil, nil, models.ErrSessionNotFound
	}

	results, err := s.repo.ListResults(session.ID)
	if err != nil {
		return nil, nil, err
	}
	return session, results, nil
}

// GetSession returns the current session snapshot, active or not
func (s *SessionService) GetSession(code string) (*models.DrillSession, error) {
	normalized, err := sessioncode.Normalize(code)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByCode(normalized)
}

// GetSessionResults returns the session and its full assessment ledger
func (s *SessionService) GetSessionResults(code string) (*models.DrillSession, []models.AssessmentResult, error) {
	session, err := s.GetSession(code)
	if err != nil {
		return nil, nil, err
	}

	results, err := s.repo.ListResults(session.ID)
	if err != nil {
		return nil, nil, err
	}
	return session, results, nil
}

// authorize reports whether the host token grants writes on the session
func (s *SessionService) authorize(session *models.DrillSession, hostToken string) bool {
	sessionID, err := s.issuer.VerifyHost(hostToken)
	if err != nil {
		return false
	}
	return sessionID == session.ID
}

// lockedSession fetches the session under its write lock. The caller must
// call unlock when done.
func (s *SessionService) lockedSession(code string) (*models.DrillSession, func(), error) {
	normalized, err := sessioncode.Normalize(code)
	if err != nil {
		return nil, nil, err
	}

	// Resolve the ID first so the lock is per session, then re-read
	// under the lock for a consistent snapshot.
	session, err := s.repo.GetByCode(normalized)
	if err != nil {
		return nil, nil, err
	}

	lock := s.sessionLock(session.ID)
	lock.Lock()

	session, err = s.repo.GetByID(session.ID)
	if err != nil {
		lock.Unlock()
		return nil, nil, err
	}
	return session, lock.Unlock, nil
}

// Advance moves the session cursor forward one item. Requests without a
// valid host token leave the session untouched.
func (s *SessionService) Advance(code, hostToken string) (*models.DrillSession, error) {
	return s.move(code, hostToken, 1)
}

// Retreat moves the session cursor back one item
func (s *SessionService) Retreat(code, hostToken string) (*models.DrillSession, error) {
	return s.move(code, hostToken, -1)
}

func (s *SessionService) move(code, hostToken string, delta int) (*models.DrillSession, error) {
	session, unlock, err := s.lockedSession(code)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// Ended sessions absorb writer operations as no-ops.
	if !session.Active || !s.authorize(session, hostToken) {
		return session, nil
	}

	next := session.CurrentIndex + delta
	if next < 0 || next >= len(session.ItemOrder) {
		// Cursor stays clamped at the deck edges.
		return session, nil
	}

	if err := s.repo.UpdatePosition(session.ID, next); err != nil {
		return nil, err
	}
	session.CurrentIndex = next
	session.UpdatedAt = time.Now()

	s.hub.Publish(session.ID, broker.Event{Type: broker.EventSessionUpdated, Session: session})
	return session, nil
}

// SubmitAssessment records the host's marks for the current item, scores
// them, and appends the result to the session ledger. Repeat submissions
// for an already-assessed item are discarded.
func (s *SessionService) SubmitAssessment(code, hostToken string, reading, meaning, usage *bool) (*models.DrillSession, *models.AssessmentResult, error) {
	session, unlock, err := s.lockedSession(code)
	if err != nil {
		return nil, nil, err
	}
	defer unlock()

	if !session.Active || !s.authorize(session, hostToken) {
		return session, nil, nil
	}

	if reading == nil || meaning == nil || usage == nil {
		return nil, nil, models.ErrMissingMarks
	}

	itemID := session.CurrentItemID()
	if itemID == "" {
		return session, nil, nil
	}

	cat, ok := catalog.Get(session.Catalog)
	if !ok {
		return nil, nil, models.ErrUnknownCatalog
	}
	item, ok := cat.Lookup(itemID)
	if !ok {
		return session, nil, nil
	}

	exists, err := s.repo.HasResult(session.ID, itemID)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return session, nil, nil
	}

	base := cat.Rules.BaseScore(item.Tier, *reading, *meaning, *usage)
	newStreak, bonus := scoring.StreakUpdate(session.Streak, scoring.Qualifying(reading, meaning))

	session.TotalScore += base + bonus
	session.Streak = newStreak
	if newStreak > session.MaxStreak {
		session.MaxStreak = newStreak
	}

	result, err := s.repo.SubmitResult(session, &models.AssessmentResult{
		SessionID:  session.ID,
		ItemID:     itemID,
		Reading:    reading,
		Meaning:    meaning,
		Usage:      usage,
		BaseScore:  base,
		BonusScore: bonus,
		TotalScore: base + bonus,
	})
	if err != nil {
		return nil, nil, err
	}
	if result == nil {
		// The staleness sweep ended the session between our read and the
		// write; the store discarded the result, so report a plain no-op.
		if fresh, ferr := s.repo.GetByID(session.ID); ferr == nil {
			session = fresh
		}
		return session, nil, nil
	}
	session.UpdatedAt = time.Now()

	s.hub.Publish(session.ID, broker.Event{Type: broker.EventResultInserted, Session: session, Result: result})
	return session, result, nil
}

// EndSession deactivates the session and notifies watchers. A recap email
// goes out in the background when the recap service is configured.
func (s *SessionService) EndSession(code, hostToken string) (*models.DrillSession, error) {
	session, unlock, err := s.lockedSession(code)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !session.Active {
		return session, nil
	}
	if !s.authorize(session, hostToken) {
		return session, nil
	}

	if err := s.repo.SetActive(session.ID, false); err != nil {
		return nil, err
	}
	session.Active = false
	session.UpdatedAt = time.Now()

	s.hub.Publish(session.ID, broker.Event{Type: broker.EventSessionEnded, Session: session})
	s.releaseLock(session.ID)

	if s.recap != nil && s.recap.IsEnabled() {
		results, err := s.repo.ListResults(session.ID)
		if err != nil {
			log.Printf("Failed to load results for recap email: %v", err)
		} else {
			go func(session models.DrillSession, results []models.AssessmentResult) {
				if err := s.recap.SendSessionRecap(context.Background(), &session, results); err != nil {
					log.Printf("Failed to send recap email for session %s: %v", session.Code, err)
				}
			}(*session, results)
		}
	}

	return session, nil
}

// SweepStaleSessions ends every session idle longer than the timeout and
// notifies their watchers. Called periodically from the server loop.
func (s *SessionService) SweepStaleSessions(idleTimeout time.Duration) (int, error) {
	ids, err := s.repo.DeactivateStale(time.Now().Add(-idleTimeout))
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		session, err := s.repo.GetByID(id)
		if err != nil {
			log.Printf("Failed to load swept session %d: %v", id, err)
			continue
		}
		s.hub.Publish(id, broker.Event{Type: broker.EventSessionEnded, Session: session})
		s.releaseLock(id)
	}

	return len(ids), nil
}
