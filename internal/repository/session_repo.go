package repository

import (
	"database/sql"
	"strings"
	"time"

	"kelaskata/internal/database"
	"kelaskata/internal/models"
)

// SessionStore is the persistence surface the session service depends on.
type SessionStore interface {
	Create(session *models.DrillSession) (*models.DrillSession, error)
	GetByCode(code string) (*models.DrillSession, error)
	GetByID(id int64) (*models.DrillSession, error)
	UpdatePosition(id int64, currentIndex int) error
	SetActive(id int64, active bool) error
	// SubmitResult returns (nil, nil) when the session went inactive since
	// the caller's read; the result is discarded, nothing is written.
	SubmitResult(session *models.DrillSession, result *models.AssessmentResult) (*models.AssessmentResult, error)
	HasResult(sessionID int64, itemID string) (bool, error)
	ListResults(sessionID int64) ([]models.AssessmentResult, error)
	DeactivateStale(cutoff time.Time) ([]int64, error)
}

// SessionRepository handles drill session database operations
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// itemOrderToString serializes an item order for storage
func itemOrderToString(itemOrder []string) string {
	return strings.Join(itemOrder, ",")
}

// stringToItemOrder deserializes a stored item order
func stringToItemOrder(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Create inserts a new drill session and returns the stored row
func (r *SessionRepository) Create(session *models.DrillSession) (*models.DrillSession, error) {
	query := `
		INSERT INTO drill_sessions (code, catalog_key, tier, item_order, current_index,
		                            total_score, streak, max_streak, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		session.Code,
		session.Catalog,
		session.Tier,
		itemOrderToString(session.ItemOrder),
		session.CurrentIndex,
		session.TotalScore,
		session.Streak,
		session.MaxStreak,
		session.Active,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

const sessionColumns = `id, code, catalog_key, tier, item_order, current_index,
	       total_score, streak, max_streak, is_active, created_at, updated_at`

func scanSession(row interface{ Scan(...interface{}) error }) (*models.DrillSession, error) {
	session := &models.DrillSession{}
	var itemOrder string

	err := row.Scan(
		&session.ID,
		&session.Code,
		&session.Catalog,
		&session.Tier,
		&itemOrder,
		&session.CurrentIndex,
		&session.TotalScore,
		&session.Streak,
		&session.MaxStreak,
		&session.Active,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.ItemOrder = stringToItemOrder(itemOrder)
	return session, nil
}

// GetByID retrieves a drill session by ID
func (r *SessionRepository) GetByID(id int64) (*models.DrillSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM drill_sessions
		WHERE id = ?
	`

	session, err := scanSession(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrSessionNotFound
	}
	return session, err
}

// GetByCode retrieves a drill session by its join code
func (r *SessionRepository) GetByCode(code string) (*models.DrillSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM drill_sessions
		WHERE code = ?
	`

	session, err := scanSession(r.db.QueryRow(query, code))
	if err == sql.ErrNoRows {
		return nil, models.ErrSessionNotFound
	}
	return session, err
}

// UpdatePosition moves the session cursor and bumps updated_at
func (r *SessionRepository) UpdatePosition(id int64, currentIndex int) error {
	query := `
		UPDATE drill_sessions
		SET current_index = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, currentIndex, time.Now(), id)
	return err
}

// SetActive marks a session active or ended
func (r *SessionRepository) SetActive(id int64, active bool) error {
	query := `
		UPDATE drill_sessions
		SET is_active = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, active, time.Now(), id)
	return err
}

// SubmitResult appends an assessment result and updates the session score
// and streak in one transaction. The session carries the already-computed
// new totals.
func (r *SessionRepository) SubmitResult(session *models.DrillSession, result *models.AssessmentResult) (*models.AssessmentResult, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO assessment_results (session_id, item_id, reading_correct,
		                                meaning_correct, usage_correct,
		                                base_score, bonus_score, total_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	id, err := tx.ExecReturningID(insertQuery,
		result.SessionID,
		result.ItemID,
		result.Reading,
		result.Meaning,
		result.Usage,
		result.BaseScore,
		result.BonusScore,
		result.TotalScore,
	)
	if err != nil {
		return nil, err
	}

	// The is_active guard covers the window between the caller's read and
	// this write. A sweep may deactivate the session in between; the result
	// insert rolls back rather than landing on an ended session.
	updateQuery := `
		UPDATE drill_sessions
		SET total_score = ?, streak = ?, max_streak = ?, updated_at = ?
		WHERE id = ? AND is_active = ?
	`

	res, err := tx.Exec(updateQuery,
		session.TotalScore,
		session.Streak,
		session.MaxStreak,
		time.Now(),
		session.ID,
		true,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	result.ID = id
	result.CreatedAt = time.Now()
	return result, nil
}

// HasResult reports whether a result already exists for an item in a session
func (r *SessionRepository) HasResult(sessionID int64, itemID string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM assessment_results
		WHERE session_id = ? AND item_id = ?
	`

	var count int
	if err := r.db.QueryRow(query, sessionID, itemID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListResults retrieves all results for a session in submission order
func (r *SessionRepository) ListResults(sessionID int64) ([]models.AssessmentResult, error) {
	query := `
		SELECT id, session_id, item_id, reading_correct, meaning_correct,
		       usage_correct, base_score, bonus_score, total_score, created_at
		FROM assessment_results
		WHERE session_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.AssessmentResult
	for rows.Next() {
		var result models.AssessmentResult
		err := rows.Scan(
			&result.ID,
			&result.SessionID,
			&result.ItemID,
			&result.Reading,
			&result.Meaning,
			&result.Usage,
			&result.BaseScore,
			&result.BonusScore,
			&result.TotalScore,
			&result.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// ListSessions retrieves every session, newest first. Used by the export
// tool, not the serving path.
func (r *SessionRepository) ListSessions() ([]models.DrillSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM drill_sessions
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.DrillSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}

	return sessions, rows.Err()
}

// DeactivateStale ends every active session idle since before the cutoff
// and returns the affected session IDs so watchers can be notified.
func (r *SessionRepository) DeactivateStale(cutoff time.Time) ([]int64, error) {
	selectQuery := `
		SELECT id
		FROM drill_sessions
		WHERE is_active = ? AND updated_at < ?
	`

	rows, err := r.db.Query(selectQuery, true, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	// Update exactly the selected ids. Re-running the staleness predicate
	// here could deactivate a session that crossed the cutoff after the
	// select, and its watchers would never hear about it.
	placeholders := strings.Repeat(", ?", len(ids))[2:]
	updateQuery := `
		UPDATE drill_sessions
		SET is_active = ?, updated_at = ?
		WHERE id IN (` + placeholders + `)`

	args := make([]interface{}, 0, len(ids)+2)
	args = append(args, false, time.Now())
	for _, id := range ids {
		args = append(args, id)
	}
	if _, err := r.db.Exec(updateQuery, args...); err != nil {
		return nil, err
	}

	return ids, nil
}
