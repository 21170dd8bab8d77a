package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kelaskata/internal/broker"
	"kelaskata/internal/models"
	"kelaskata/internal/service"
	"kelaskata/internal/token"
)

// stubSessionStore is an in-memory store backing the handler tests
type stubSessionStore struct {
	nextSessionID int64
	nextResultID  int64
	sessions      map[int64]*models.DrillSession
	results       map[int64][]models.AssessmentResult
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		sessions: make(map[int64]*models.DrillSession),
		results:  make(map[int64][]models.AssessmentResult),
	}
}

func (m *stubSessionStore) clone(s *models.DrillSession) *models.DrillSession {
	c := *s
	c.ItemOrder = append([]string(nil), s.ItemOrder...)
	return &c
}

func (m *stubSessionStore) Create(session *models.DrillSession) (*models.DrillSession, error) {
	m.nextSessionID++
	stored := m.clone(session)
	stored.ID = m.nextSessionID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.sessions[stored.ID] = stored
	return m.clone(stored), nil
}

func (m *stubSessionStore) GetByCode(code string) (*models.DrillSession, error) {
	for _, s := range m.sessions {
		if s.Code == code {
			return m.clone(s), nil
		}
	}
	return nil, models.ErrSessionNotFound
}

func (m *stubSessionStore) GetByID(id int64) (*models.DrillSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return m.clone(s), nil
}

func (m *stubSessionStore) UpdatePosition(id int64, currentIndex int) error {
	m.sessions[id].CurrentIndex = currentIndex
	return nil
}

func (m *stubSessionStore) SetActive(id int64, active bool) error {
	m.sessions[id].Active = active
	return nil
}

func (m *stubSessionStore) SubmitResult(session *models.DrillSession, result *models.AssessmentResult) (*models.AssessmentResult, error) {
	m.nextResultID++
	stored := *result
	stored.ID = m.nextResultID
	stored.CreatedAt = time.Now()
	m.results[session.ID] = append(m.results[session.ID], stored)

	s := m.sessions[session.ID]
	s.TotalScore = session.TotalScore
	s.Streak = session.Streak
	s.MaxStreak = session.MaxStreak
	return &stored, nil
}

func (m *stubSessionStore) HasResult(sessionID int64, itemID string) (bool, error) {
	for _, existing := range m.results[sessionID] {
		if existing.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (m *stubSessionStore) ListResults(sessionID int64) ([]models.AssessmentResult, error) {
	return append([]models.AssessmentResult(nil), m.results[sessionID]...), nil
}

func (m *stubSessionStore) DeactivateStale(cutoff time.Time) ([]int64, error) {
	return nil, nil
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	hub := broker.NewHub()
	sessions := service.NewSessionService(newStubSessionStore(), hub, token.NewIssuer("test-secret"), nil)

	sessionHandler := NewSessionHandler(sessions)
	eventsHandler := NewEventsHandler(sessions, hub)
	catalogHandler := NewCatalogHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/catalogs", catalogHandler.List)
	mux.HandleFunc("POST /api/sessions", sessionHandler.Create)
	mux.HandleFunc("POST /api/sessions/join", sessionHandler.Join)
	mux.HandleFunc("GET /api/sessions/{code}", sessionHandler.Get)
	mux.HandleFunc("POST /api/sessions/{code}/advance", sessionHandler.Advance)
	mux.HandleFunc("POST /api/sessions/{code}/retreat", sessionHandler.Retreat)
	mux.HandleFunc("POST /api/sessions/{code}/end", sessionHandler.End)
	mux.HandleFunc("POST /api/sessions/{code}/assessments", sessionHandler.SubmitAssessment)
	mux.HandleFunc("GET /api/sessions/{code}/events", eventsHandler.Stream)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	r := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		r.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func createTestSession(t *testing.T, mux *http.ServeMux) createSessionResponse {
	t.Helper()

	w := doJSON(t, mux, http.MethodPost, "/api/sessions", "",
		map[string]string{"catalog": "mufradat", "tier": "mid"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Create returned %d: %s", w.Code, w.Body.String())
	}

	var resp createSessionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode create response: %v", err)
	}
	return resp
}

func TestListCatalogs(t *testing.T) {
	mux := newTestMux(t)

	w := doJSON(t, mux, http.MethodGet, "/api/catalogs", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("List returned %d", w.Code)
	}

	var resp []catalogResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("Expected 2 catalogs, got %d", len(resp))
	}
	if resp[0].Key != "hsk" || resp[1].Key != "mufradat" {
		t.Errorf("Catalog order = %s, %s", resp[0].Key, resp[1].Key)
	}
	if resp[1].Items["all"] != 90 {
		t.Errorf("mufradat total = %d, want 90", resp[1].Items["all"])
	}
	if resp[1].MaxScores["high"] != 15 {
		t.Errorf("mufradat high max score = %d, want 15", resp[1].MaxScores["high"])
	}
}

func TestCreateSessionEndpoint(t *testing.T) {
	mux := newTestMux(t)
	resp := createTestSession(t, mux)

	if resp.Session == nil || len(resp.Session.Code) != 5 {
		t.Fatalf("Bad session in response: %+v", resp.Session)
	}
	if resp.HostToken == "" {
		t.Error("Expected a host token")
	}
	if len(resp.Items) != len(resp.Session.ItemOrder) {
		t.Errorf("Items = %d, want %d", len(resp.Items), len(resp.Session.ItemOrder))
	}
}

func TestCreateSessionEndpointValidation(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"unknown catalog", map[string]string{"catalog": "nope", "tier": "mid"}, http.StatusBadRequest},
		{"invalid tier", map[string]string{"catalog": "mufradat", "tier": "hsk1"}, http.StatusBadRequest},
		{"malformed body", "not an object", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, mux, http.MethodPost, "/api/sessions", "", tt.body)
			if w.Code != tt.want {
				t.Errorf("Status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestJoinEndpoint(t *testing.T) {
	mux := newTestMux(t)
	created := createTestSession(t, mux)

	yes := true
	w := doJSON(t, mux, http.MethodPost, "/api/sessions/"+created.Session.Code+"/assessments",
		created.HostToken, submitAssessmentRequest{Reading: &yes, Meaning: &yes, Usage: &yes})
	if w.Code != http.StatusCreated {
		t.Fatalf("SubmitAssessment returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, mux, http.MethodPost, "/api/sessions/join", "",
		map[string]string{"code": created.Session.Code})
	if w.Code != http.StatusOK {
		t.Fatalf("Join returned %d: %s", w.Code, w.Body.String())
	}

	var resp sessionDetailResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Session.ID != created.Session.ID {
		t.Errorf("Joined session %d, want %d", resp.Session.ID, created.Session.ID)
	}
	if len(resp.Items) == 0 {
		t.Error("Join response has no items")
	}
	if len(resp.Results) != 1 {
		t.Errorf("Join response carried %d results, want 1", len(resp.Results))
	}

	w = doJSON(t, mux, http.MethodPost, "/api/sessions/join", "", map[string]string{"code": "ZZZZZ"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Unknown code returned %d, want 404", w.Code)
	}

	w = doJSON(t, mux, http.MethodPost, "/api/sessions/join", "", map[string]string{"code": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Invalid code returned %d, want 400", w.Code)
	}
}

func TestAdvanceEndpoint(t *testing.T) {
	mux := newTestMux(t)
	created := createTestSession(t, mux)
	path := fmt.Sprintf("/api/sessions/%s/advance", created.Session.Code)

	w := doJSON(t, mux, http.MethodPost, path, created.HostToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Advance returned %d: %s", w.Code, w.Body.String())
	}

	var resp sessionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Session.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", resp.Session.CurrentIndex)
	}

	// Without the host token the cursor stays put.
	w = doJSON(t, mux, http.MethodPost, path, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Observer advance returned %d", w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Session.CurrentIndex != 1 {
		t.Errorf("Observer moved the cursor to %d", resp.Session.CurrentIndex)
	}
}

func TestSubmitAssessmentEndpoint(t *testing.T) {
	mux := newTestMux(t)
	created := createTestSession(t, mux)
	path := fmt.Sprintf("/api/sessions/%s/assessments", created.Session.Code)

	yes, no := true, false
	w := doJSON(t, mux, http.MethodPost, path, created.HostToken,
		submitAssessmentRequest{Reading: &yes, Meaning: &yes, Usage: &no})
	if w.Code != http.StatusCreated {
		t.Fatalf("Submit returned %d: %s", w.Code, w.Body.String())
	}

	var resp assessmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Result == nil {
		t.Fatal("Expected a result")
	}
	if resp.Result.BonusScore != 1 {
		t.Errorf("BonusScore = %d, want 1", resp.Result.BonusScore)
	}
	if resp.Session.TotalScore != resp.Result.TotalScore {
		t.Errorf("Session total %d != result total %d", resp.Session.TotalScore, resp.Result.TotalScore)
	}

	// A repeat submission is a no-op 200 with no result.
	w = doJSON(t, mux, http.MethodPost, path, created.HostToken,
		submitAssessmentRequest{Reading: &yes, Meaning: &yes, Usage: &yes})
	if w.Code != http.StatusOK {
		t.Fatalf("Repeat submit returned %d", w.Code)
	}
	resp = assessmentResponse{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Result != nil {
		t.Error("Expected no result on repeat submission")
	}

	// Missing marks are rejected.
	w = doJSON(t, mux, http.MethodPost, path, created.HostToken,
		submitAssessmentRequest{Reading: &yes})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Missing marks returned %d, want 400", w.Code)
	}
}

func TestGetSessionEndpoint(t *testing.T) {
	mux := newTestMux(t)
	created := createTestSession(t, mux)

	yes := true
	doJSON(t, mux, http.MethodPost,
		fmt.Sprintf("/api/sessions/%s/assessments", created.Session.Code), created.HostToken,
		submitAssessmentRequest{Reading: &yes, Meaning: &yes, Usage: &yes})

	w := doJSON(t, mux, http.MethodGet, "/api/sessions/"+created.Session.Code, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Get returned %d", w.Code)
	}

	var resp sessionDetailResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Errorf("Results = %d, want 1", len(resp.Results))
	}
	if len(resp.Items) != len(resp.Session.ItemOrder) {
		t.Errorf("Items = %d, want %d", len(resp.Items), len(resp.Session.ItemOrder))
	}
}

func TestEndEndpoint(t *testing.T) {
	mux := newTestMux(t)
	created := createTestSession(t, mux)
	code := created.Session.Code

	w := doJSON(t, mux, http.MethodPost, fmt.Sprintf("/api/sessions/%s/end", code), created.HostToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("End returned %d", w.Code)
	}

	var resp sessionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Session.Active {
		t.Error("Expected session to be inactive")
	}

	// Joining an ended session looks like an unknown code.
	w = doJSON(t, mux, http.MethodPost, "/api/sessions/join", "", map[string]string{"code": code})
	if w.Code != http.StatusNotFound {
		t.Errorf("Join after end returned %d, want 404", w.Code)
	}

	// The snapshot stays readable for recap screens.
	w = doJSON(t, mux, http.MethodGet, "/api/sessions/"+code, "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Get after end returned %d, want 200", w.Code)
	}
}
