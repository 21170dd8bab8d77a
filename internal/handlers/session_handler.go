package handlers

import (
	"encoding/json"
	"net/http"

	"kelaskata/internal/catalog"
	"kelaskata/internal/models"
	"kelaskata/internal/service"
)

// SessionHandler serves the shared drill session API. Mutating routes
// expect the host token as a bearer credential; requests without it get
// the current snapshot back unchanged.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type createSessionRequest struct {
	Catalog string `json:"catalog"`
	Tier    string `json:"tier"`
}

type sessionResponse struct {
	Session *models.DrillSession `json:"session"`
	Items   []models.VocabItem   `json:"items,omitempty"`
}

type createSessionResponse struct {
	Session   *models.DrillSession `json:"session"`
	Items     []models.VocabItem   `json:"items"`
	HostToken string               `json:"host_token"`
}

type joinSessionRequest struct {
	Code string `json:"code"`
}

type submitAssessmentRequest struct {
	Reading *bool `json:"reading"`
	Meaning *bool `json:"meaning"`
	Usage   *bool `json:"usage"`
}

type assessmentResponse struct {
	Session *models.DrillSession     `json:"session"`
	Result  *models.AssessmentResult `json:"result,omitempty"`
}

type sessionDetailResponse struct {
	Session *models.DrillSession      `json:"session"`
	Items   []models.VocabItem        `json:"items"`
	Results []models.AssessmentResult `json:"results"`
}

// sessionItems resolves the session's item order to full vocabulary items
func sessionItems(session *models.DrillSession) []models.VocabItem {
	cat, ok := catalog.Get(session.Catalog)
	if !ok {
		return nil
	}
	return cat.Resolve(session.ItemOrder)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Create starts a new drill session and hands back the host token
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	session, hostToken, err := h.sessions.CreateSession(req.Catalog, req.Tier)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createSessionResponse{
		Session:   session,
		Items:     sessionItems(session),
		HostToken: hostToken,
	})
}

// Join resolves a join code to an active session snapshot plus the results
// recorded so far
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req joinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	session, results, err := h.sessions.JoinSession(req.Code)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionDetailResponse{
		Session: session,
		Items:   sessionItems(session),
		Results: results,
	})
}

// Get returns the session snapshot with its full assessment ledger
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, results, err := h.sessions.GetSessionResults(r.PathValue("code"))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionDetailResponse{
		Session: session,
		Items:   sessionItems(session),
		Results: results,
	})
}

// Advance moves the session cursor forward one item
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Advance(r.PathValue("code"), hostToken(r))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: session})
}

// Retreat moves the session cursor back one item
func (h *SessionHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Retreat(r.PathValue("code"), hostToken(r))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: session})
}

// End deactivates the session
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.EndSession(r.PathValue("code"), hostToken(r))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: session})
}

// SubmitAssessment records the host's marks for the current item
func (h *SessionHandler) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req submitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	session, result, err := h.sessions.SubmitAssessment(r.PathValue("code"), hostToken(r),
		req.Reading, req.Meaning, req.Usage)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	status := http.StatusOK
	if result != nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, assessmentResponse{Session: session, Result: result})
}
