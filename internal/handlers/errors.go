package handlers

import (
	"errors"
	"log"
	"net/http"

	"kelaskata/internal/models"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}

// respondWithDomainError maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response body.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
	case errors.Is(err, models.ErrInvalidCode),
		errors.Is(err, models.ErrUnknownCatalog),
		errors.Is(err, models.ErrInvalidTier),
		errors.Is(err, models.ErrMissingMarks):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Unhandled error", err)
	}
}
