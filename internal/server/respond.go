package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecopontos/pkg/types"
)

func (s *Service) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Validation
// and not-found failures carry detail; anything persistence-shaped stays
// opaque.
func (s *Service) respondError(w http.ResponseWriter, err error) {
	var vErr *types.ValidationError
	if errors.As(err, &vErr) {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Validation failed.",
			"errors":  vErr.Fields,
		})
		return
	}

	if errors.Is(err, types.ErrPointNotFound) {
		s.respondJSON(w, http.StatusNotFound, map[string]string{"message": "Point not found!"})
		return
	}

	s.logger.WithError(err).Error("request failed")
	s.respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error."})
}
