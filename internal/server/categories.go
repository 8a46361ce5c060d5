package server

import "net/http"

func (s *Service) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.registry.ListCategories(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, categories)
}
