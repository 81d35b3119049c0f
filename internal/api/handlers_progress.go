package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSetSolved(value bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "problemID")
		if _, ok := s.byID[id]; !ok {
			jsonError(w, "problem not found", http.StatusNotFound)
			return
		}
		if err := s.progress.SetSolved(id, value); err != nil {
			s.log.Error("persist progress", "error", err)
			jsonError(w, "failed to save progress", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": id, "solved": value})
	}
}

func (s *Server) handleSetBookmarked(value bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "problemID")
		if _, ok := s.byID[id]; !ok {
			jsonError(w, "problem not found", http.StatusNotFound)
			return
		}
		if err := s.progress.SetBookmarked(id, value); err != nil {
			s.log.Error("persist progress", "error", err)
			jsonError(w, "failed to save progress", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": id, "bookmarked": value})
	}
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	sum := s.progress.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"total":    len(s.bank),
		"progress": sum,
	})
}
