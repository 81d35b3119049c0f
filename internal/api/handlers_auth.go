package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmaslov/probank/internal/auth"
)

type loginRequest struct {
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	token, err := s.gate.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadPassword) {
			jsonError(w, "wrong password", http.StatusUnauthorized)
			return
		}
		s.log.Error("login", "error", err)
		jsonError(w, "login failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if token := strings.TrimPrefix(header, "Bearer "); token != header {
		s.gate.Revoke(token)
	}
	w.WriteHeader(http.StatusNoContent)
}
