package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"gameboard/internal/board"
	"gameboard/internal/db"
	"gameboard/internal/participants"
)

type Server struct {
	Board *board.Board
	Tmpl  *template.Template
	DB    *db.DB // nil if no database configured
}

type joinRequest struct {
	Name string `json:"name"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}

// writeBoardError maps domain errors to status codes. Validation and
// not-found outcomes are expected client input, so they are not logged.
func writeBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, participants.ErrNameRequired):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name_required"})
	case errors.Is(err, participants.ErrParticipantNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "participant_not_found"})
	default:
		log.Printf("[Board] Persist failed, in-memory state retained: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "persistence_failed"})
	}
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:Join] Request Received")

	var name string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req joinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		name = req.Name
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		name = r.FormValue("name")
	}

	res, err := s.Board.Join(name)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:Update] Request Received")

	var patch participants.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	res, err := s.Board.Update(r.PathValue("id"), patch)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Board.Read())
}

func (s *Server) handleBoardPage(w http.ResponseWriter, r *http.Request) {
	if err := s.Tmpl.ExecuteTemplate(w, "board", s.Board.Read()); err != nil {
		log.Println(err)
		http.Error(w, "Error rendering scoreboard", http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			status = "db_error"
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status":"%s","error":"%s"}`, status, err.Error())
			return
		}
		// Report mirror staleness; an unwritten mirror is not unhealthy.
		if updatedAt, err := s.DB.BoardUpdatedAt(); err == nil {
			fmt.Fprintf(w, `{"status":"%s","mirrorUpdatedAt":"%s"}`,
				status, updatedAt.Format(time.RFC3339))
			return
		}
	}
	fmt.Fprintf(w, `{"status":"%s"}`, status)
}
