package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wealthdesk/advisor-agent/internal/agent"
	"github.com/wealthdesk/advisor-agent/pkg/log"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "It seems you didn't type anything. Please enter your message.")
		return
	}

	result, err := s.advisor.Chat(r.Context(), agent.Request{
		SessionID:   req.SessionID,
		UserMessage: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, "It seems you didn't type anything. Please enter your message.")
		case errors.Is(err, agent.ErrMaxIterations):
			// Budget exhaustion gets its own error kind so callers can tell
			// it apart from upstream failures.
			writeJSON(w, http.StatusBadGateway, map[string]any{
				"error": "The assistant could not reach an answer within the allowed number of steps.",
				"kind":  "max_iterations",
			})
		default:
			log.Error("httpapi: chat failed: %v", err)
			writeError(w, http.StatusBadGateway, "The assistant is unavailable right now. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:  result.Content,
		SessionID: result.SessionID,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session_id")
		return
	}

	if !s.advisor.Reset(req.SessionID) {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Conversation reset successfully"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": msg,
	})
}
