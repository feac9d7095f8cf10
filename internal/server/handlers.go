package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// apologyMessage is the user-facing text for any downstream failure. The
// matching core never fails; only the LLM collaborator can, and its errors
// must not leak to the chat user.
const apologyMessage = "I'm sorry, I encountered an error while processing your request. Please try again."

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response  string `json:"response"`
	RequestID string `json:"request_id"`
	Cached    bool   `json:"cached,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	result, err := s.assistant.Answer(r.Context(), req.Message)
	if err != nil {
		log.Printf("chat %s: answer failed: %v", requestID, err)
		writeJSON(w, http.StatusOK, ChatResponse{
			Response:  apologyMessage,
			RequestID: requestID,
		})
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Response:  result.Response,
		RequestID: requestID,
		Cached:    result.FromCache,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
