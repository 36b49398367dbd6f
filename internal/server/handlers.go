package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

// GenerateResponse is the envelope for /api/generate.
type GenerateResponse struct {
	Status   string                 `json:"status"`
	Data     types.StructuredResult `json:"data,omitempty"`
	Fallback bool                   `json:"fallback,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// handleGenerate dispatches {action, ...params} to the content pipeline.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	action, err := stringField(body, "action")
	if err != nil || action == "" {
		s.errorResponse(w, http.StatusBadRequest, "action is required")
		return
	}

	intent, err := types.IntentForAction(action)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	params := make(map[string]string, len(body))
	for key, raw := range body {
		if key == "action" {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "parameter "+key+" must be a string")
			return
		}
		params[key] = value
	}

	result, err := s.pipeline.Run(r.Context(), types.NewRequest(intent, params))
	if err != nil {
		log.Printf("[server] %s failed: %v", action, err)
		s.errorResponse(w, HTTPStatus(err), publicMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Status:   "success",
		Data:     result.Record,
		Fallback: result.Fallback,
	})
}

// handleHealth reports service status and the recognized actions.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "Chamkili AI Blog Writer",
		"actions": types.Actions(),
	})
}

// errorResponse writes an error envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, GenerateResponse{
		Status: "error",
		Error:  message,
	})
}

func stringField(body map[string]json.RawMessage, key string) (string, error) {
	raw, ok := body[key]
	if !ok {
		return "", nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", err
	}
	return value, nil
}
