package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/tools"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/version"
)

// APIError is the JSON form of a failed tool run.
type APIError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Tool    string `json:"tool,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

type errorBody struct {
	Error *APIError `json:"error"`
}

// toAPIError converts err and picks the HTTP status that goes with it.
func toAPIError(err error) (*APIError, int) {
	var te *errors.ToolError
	if !errors.As(err, &te) {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return &APIError{Type: "canceled", Code: "ERR_CANCELED", Message: err.Error()}, http.StatusServiceUnavailable
		}
		return &APIError{Type: string(errors.ErrorTypeInternal), Code: errors.ErrCodeInternalError, Message: err.Error()},
			http.StatusInternalServerError
	}

	msg := te.Message
	if te.Cause != nil && te.Type != errors.ErrorTypeInternal {
		msg += ": " + te.Cause.Error()
	}
	apiErr := &APIError{
		Type:    string(te.Type),
		Code:    te.Code,
		Message: msg,
		Tool:    te.Tool,
		Line:    te.Line,
		Column:  te.Column,
	}

	switch {
	case te.Code == errors.ErrCodeToolNotFound:
		return apiErr, http.StatusNotFound
	case te.Code == errors.ErrCodeInputTooLarge:
		return apiErr, http.StatusRequestEntityTooLarge
	case te.Type == errors.ErrorTypeInvalidInput, te.Type == errors.ErrorTypeEncoding:
		return apiErr, http.StatusUnprocessableEntity
	default:
		return apiErr, http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, status := toAPIError(err)
	s.writeJSON(w, r, status, errorBody{Error: apiErr})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   version.Get().Short(),
		"tools":     len(s.registry.Names()),
	})
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.registry.List())
}

func (s *Server) handleGetTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tool, ok := s.registry.Get(name)
	if !ok {
		s.writeError(w, r, errors.NewInvalidInput(errors.ErrCodeToolNotFound, "unknown tool: "+name).WithTool(name))
		return
	}
	s.writeJSON(w, r, http.StatusOK, tool)
}

func (s *Server) handleRunTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	var req tools.Request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeError(w, r, errors.NewInvalidInput(errors.ErrCodeInputTooLarge, "request body is too large").
				WithContext("limit", s.maxBodyBytes))
			return
		}
		s.writeJSON(w, r, http.StatusBadRequest, errorBody{Error: &APIError{
			Type:    string(errors.ErrorTypeInvalidInput),
			Code:    errors.ErrCodeInvalidJSON,
			Message: "request body is not a valid tool request: " + err.Error(),
		}})
		return
	}

	resp, err := s.registry.Run(r.Context(), name, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

// cors answers preflight requests and echoes allowed origins. An origin is
// allowed when its host matches one of the configured patterns.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.isAllowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) isAllowedOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	for _, pattern := range s.config.AllowedOrigins {
		if ok, _ := path.Match(pattern, u.Host); ok {
			return true
		}
	}
	return false
}
