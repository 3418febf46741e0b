// Package geminitest provides an in-process fake of the Gemini REST API for
// tests.
package geminitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
)

const generateSuffix = ":generateContent"

// Request records one call made against the fake.
type Request struct {
	Method string
	// Model is the bare model identifier, without the "models/" prefix.
	Model  string
	APIKey string
	Prompt string
}

// Failure is a canned API error.
type Failure struct {
	Code    int
	Status  string
	Message string
}

// Server is a fake Gemini API endpoint. Configure the exported fields before
// issuing requests.
type Server struct {
	*httptest.Server

	// Available lists models that models.get will return. Others get 404.
	Available map[string]bool
	// GetFailures forces models.get to fail for the named model.
	GetFailures map[string]Failure
	// Reply is returned as the text of every successful generation.
	Reply string
	// GenerateFailure, if set, makes every generation fail.
	GenerateFailure *Failure
	// BlockReason, if set, returns no candidates and this prompt block reason.
	BlockReason string

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a fake that knows about the given models.
func NewServer(models ...string) *Server {
	s := &Server{
		Available:   make(map[string]bool),
		GetFailures: make(map[string]Failure),
	}
	for _, m := range models {
		s.Available[m] = true
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(r Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r)
	s.mu.Unlock()
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.URL.Path)
	req := Request{Method: r.Method, APIKey: r.Header.Get("x-goog-api-key")}

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(name, generateSuffix):
		req.Model = strings.TrimSuffix(name, generateSuffix)
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, Failure{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT", Message: err.Error()})
			return
		}
		var texts []string
		for _, c := range body.Contents {
			for _, p := range c.Parts {
				texts = append(texts, p.Text)
			}
		}
		req.Prompt = strings.Join(texts, "")
		s.record(req)
		s.generate(w)

	case r.Method == http.MethodGet:
		req.Model = name
		s.record(req)
		s.get(w, name)

	default:
		writeFailure(w, Failure{Code: http.StatusNotFound, Status: "NOT_FOUND", Message: "unknown route " + r.URL.Path})
	}
}

func (s *Server) get(w http.ResponseWriter, model string) {
	if f, ok := s.GetFailures[model]; ok {
		writeFailure(w, f)
		return
	}
	if !s.Available[model] {
		writeFailure(w, Failure{
			Code:    http.StatusNotFound,
			Status:  "NOT_FOUND",
			Message: fmt.Sprintf("models/%s is not found for API version v1beta", model),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "models/" + model,
		"displayName": model,
	})
}

func (s *Server) generate(w http.ResponseWriter) {
	if s.GenerateFailure != nil {
		writeFailure(w, *s.GenerateFailure)
		return
	}
	if s.BlockReason != "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"promptFeedback": map[string]any{"blockReason": s.BlockReason},
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": s.Reply}},
				},
				"finishReason": "STOP",
			},
		},
	})
}

func writeFailure(w http.ResponseWriter, f Failure) {
	writeJSON(w, f.Code, map[string]any{
		"error": map[string]any{
			"code":    f.Code,
			"status":  f.Status,
			"message": f.Message,
		},
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
