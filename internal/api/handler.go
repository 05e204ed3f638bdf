package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/imfiit/fitcoach/internal/coach"
	"github.com/imfiit/fitcoach/internal/intent"
	"github.com/imfiit/fitcoach/internal/profile"
	"github.com/imfiit/fitcoach/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Options configures the REST handler.
type Options struct {
	Token       string   // bearer token; empty disables auth
	CORSOrigins []string // allowed origins; empty disables CORS
}

// NewHandler returns an http.Handler exposing the coach over REST.
// /health is always open; everything else sits behind bearer auth when
// a token is configured.
func NewHandler(c *coach.Coach, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth(c))

	r.Group(func(r chi.Router) {
		if opts.Token != "" {
			r.Use(BearerAuth(opts.Token))
		}
		r.Post("/profile", handleCreateProfile(c))
		r.Post("/chat", handleChat(c))
		r.Get("/assessment/{userID}", handleAssessment(c))
		r.Get("/history/{userID}", handleHistory(c))
		r.Post("/train", handleTrain(c))
	})

	if len(opts.CORSOrigins) > 0 {
		return cors.New(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}).Handler(r)
	}
	return r
}

func handleHealth(c *coach.Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":             "ok",
			"classifier_trained": c.ClassifierTrained(),
		})
	}
}

func handleCreateProfile(c *coach.Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var in profile.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		res, err := c.CreateProfile(in)
		if err != nil {
			writeCoachError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, res)
	}
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

func handleChat(c *coach.Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.UserID == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "user_id is required")
			return
		}
		if req.Message == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "message is required")
			return
		}

		res, err := c.ProcessMessage(req.UserID, req.Message)
		if err != nil {
			writeCoachError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func handleAssessment(c *coach.Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		rep, err := c.GetAssessment(userID)
		if err != nil {
			writeCoachError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}

func handleHistory(c *coach.Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "limit must be a non-negative integer")
				return
			}
			limit = n
		}

		msgs, err := c.History(userID, limit)
		if err != nil {
			writeCoachError(w, err)
			return
		}
		if msgs == nil {
			msgs = []storage.Message{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"user_id":  userID,
			"messages": msgs,
			"count":    len(msgs),
		})
	}
}

type trainRequest struct {
	Samples []intent.Sample `json:"samples"`
}

func handleTrain(c *coach.Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req trainRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
				return
			}
		}

		samples := req.Samples
		if len(samples) == 0 {
			samples = intent.DefaultCorpus()
		}

		if err := c.Train(samples); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "training failed: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"trained": true,
			"samples": len(samples),
		})
	}
}

// writeCoachError maps domain errors onto HTTP statuses: validation
// failures are 400, missing profiles are 404, everything else is 500.
func writeCoachError(w http.ResponseWriter, err error) {
	var verr *profile.ValidationError
	switch {
	case errors.As(err, &verr):
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%s", verr.Error())
	case errors.Is(err, storage.ErrNotFound):
		httpError(w, http.StatusNotFound, "not_found_error", "no profile for this user")
	default:
		slog.Error("request failed", "error", err)
		httpError(w, http.StatusInternalServerError, "api_error", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
