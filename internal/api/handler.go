// Package api serves the footprint pipeline and the results email over HTTP.
package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"footprint-workers/internal/common/errors"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/models"
	"footprint-workers/internal/notify"

	"github.com/gorilla/mux"
)

const (
	MailSentMessage      = "Mail sent successfully"
	InternalErrorMessage = "some error happened"
)

// Runner runs the footprint pipeline for one user.
type Runner interface {
	Run(ctx context.Context, userID string, raw *models.RawUserInput) *models.ResultEnvelope
}

// Sender delivers a results summary.
type Sender interface {
	SendResults(ctx context.Context, req *models.ResultsEmailRequest) (*notify.Result, error)
}

// ReadinessFunc reports whether downstream dependencies are reachable.
type ReadinessFunc func(ctx context.Context) error

// Handler provides HTTP API endpoints
type Handler struct {
	runner Runner
	sender Sender
	ready  ReadinessFunc
	logger logger.Logger
}

// NewHandler creates a new API handler. sender and ready may be nil.
func NewHandler(runner Runner, sender Sender, ready ReadinessFunc, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Handler{
		runner: runner,
		sender: sender,
		ready:  ready,
		logger: log.With(map[string]interface{}{"component": "api"}),
	}
}

// RegisterRoutes sets up all API routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.handleReady).Methods(http.MethodGet)

	r.HandleFunc("/calculate", h.handleCalculate).Methods(http.MethodPost)
	r.HandleFunc("/mail", h.handleMail).Methods(http.MethodPost)
	r.HandleFunc("/calculate", handlePreflight).Methods(http.MethodOptions)
	r.HandleFunc("/mail", handlePreflight).Methods(http.MethodOptions)
}

type calculateRequest struct {
	UserID    string               `json:"userId"`
	UserInput *models.RawUserInput `json:"userInput"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondMessage sends a {"message": ...} body
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode calculate request", map[string]interface{}{"error": err.Error()})
		respondMessage(w, http.StatusInternalServerError, InternalErrorMessage)
		return
	}

	if strings.TrimSpace(req.UserID) == "" || req.UserInput == nil {
		appErr := errors.NewInvalidRequestError("userId and userInput are required")
		respondMessage(w, http.StatusBadRequest, appErr.Message)
		return
	}

	envelope := h.runner.Run(r.Context(), req.UserID, req.UserInput)
	respondJSON(w, http.StatusOK, envelope)
}

func (h *Handler) handleMail(w http.ResponseWriter, r *http.Request) {
	if h.sender == nil {
		respondMessage(w, http.StatusInternalServerError, InternalErrorMessage)
		return
	}

	var req models.ResultsEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode mail request", map[string]interface{}{"error": err.Error()})
		respondMessage(w, http.StatusInternalServerError, InternalErrorMessage)
		return
	}

	if _, err := h.sender.SendResults(r.Context(), &req); err != nil {
		var stdErr *errors.StandardError
		if stderrors.As(err, &stdErr) && stdErr.Code == errors.ErrCodeEmailValidationFailed {
			respondMessage(w, http.StatusBadRequest, stdErr.Message)
			return
		}
		h.logger.Error("Failed to send results email", map[string]interface{}{"error": err.Error()})
		respondMessage(w, http.StatusInternalServerError, InternalErrorMessage)
		return
	}

	respondMessage(w, http.StatusOK, MailSentMessage)
}
