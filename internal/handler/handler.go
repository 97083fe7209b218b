// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/model"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/repository"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/service"
)

// ConfirmationHeader carries the id of a successful signup or unregister.
const ConfirmationHeader = "X-Confirmation-ID"

// ActivityHandler holds all HTTP handlers for the activities API.
type ActivityHandler struct {
	svc *service.ActivityService
	log *zap.Logger
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: log}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// activityName returns the decoded {name} path parameter. chi matches on the
// raw path when the URL carries escapes that do not round-trip, in which
// case the parameter is still percent-encoded.
func activityName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}

func signupRequest(r *http.Request) model.SignupRequest {
	req := model.SignupRequest{Email: r.URL.Query().Get("email")}
	req.Normalize()
	return req
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// RootRedirect handles GET /
// Sends the browser to the static front-end.
func RootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// ListActivities handles GET /activities
// Returns a JSON object mapping activity name to its details.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListActivities(r.Context()))
}

// Signup handles POST /activities/{name}/signup?email=
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name, err := activityName(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity name")
		return
	}

	req := signupRequest(r)
	conf, err := h.svc.SignUp(r.Context(), name, req)
	if err != nil {
		h.writeRosterError(w, name, req.Email, err)
		return
	}

	w.Header().Set(ConfirmationHeader, conf.ID)
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: conf.Message()})
}

// Unregister handles DELETE /activities/{name}/unregister?email=
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name, err := activityName(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity name")
		return
	}

	req := signupRequest(r)
	conf, err := h.svc.Unregister(r.Context(), name, req)
	if err != nil {
		h.writeRosterError(w, name, req.Email, err)
		return
	}

	w.Header().Set(ConfirmationHeader, conf.ID)
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: conf.Message()})
}

func (h *ActivityHandler) writeRosterError(w http.ResponseWriter, name, email string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusUnprocessableEntity, verr.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, repository.ErrAlreadyRegistered):
		writeError(w, http.StatusBadRequest, email+" is already signed up for "+name)
	case errors.Is(err, repository.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, email+" is not signed up for "+name)
	default:
		h.log.Error("unhandled roster error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
