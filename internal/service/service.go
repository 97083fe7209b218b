// Package service implements validation, logging and metrics around the
// activity roster, between the HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/metrics"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/model"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/repository"
)

// ValidationError wraps a rejected request before it reaches the roster.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// ActivityService orchestrates roster operations.
type ActivityService struct {
	roster *repository.Roster
	log    *zap.Logger
}

// NewActivityService constructs an ActivityService and publishes the seeded
// participant counts.
func NewActivityService(roster *repository.Roster, log *zap.Logger) *ActivityService {
	s := &ActivityService{roster: roster, log: log}
	for _, a := range roster.List() {
		metrics.Participants.WithLabelValues(a.Name).Set(float64(len(a.Participants)))
	}
	return s
}

// ListActivities returns a snapshot of every activity.
func (s *ActivityService) ListActivities(ctx context.Context) model.Snapshot {
	return s.roster.List()
}

// SignUp validates the request and adds the participant to the activity.
func (s *ActivityService) SignUp(ctx context.Context, activity string, req model.SignupRequest) (model.Confirmation, error) {
	return s.mutate(ctx, model.ActionSignup, activity, req, s.roster.SignUp)
}

// Unregister validates the request and removes the participant from the activity.
func (s *ActivityService) Unregister(ctx context.Context, activity string, req model.SignupRequest) (model.Confirmation, error) {
	return s.mutate(ctx, model.ActionUnregister, activity, req, s.roster.Unregister)
}

func (s *ActivityService) mutate(
	ctx context.Context,
	action model.Action,
	activity string,
	req model.SignupRequest,
	op func(name, email string) (model.Confirmation, error),
) (model.Confirmation, error) {
	counter := metrics.Signups
	if action == model.ActionUnregister {
		counter = metrics.Unregistrations
	}
	log := s.log.With(
		zap.String("action", string(action)),
		zap.String("activity", activity),
		zap.String("request_id", chimiddleware.GetReqID(ctx)),
	)

	req.Normalize()
	if err := req.Validate(); err != nil {
		counter.WithLabelValues(s.activityLabel(activity), metrics.OutcomeInvalid).Inc()
		log.Debug("rejected invalid request", zap.Error(err))
		return model.Confirmation{}, &ValidationError{Err: err}
	}
	log = log.With(zap.String("email", req.Email))

	conf, err := op(activity, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			counter.WithLabelValues(metrics.UnknownActivity, metrics.OutcomeNotFound).Inc()
		case errors.Is(err, repository.ErrAlreadyRegistered):
			counter.WithLabelValues(activity, metrics.OutcomeAlreadyRegistered).Inc()
		case errors.Is(err, repository.ErrNotRegistered):
			counter.WithLabelValues(activity, metrics.OutcomeNotRegistered).Inc()
		default:
			log.Error("roster operation failed", zap.Error(err))
			return model.Confirmation{}, fmt.Errorf("%s %q: %w", action, activity, err)
		}
		log.Info("roster operation rejected", zap.Error(err))
		return model.Confirmation{}, err
	}

	counter.WithLabelValues(activity, metrics.OutcomeSuccess).Inc()
	if act, err := s.roster.Get(activity); err == nil {
		metrics.Participants.WithLabelValues(activity).Set(float64(len(act.Participants)))
		log = log.With(zap.Int("spots_left", act.SpotsLeft()))
	}
	log.Info("roster updated", zap.String("confirmation_id", conf.ID))
	return conf, nil
}

func (s *ActivityService) activityLabel(name string) string {
	if _, err := s.roster.Get(name); err != nil {
		return metrics.UnknownActivity
	}
	return name
}
