// Package repository holds the in-memory activity roster.
package repository

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/model"
)

// ErrNotFound is returned when an activity name is not on the roster.
var ErrNotFound = errors.New("activity not found")

// ErrAlreadyRegistered is returned when the same email signs up twice.
var ErrAlreadyRegistered = errors.New("email already signed up for this activity")

// ErrNotRegistered is returned when unregistering an email that is not signed up.
var ErrNotRegistered = errors.New("email not signed up for this activity")

// Roster is the process-wide set of activities. Build one with NewRoster and
// share the pointer; the zero value is not usable.
//
// A single RWMutex guards every activity. Signup and unregister are
// check-then-write sequences, so they hold the write lock for the whole
// sequence; List holds the read lock while copying.
type Roster struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	order      []string
	now        func() time.Time
}

// Seed describes one activity present at startup.
type Seed struct {
	Name string
	model.Activity
}

// NewRoster builds a roster from seeds. Names must be unique, capacities
// positive and seeded participant lists free of duplicates.
func NewRoster(seeds []Seed) (*Roster, error) {
	r := &Roster{
		activities: make(map[string]*model.Activity, len(seeds)),
		order:      make([]string, 0, len(seeds)),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, s := range seeds {
		if s.Name == "" {
			return nil, fmt.Errorf("seed activity: empty name")
		}
		if _, dup := r.activities[s.Name]; dup {
			return nil, fmt.Errorf("seed activity %q: duplicate name", s.Name)
		}
		if s.MaxParticipants <= 0 {
			return nil, fmt.Errorf("seed activity %q: max_participants must be positive", s.Name)
		}
		act := s.Activity.Clone()
		seen := make(map[string]struct{}, len(act.Participants))
		for _, email := range act.Participants {
			if _, ok := seen[email]; ok {
				return nil, fmt.Errorf("seed activity %q: duplicate participant %s", s.Name, email)
			}
			seen[email] = struct{}{}
		}
		r.activities[s.Name] = &act
		r.order = append(r.order, s.Name)
	}
	return r, nil
}

// List returns a copy of every activity in seed order. The copy is
// independent of the roster; later mutations do not show through it.
func (r *Roster) List() model.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(model.Snapshot, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, model.NamedActivity{Name: name, Activity: r.activities[name].Clone()})
	}
	return out
}

// Get returns a copy of a single activity or ErrNotFound.
func (r *Roster) Get(name string) (model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	act, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return act.Clone(), nil
}

// SignUp appends email to the activity's participants. Capacity is not
// checked: an activity may end up with more participants than
// MaxParticipants.
func (r *Roster) SignUp(name, email string) (model.Confirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return model.Confirmation{}, ErrNotFound
	}
	if act.HasParticipant(email) {
		return model.Confirmation{}, ErrAlreadyRegistered
	}

	act.Participants = append(act.Participants, email)
	return r.confirm(model.ActionSignup, name, email), nil
}

// Unregister removes email from the activity's participants, keeping the
// relative order of everyone else.
func (r *Roster) Unregister(name, email string) (model.Confirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return model.Confirmation{}, ErrNotFound
	}
	i := act.IndexOf(email)
	if i < 0 {
		return model.Confirmation{}, ErrNotRegistered
	}

	act.Participants = slices.Delete(act.Participants, i, i+1)
	return r.confirm(model.ActionUnregister, name, email), nil
}

func (r *Roster) confirm(action model.Action, name, email string) model.Confirmation {
	return model.Confirmation{
		ID:        uuid.New().String(),
		Action:    action,
		Activity:  name,
		Email:     email,
		CreatedAt: r.now(),
	}
}
