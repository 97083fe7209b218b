// Package model defines the core domain types for the activity signup service.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Activity is a named extracurricular offering. Description, Schedule and
// MaxParticipants are fixed at seed time; only Participants changes.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the number of open places. It goes negative when an
// activity is oversubscribed, since capacity is not enforced on signup.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant reports whether email is on the participant list.
func (a *Activity) HasParticipant(email string) bool {
	return indexOf(a.Participants, email) >= 0
}

// IndexOf returns the position of email in Participants, or -1.
func (a *Activity) IndexOf(email string) int {
	return indexOf(a.Participants, email)
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy that shares no memory with a.
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

// NamedActivity pairs an activity with its roster key.
type NamedActivity struct {
	Name string
	Activity
}

// Snapshot is a point-in-time copy of the roster. Entries keep roster order,
// and it encodes as a JSON object keyed by activity name in that order.
type Snapshot []NamedActivity

// Get returns the activity called name, if present.
func (s Snapshot) Get(name string) (Activity, bool) {
	for _, a := range s {
		if a.Name == name {
			return a.Activity, true
		}
	}
	return Activity{}, false
}

// Names lists activity names in roster order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for _, a := range s {
		names = append(names, a.Name)
	}
	return names
}

// MarshalJSON encodes the snapshot as an object rather than an array so the
// wire format stays name -> activity.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, fmt.Errorf("encode activity name: %w", err)
		}
		act := a.Activity
		if act.Participants == nil {
			act.Participants = []string{}
		}
		val, err := json.Marshal(act)
		if err != nil {
			return nil, fmt.Errorf("encode activity %q: %w", a.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Action names a roster mutation.
type Action string

const (
	ActionSignup     Action = "signup"
	ActionUnregister Action = "unregister"
)

// Confirmation records a successful signup or unregister.
type Confirmation struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Activity  string    `json:"activity"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is the human-readable confirmation returned to clients.
func (c Confirmation) Message() string {
	if c.Action == ActionUnregister {
		return fmt.Sprintf("Unregistered %s from %s", c.Email, c.Activity)
	}
	return fmt.Sprintf("Signed up %s for %s", c.Email, c.Activity)
}

// SignupRequest carries the participant email for signup and unregister.
type SignupRequest struct {
	Email string `json:"email"`
}

// Normalize trims and lower-cases the email in place.
func (r *SignupRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate checks that an email is present and well formed.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
	)
}

// MessageResponse is the success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
