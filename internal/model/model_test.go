package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_MarshalJSON_KeepsOrder(t *testing.T) {
	snap := Snapshot{
		{Name: "Zeta", Activity: Activity{Description: "z", Schedule: "Mon", MaxParticipants: 2, Participants: []string{"a@x.edu"}}},
		{Name: "Alpha", Activity: Activity{Description: "a", Schedule: "Tue", MaxParticipants: 3}},
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Zeta": {"description": "z", "schedule": "Mon", "max_participants": 2, "participants": ["a@x.edu"]},
		"Alpha": {"description": "a", "schedule": "Tue", "max_participants": 3, "participants": []}
	}`, string(data))
	assert.Less(t, strings.Index(string(data), `"Zeta"`), strings.Index(string(data), `"Alpha"`))
}

func TestSnapshot_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestConfirmation_Message(t *testing.T) {
	signup := Confirmation{Action: ActionSignup, Activity: "Chess Club", Email: "a@x.edu"}
	assert.Equal(t, "Signed up a@x.edu for Chess Club", signup.Message())

	leave := Confirmation{Action: ActionUnregister, Activity: "Chess Club", Email: "a@x.edu"}
	assert.Equal(t, "Unregistered a@x.edu from Chess Club", leave.Message())
}

func TestActivity_Clone(t *testing.T) {
	orig := Activity{MaxParticipants: 5, Participants: []string{"a@x.edu"}}
	c := orig.Clone()
	c.Participants[0] = "b@x.edu"

	assert.Equal(t, "a@x.edu", orig.Participants[0])
	assert.Equal(t, 4, orig.SpotsLeft())
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"student@mergington.edu", true},
		{" Student@Mergington.edu ", true},
		{"", false},
		{"student", false},
		{"student@", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			req := SignupRequest{Email: tt.email}
			req.Normalize()
			err := req.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
