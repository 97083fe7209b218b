package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/metrics"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/model"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/repository"
)

func newTestService(t *testing.T) *ActivityService {
	t.Helper()
	roster, err := repository.NewRoster(repository.DefaultSeeds())
	require.NoError(t, err)
	return NewActivityService(roster, zaptest.NewLogger(t))
}

func TestSignUp_NormalizesEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	conf, err := svc.SignUp(ctx, "Chess Club", model.SignupRequest{Email: "  Test@Mergington.EDU "})
	require.NoError(t, err)
	assert.Equal(t, "test@mergington.edu", conf.Email)
	assert.Equal(t, "Signed up test@mergington.edu for Chess Club", conf.Message())

	_, err = svc.SignUp(ctx, "Chess Club", model.SignupRequest{Email: "TEST@mergington.edu"})
	require.ErrorIs(t, err, repository.ErrAlreadyRegistered)
}

func TestSignUp_ValidationErrors(t *testing.T) {
	svc := newTestService(t)
	tests := []struct {
		name  string
		email string
	}{
		{"missing", ""},
		{"blank", "   "},
		{"no at sign", "not-an-email"},
		{"no domain", "someone@"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), "Chess Club", model.SignupRequest{Email: tt.email})
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}

	chess, ok := svc.ListActivities(context.Background()).Get("Chess Club")
	require.True(t, ok)
	assert.Len(t, chess.Participants, 2)
}

func TestUnregister_Outcomes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	conf, err := svc.Unregister(ctx, "Chess Club", model.SignupRequest{Email: "michael@mergington.edu"})
	require.NoError(t, err)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", conf.Message())

	_, err = svc.Unregister(ctx, "Chess Club", model.SignupRequest{Email: "michael@mergington.edu"})
	require.ErrorIs(t, err, repository.ErrNotRegistered)

	_, err = svc.Unregister(ctx, "Fake Activity", model.SignupRequest{Email: "michael@mergington.edu"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSignUp_RecordsMetrics(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	success := metrics.Signups.WithLabelValues("Art Club", metrics.OutcomeSuccess)
	dup := metrics.Signups.WithLabelValues("Art Club", metrics.OutcomeAlreadyRegistered)
	missing := metrics.Signups.WithLabelValues(metrics.UnknownActivity, metrics.OutcomeNotFound)
	invalid := metrics.Signups.WithLabelValues(metrics.UnknownActivity, metrics.OutcomeInvalid)
	successBefore := testutil.ToFloat64(success)
	dupBefore := testutil.ToFloat64(dup)
	missingBefore := testutil.ToFloat64(missing)
	invalidBefore := testutil.ToFloat64(invalid)

	_, err := svc.SignUp(ctx, "Art Club", model.SignupRequest{Email: "painter@mergington.edu"})
	require.NoError(t, err)
	_, _ = svc.SignUp(ctx, "Art Club", model.SignupRequest{Email: "painter@mergington.edu"})
	_, _ = svc.SignUp(ctx, "No Such Club", model.SignupRequest{Email: "painter@mergington.edu"})
	_, _ = svc.SignUp(ctx, "No Such Club", model.SignupRequest{Email: ""})

	assert.Equal(t, successBefore+1, testutil.ToFloat64(success))
	assert.Equal(t, dupBefore+1, testutil.ToFloat64(dup))
	assert.Equal(t, missingBefore+1, testutil.ToFloat64(missing))
	assert.Equal(t, invalidBefore+1, testutil.ToFloat64(invalid))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.Participants.WithLabelValues("Art Club")))
}
