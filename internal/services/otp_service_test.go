package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

type fakeMailer struct {
	sendErr error
	sentTo  []string
	codes   []string
}

func (m *fakeMailer) SendVerificationCode(_ context.Context, email, code string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sentTo = append(m.sentTo, email)
	m.codes = append(m.codes, code)
	return nil
}

type fakeRateLimiter struct {
	err   error
	calls []string
}

func (l *fakeRateLimiter) CheckEmailRateLimits(_ context.Context, ip, emailAddress string) error {
	l.calls = append(l.calls, ip+"|"+emailAddress)
	return l.err
}

func newTestOTPService(mailer *fakeMailer) OTPService {
	store := repositories.NewMemoryVerificationCodeStore(6, time.Minute)
	return NewOTPService(store, mailer, &fakeRateLimiter{})
}

func TestRequestCodeDispatchesToMailer(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestOTPService(mailer)

	err := svc.RequestCode(context.Background(), "a@x.com", "10.0.0.1")
	require.NoError(t, err)
	require.Len(t, mailer.sentTo, 1)
	assert.Equal(t, "a@x.com", mailer.sentTo[0])
	assert.Len(t, mailer.codes[0], 6)
}

func TestRequestCodeRejectsBadEmail(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestOTPService(mailer)

	err := svc.RequestCode(context.Background(), "not-an-email", "10.0.0.1")
	require.Error(t, err)
	assert.Empty(t, mailer.sentTo)
}

func TestRequestCodeRateLimited(t *testing.T) {
	mailer := &fakeMailer{}
	store := repositories.NewMemoryVerificationCodeStore(6, time.Minute)
	limiter := &fakeRateLimiter{err: utils.ErrRateLimitExceeded}
	svc := NewOTPService(store, mailer, limiter)

	err := svc.RequestCode(context.Background(), "a@x.com", "10.0.0.1")
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusTooManyRequests, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeRateLimitExceeded, appErr.Code)

	// A throttled request must not issue a code or touch the mailer.
	assert.Empty(t, mailer.sentTo)
	for _, guess := range []string{"000000", "123456", "999999"} {
		res := store.Peek("a@x.com", guess)
		assert.False(t, res.OK)
		assert.Equal(t, repositories.ReasonNotFound, res.Reason)
	}
}

func TestRequestCodeDispatchFailureLeavesNoUsableCode(t *testing.T) {
	mailer := &fakeMailer{sendErr: errors.New("smtp down")}
	store := repositories.NewMemoryVerificationCodeStore(6, time.Minute)
	svc := NewOTPService(store, mailer, &fakeRateLimiter{})

	err := svc.RequestCode(context.Background(), "a@x.com", "10.0.0.1")
	require.Error(t, err)

	// No code the caller could guess should remain behind.
	for _, guess := range []string{"000000", "123456", "999999"} {
		res := store.Peek("a@x.com", guess)
		assert.False(t, res.OK)
		assert.Equal(t, repositories.ReasonNotFound, res.Reason)
	}
}

func TestVerifyFlowEndToEnd(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestOTPService(mailer)
	ctx := context.Background()

	require.NoError(t, svc.RequestCode(ctx, "a@x.com", "10.0.0.1"))
	code := mailer.codes[0]

	// Non-consuming pre-check succeeds and leaves the code live.
	res := svc.Verify(ctx, "a@x.com", code, false)
	require.True(t, res.OK)

	// Consuming check succeeds once.
	res = svc.Verify(ctx, "a@x.com", code, true)
	require.True(t, res.OK)

	// The same code is gone afterwards.
	res = svc.Verify(ctx, "a@x.com", code, true)
	require.False(t, res.OK)
	assert.Equal(t, repositories.ReasonNotFound, res.Reason)
}
