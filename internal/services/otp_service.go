package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ---------------------------------------------------------------------
// OTPService interface
// ---------------------------------------------------------------------
type OTPService interface {
	// RequestCode issues a fresh code for the email and dispatches it.
	// A dispatch failure evicts the freshly issued code and returns a
	// retryable error: no usable-but-undelivered code is left behind.
	RequestCode(ctx context.Context, email, clientIP string) error

	// Verify checks email/code. With consuming=false it is a
	// non-destructive pre-check; with consuming=true a success removes
	// the code (single use).
	Verify(ctx context.Context, email, code string, consuming bool) repositories.VerificationResult
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------
type otpService struct {
	store       repositories.VerificationCodeStore
	mailer      Mailer
	rateLimiter RateLimiterService
}

func NewOTPService(store repositories.VerificationCodeStore, mailer Mailer, rateLimiter RateLimiterService) OTPService {
	return &otpService{store: store, mailer: mailer, rateLimiter: rateLimiter}
}

func (s *otpService) RequestCode(ctx context.Context, email, clientIP string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation,
			"A valid email address is required", utils.ErrInvalidEmail)
	}

	if err := s.rateLimiter.CheckEmailRateLimits(ctx, clientIP, email); err != nil {
		if errors.Is(err, utils.ErrRateLimitExceeded) {
			return utils.NewAppError(http.StatusTooManyRequests, utils.ErrCodeRateLimitExceeded,
				"Too many requests. Please try again later.", err)
		}
		return utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal,
			"Unable to process the request right now", err)
	}

	code := s.store.Issue(email)

	if err := s.mailer.SendVerificationCode(ctx, email, code); err != nil {
		// Undeliverable codes must not stay verifiable. The eviction is
		// keyed on the code too, so a newer code issued concurrently for
		// the same email survives.
		s.store.EvictIfCode(email, code)
		return utils.NewAppError(http.StatusBadGateway, utils.ErrCodeExternalServiceFailure,
			"Unable to send verification code, please try again", err)
	}
	return nil
}

func (s *otpService) Verify(_ context.Context, email, code string, consuming bool) repositories.VerificationResult {
	if consuming {
		return s.store.Consume(email, code)
	}
	return s.store.Peek(email, code)
}
