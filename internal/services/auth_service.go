package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ---------------------------------------------------------------------
// AuthService interface
// ---------------------------------------------------------------------
type AuthService interface {
	// Signup consumes the email verification code, enforces identity
	// uniqueness, creates the applicant in DRAFT and returns it with a
	// signed access token.
	Signup(ctx context.Context, req dtos.SignupRequest) (*models.Applicant, string, error)

	// Login checks credentials and returns the applicant with a signed
	// access token. Wrong username and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (*models.Applicant, string, error)
}

type authService struct {
	applicantRepo repositories.ApplicantRepository
	otpService    OTPService
	jwtService    JWTService
}

func NewAuthService(
	applicantRepo repositories.ApplicantRepository,
	otpService OTPService,
	jwtService JWTService,
) AuthService {
	return &authService{
		applicantRepo: applicantRepo,
		otpService:    otpService,
		jwtService:    jwtService,
	}
}

func (s *authService) Signup(ctx context.Context, req dtos.SignupRequest) (*models.Applicant, string, error) {
	res := s.otpService.Verify(ctx, req.Email, req.Code, true)
	if !res.OK {
		return nil, "", VerificationError(res)
	}

	existing, err := s.applicantRepo.FindByIdentity(ctx, req.Email, req.Username, req.CNIC)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", utils.NewAppError(http.StatusConflict, utils.ErrCodeConflict,
			"An account already exists with the provided email, username or CNIC", utils.ErrIdentityExists)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	a := &models.Applicant{
		ID:               uuid.New(),
		FullName:         req.FullName,
		CNIC:             req.CNIC,
		Email:            req.Email,
		Username:         req.Username,
		Password:         hashed,
		PostID:           &req.PostID,
		SubmissionStatus: models.SubmissionStatusDraft,
	}
	if err := s.applicantRepo.Create(ctx, a); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateAccessToken(TokenClaims{
		ApplicantID: a.ID,
		Email:       a.Email,
		Username:    a.Username,
	})
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.Applicant, string, error) {
	a, err := s.applicantRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if a == nil || !utils.CheckPasswordHash(password, a.Password) {
		return nil, "", utils.NewAppError(http.StatusUnauthorized, utils.ErrCodeInvalidCredentials,
			"Invalid credentials", utils.ErrInvalidCredentials)
	}

	token, err := s.jwtService.GenerateAccessToken(TokenClaims{
		ApplicantID: a.ID,
		Email:       a.Email,
		Username:    a.Username,
	})
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// VerificationError maps a failed code check onto the response error codes.
func VerificationError(res repositories.VerificationResult) *utils.AppError {
	switch res.Reason {
	case repositories.ReasonExpired:
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeCodeExpired,
			"Verification code has expired", nil)
	case repositories.ReasonMismatch:
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeCodeMismatch,
			"Verification code does not match", nil)
	default:
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeCodeNotFound,
			"No verification code found for this email", nil)
	}
}
