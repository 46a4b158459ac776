package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// Readiness records, per category, whether the application satisfies the
// submission preconditions. Submission requires every category; there is
// no partial credit.
type Readiness struct {
	Profile        bool
	Picture        bool
	Qualifications bool
	Experiences    bool
	Documents      bool
}

// Complete reports whether every category is satisfied.
func (r Readiness) Complete() bool {
	return r.Profile && r.Picture && r.Qualifications && r.Experiences && r.Documents
}

// Missing lists the unsatisfied categories so the caller can tell the
// applicant exactly what still blocks submission.
func (r Readiness) Missing() []string {
	var missing []string
	if !r.Profile {
		missing = append(missing, "profile")
	}
	if !r.Picture {
		missing = append(missing, "picture")
	}
	if !r.Qualifications {
		missing = append(missing, "qualifications")
	}
	if !r.Experiences {
		missing = append(missing, "experiences")
	}
	if !r.Documents {
		missing = append(missing, "documents")
	}
	return missing
}

// EvaluateReadiness inspects a consistent snapshot of the aggregate:
// the applicant row plus its child-record counts.
func EvaluateReadiness(a *models.Applicant, qualCount, expCount int) Readiness {
	return Readiness{
		Profile: a.FullName != "" && a.CNIC != "" && a.Email != "" &&
			a.Username != "" && a.PostID != nil,
		Picture:        a.URLProfilePic != nil && *a.URLProfilePic != "",
		Qualifications: qualCount > 0,
		Experiences:    expCount > 0,
		Documents: isSet(a.URLCv) && isSet(a.URLAcademicCerts) &&
			isSet(a.URLExperienceCerts) && isSet(a.URLCnic),
	}
}

func isSet(s *string) bool {
	return s != nil && *s != ""
}

// ---------------------------------------------------------------------
// SubmissionService interface
// ---------------------------------------------------------------------
type SubmissionService interface {
	// Submit runs the one-way DRAFT -> SUBMITTED transition. The
	// readiness check and the status write happen inside a single
	// per-applicant critical section.
	Submit(ctx context.Context, applicantID uuid.UUID) error
}

type submissionService struct {
	applicantRepo repositories.ApplicantRepository
}

func NewSubmissionService(applicantRepo repositories.ApplicantRepository) SubmissionService {
	return &submissionService{applicantRepo: applicantRepo}
}

func (s *submissionService) Submit(ctx context.Context, applicantID uuid.UUID) error {
	err := s.applicantRepo.Submit(ctx, applicantID,
		func(a *models.Applicant, qualCount, expCount int) error {
			if a.Locked() {
				return utils.ErrAlreadySubmitted
			}
			readiness := EvaluateReadiness(a, qualCount, expCount)
			if !readiness.Complete() {
				return &utils.AppError{
					StatusCode: http.StatusBadRequest,
					Code:       utils.ErrCodeIncompleteApplication,
					Message:    "Missing required data before submission",
					Details:    readiness.Missing(),
					Err:        utils.ErrIncompleteApplication,
				}
			}
			return nil
		})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			"Applicant not found", err)
	case errors.Is(err, utils.ErrAlreadySubmitted):
		return utils.NewAppError(http.StatusConflict, utils.ErrCodeAlreadySubmitted,
			"Application already submitted", err)
	default:
		return err
	}
}
