package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ---------------------------------------------------------------------
// QualificationService interface
// ---------------------------------------------------------------------
type QualificationService interface {
	List(ctx context.Context, applicantID uuid.UUID) ([]models.Qualification, error)
	Create(ctx context.Context, applicantID uuid.UUID, req dtos.CreateQualificationRequest) (*models.Qualification, error)
	Update(ctx context.Context, id, applicantID uuid.UUID, req dtos.UpdateQualificationRequest) (*models.Qualification, error)
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
}

type qualificationService struct {
	qualRepo repositories.QualificationRepository
}

func NewQualificationService(qualRepo repositories.QualificationRepository) QualificationService {
	return &qualificationService{qualRepo: qualRepo}
}

func (s *qualificationService) List(ctx context.Context, applicantID uuid.UUID) ([]models.Qualification, error) {
	return s.qualRepo.ListByApplicant(ctx, applicantID)
}

// otherText keeps the free-text companion only when the enum value is OTHER.
func otherText(value string, other *string) *string {
	if value != "OTHER" {
		return nil
	}
	if other == nil {
		empty := ""
		return &empty
	}
	return other
}

func (s *qualificationService) Create(
	ctx context.Context,
	applicantID uuid.UUID,
	req dtos.CreateQualificationRequest,
) (*models.Qualification, error) {
	q := &models.Qualification{
		ID:                      uuid.New(),
		ApplicantID:             applicantID,
		DegreeType:              req.DegreeType,
		DegreeTypeOther:         otherText(req.DegreeType, req.DegreeTypeOther),
		FieldOfStudy:            req.FieldOfStudy,
		FieldOfStudyOther:       otherText(req.FieldOfStudy, req.FieldOfStudyOther),
		InstitutionName:         req.InstitutionName,
		InstitutionCountry:      req.InstitutionCountry,
		InstitutionCountryOther: otherText(req.InstitutionCountry, req.InstitutionCountryOther),
		GraduationYear:          req.GraduationYear,
		Grade:                   req.Grade,
		DurationMonths:          *req.DurationMonths,
		IsForeign:               *req.IsForeign,
		Notes:                   req.Notes,
	}

	if err := s.qualRepo.CreateLocked(ctx, q); err != nil {
		return nil, mutationError(err, "Qualification")
	}
	return q, nil
}

func (s *qualificationService) Update(
	ctx context.Context,
	id, applicantID uuid.UUID,
	req dtos.UpdateQualificationRequest,
) (*models.Qualification, error) {
	updated, err := s.qualRepo.UpdateLocked(ctx, id, applicantID, func(q *models.Qualification) error {
		if req.DegreeType != nil {
			q.DegreeType = *req.DegreeType
		}
		q.DegreeTypeOther = otherText(q.DegreeType, coalesce(req.DegreeTypeOther, q.DegreeTypeOther))
		if req.FieldOfStudy != nil {
			q.FieldOfStudy = *req.FieldOfStudy
		}
		q.FieldOfStudyOther = otherText(q.FieldOfStudy, coalesce(req.FieldOfStudyOther, q.FieldOfStudyOther))
		if req.InstitutionName != nil {
			q.InstitutionName = *req.InstitutionName
		}
		if req.InstitutionCountry != nil {
			q.InstitutionCountry = *req.InstitutionCountry
		}
		q.InstitutionCountryOther = otherText(q.InstitutionCountry, coalesce(req.InstitutionCountryOther, q.InstitutionCountryOther))
		if req.GraduationYear != nil {
			q.GraduationYear = *req.GraduationYear
		}
		if req.Grade != nil {
			q.Grade = *req.Grade
		}
		if req.DurationMonths != nil {
			q.DurationMonths = *req.DurationMonths
		}
		if req.IsForeign != nil {
			q.IsForeign = *req.IsForeign
		}
		if req.Notes != nil {
			q.Notes = req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, mutationError(err, "Qualification")
	}
	return updated, nil
}

func (s *qualificationService) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	if err := s.qualRepo.DeleteLocked(ctx, id, applicantID); err != nil {
		return mutationError(err, "Qualification")
	}
	return nil
}

func coalesce(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}

// mutationError maps guarded-mutation failures onto the error taxonomy.
func mutationError(err error, entity string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			entity+" not found", err)
	case errors.Is(err, utils.ErrAlreadySubmitted):
		return utils.NewAppError(http.StatusConflict, utils.ErrCodeAlreadySubmitted,
			"Application already submitted, edits not allowed", err)
	default:
		return err
	}
}
