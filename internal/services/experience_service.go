package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ---------------------------------------------------------------------
// ExperienceService interface
// ---------------------------------------------------------------------
type ExperienceService interface {
	List(ctx context.Context, applicantID uuid.UUID) ([]models.Experience, error)
	Create(ctx context.Context, applicantID uuid.UUID, req dtos.CreateExperienceRequest) (*models.Experience, error)
	Update(ctx context.Context, id, applicantID uuid.UUID, req dtos.UpdateExperienceRequest) (*models.Experience, error)
	Delete(ctx context.Context, id, applicantID uuid.UUID) error
}

type experienceService struct {
	expRepo repositories.ExperienceRepository
}

func NewExperienceService(expRepo repositories.ExperienceRepository) ExperienceService {
	return &experienceService{expRepo: expRepo}
}

func (s *experienceService) List(ctx context.Context, applicantID uuid.UUID) ([]models.Experience, error) {
	return s.expRepo.ListByApplicant(ctx, applicantID)
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation,
			"Invalid date, expected YYYY-MM-DD", err)
	}
	return d, nil
}

func (s *experienceService) Create(
	ctx context.Context,
	applicantID uuid.UUID,
	req dtos.CreateExperienceRequest,
) (*models.Experience, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	var end *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		d, pErr := parseDate(*req.EndDate)
		if pErr != nil {
			return nil, pErr
		}
		end = &d
	}

	e := &models.Experience{
		ID:               uuid.New(),
		ApplicantID:      applicantID,
		OrganizationName: req.OrganizationName,
		OrganizationType: req.OrganizationType,
		Department:       req.Department,
		Designation:      req.Designation,
		Grade:            req.Grade,
		StartDate:        start,
		EndDate:          end,
		IsCurrent:        *req.IsCurrent,
		DutiesSummary:    req.DutiesSummary,
		Achievements:     req.Achievements,
		DistrictID:       req.DistrictID,
		Country:          req.Country,
		CountryOther:     otherText(req.Country, req.CountryOther),
	}

	if err := s.expRepo.CreateLocked(ctx, e); err != nil {
		return nil, mutationError(err, "Experience")
	}
	return e, nil
}

func (s *experienceService) Update(
	ctx context.Context,
	id, applicantID uuid.UUID,
	req dtos.UpdateExperienceRequest,
) (*models.Experience, error) {
	updated, err := s.expRepo.UpdateLocked(ctx, id, applicantID, func(e *models.Experience) error {
		if req.OrganizationName != nil {
			e.OrganizationName = *req.OrganizationName
		}
		if req.OrganizationType != nil {
			e.OrganizationType = *req.OrganizationType
		}
		if req.Department != nil {
			e.Department = *req.Department
		}
		if req.Designation != nil {
			e.Designation = *req.Designation
		}
		if req.Grade != nil {
			e.Grade = *req.Grade
		}
		if req.StartDate != nil {
			d, pErr := parseDate(*req.StartDate)
			if pErr != nil {
				return pErr
			}
			e.StartDate = d
		}
		if req.EndDate != nil {
			if *req.EndDate == "" {
				e.EndDate = nil
			} else {
				d, pErr := parseDate(*req.EndDate)
				if pErr != nil {
					return pErr
				}
				e.EndDate = &d
			}
		}
		if req.IsCurrent != nil {
			e.IsCurrent = *req.IsCurrent
		}
		if req.DutiesSummary != nil {
			e.DutiesSummary = req.DutiesSummary
		}
		if req.Achievements != nil {
			e.Achievements = req.Achievements
		}
		if req.DistrictID != nil {
			e.DistrictID = *req.DistrictID
		}
		if req.Country != nil {
			e.Country = *req.Country
		}
		e.CountryOther = otherText(e.Country, coalesce(req.CountryOther, e.CountryOther))
		return nil
	})
	if err != nil {
		return nil, mutationError(err, "Experience")
	}
	return updated, nil
}

func (s *experienceService) Delete(ctx context.Context, id, applicantID uuid.UUID) error {
	if err := s.expRepo.DeleteLocked(ctx, id, applicantID); err != nil {
		return mutationError(err, "Experience")
	}
	return nil
}
