package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ---------------------------------------------------------------------
// ApplicantService interface
// ---------------------------------------------------------------------
type ApplicantService interface {
	GetProfile(ctx context.Context, applicantID uuid.UUID) (*models.Applicant, *models.Post, *models.District, error)
	UpdateProfile(ctx context.Context, applicantID uuid.UUID, req dtos.UpdateApplicantRequest) (*models.Applicant, error)
}

type applicantService struct {
	applicantRepo repositories.ApplicantRepository
	catalogRepo   repositories.CatalogRepository
}

func NewApplicantService(
	applicantRepo repositories.ApplicantRepository,
	catalogRepo repositories.CatalogRepository,
) ApplicantService {
	return &applicantService{applicantRepo: applicantRepo, catalogRepo: catalogRepo}
}

func (s *applicantService) GetProfile(
	ctx context.Context,
	applicantID uuid.UUID,
) (*models.Applicant, *models.Post, *models.District, error) {
	a, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, nil, nil, err
	}
	if a == nil {
		return nil, nil, nil, utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			"Applicant not found", nil)
	}

	var post *models.Post
	if a.PostID != nil {
		if post, err = s.catalogRepo.GetPost(ctx, *a.PostID); err != nil {
			return nil, nil, nil, err
		}
	}
	var district *models.District
	if a.DistrictID != nil {
		if district, err = s.catalogRepo.GetDistrict(ctx, *a.DistrictID); err != nil {
			return nil, nil, nil, err
		}
	}
	return a, post, district, nil
}

func (s *applicantService) UpdateProfile(
	ctx context.Context,
	applicantID uuid.UUID,
	req dtos.UpdateApplicantRequest,
) (*models.Applicant, error) {
	updated, err := s.applicantRepo.UpdateProfileLocked(ctx, applicantID, func(a *models.Applicant) error {
		if req.FullName != nil {
			a.FullName = *req.FullName
		}
		if req.FatherName != nil {
			a.FatherName = req.FatherName
		}
		if req.CNIC != nil {
			a.CNIC = *req.CNIC
		}
		if req.Email != nil {
			a.Email = *req.Email
		}
		if req.Username != nil {
			a.Username = *req.Username
		}
		if req.CellNo != nil {
			a.CellNo = req.CellNo
		}
		if req.DOB != nil {
			if *req.DOB == "" {
				a.DOB = nil
			} else {
				dob, pErr := time.Parse("2006-01-02", *req.DOB)
				if pErr != nil {
					return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation,
						"Invalid date of birth, expected YYYY-MM-DD", pErr)
				}
				a.DOB = &dob
			}
		}
		if req.Gender != nil {
			a.Gender = req.Gender
		}
		if req.PostID != nil {
			a.PostID = req.PostID
		}
		if req.DistrictID != nil {
			a.DistrictID = req.DistrictID
		}
		if req.OtherDistrict != nil {
			a.OtherDistrict = req.OtherDistrict
		}
		if req.Address != nil {
			a.Address = req.Address
		}
		return nil
	})

	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, pgx.ErrNoRows):
		return nil, utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			"Applicant not found", err)
	case errors.Is(err, utils.ErrAlreadySubmitted):
		return nil, utils.NewAppError(http.StatusConflict, utils.ErrCodeAlreadySubmitted,
			"Application already submitted, edits not allowed", err)
	default:
		return nil, err
	}
}
