package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/config"
	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/storage"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ---------------------------------------------------------------------
// UploadService interface
// ---------------------------------------------------------------------
type UploadService interface {
	// Store validates the upload for its category, recompresses images
	// toward the configured budget, writes the blob to its fixed slot and
	// records the locator on the applicant. Rejected once the application
	// is SUBMITTED.
	Store(ctx context.Context, applicantID uuid.UUID, category models.DocumentCategory, data []byte, contentType string) (string, error)
}

type uploadService struct {
	applicantRepo repositories.ApplicantRepository
	blobs         storage.BlobStore
}

func NewUploadService(applicantRepo repositories.ApplicantRepository, blobs storage.BlobStore) UploadService {
	return &uploadService{applicantRepo: applicantRepo, blobs: blobs}
}

func (s *uploadService) Store(
	ctx context.Context,
	applicantID uuid.UUID,
	category models.DocumentCategory,
	data []byte,
	contentType string,
) (string, error) {
	if len(data) == 0 {
		return "", utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation,
			"No file uploaded", nil)
	}

	if category.Image() {
		if !strings.HasPrefix(contentType, "image/") {
			return "", utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation,
				"Only image files allowed", nil)
		}
		shrunk, err := ShrinkJPEG(data,
			config.ProfileImageTargetBytes, config.ImageStartQuality,
			config.ImageQualityStep, config.ImageMaxPasses)
		if err != nil {
			return "", utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation,
				"Uploaded file is not a readable image", err)
		}
		data = shrunk
	} else {
		if contentType != "application/pdf" {
			return "", utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation,
				"Only PDF allowed", nil)
		}
		if len(data) > config.MaxPDFUploadBytes {
			return "", utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation,
				"PDF must be 5MB or smaller", nil)
		}
	}

	// The blob write runs inside the row-locked guard: a submitted
	// application must not have its published slot overwritten.
	url, err := s.applicantRepo.StoreDocumentLocked(ctx, applicantID, category,
		func(ctx context.Context) (string, error) {
			locator, sErr := s.blobs.Save(ctx, category.Slot(applicantID), data)
			if sErr != nil {
				return "", utils.NewAppError(http.StatusBadGateway, utils.ErrCodeExternalServiceFailure,
					"Unable to store uploaded file", sErr)
			}
			return locator, nil
		})
	switch {
	case err == nil:
		return url, nil
	case errors.Is(err, pgx.ErrNoRows):
		return "", utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			"Applicant not found", err)
	case errors.Is(err, utils.ErrAlreadySubmitted):
		return "", utils.NewAppError(http.StatusConflict, utils.ErrCodeAlreadySubmitted,
			"Application already submitted, edits not allowed", err)
	default:
		return "", err
	}
}
