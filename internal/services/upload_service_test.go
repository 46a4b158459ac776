package services

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

type fakeApplicantRepo struct {
	setDocErr  error
	setDocURLs map[models.DocumentCategory]string
}

func (r *fakeApplicantRepo) Create(context.Context, *models.Applicant) error { return nil }
func (r *fakeApplicantRepo) GetByID(context.Context, uuid.UUID) (*models.Applicant, error) {
	return nil, nil
}
func (r *fakeApplicantRepo) GetByUsername(context.Context, string) (*models.Applicant, error) {
	return nil, nil
}
func (r *fakeApplicantRepo) FindByIdentity(context.Context, string, string, string) (*models.Applicant, error) {
	return nil, nil
}
func (r *fakeApplicantRepo) UpdateProfileLocked(context.Context, uuid.UUID, func(*models.Applicant) error) (*models.Applicant, error) {
	return nil, nil
}
func (r *fakeApplicantRepo) StoreDocumentLocked(ctx context.Context, _ uuid.UUID, category models.DocumentCategory, persist func(ctx context.Context) (string, error)) (string, error) {
	if r.setDocErr != nil {
		return "", r.setDocErr
	}
	url, err := persist(ctx)
	if err != nil {
		return "", err
	}
	if r.setDocURLs == nil {
		r.setDocURLs = make(map[models.DocumentCategory]string)
	}
	r.setDocURLs[category] = url
	return url, nil
}
func (r *fakeApplicantRepo) Submit(context.Context, uuid.UUID, func(*models.Applicant, int, int) error) error {
	return nil
}

type fakeBlobStore struct {
	saved map[string][]byte
}

func (s *fakeBlobStore) Save(_ context.Context, slot string, data []byte) (string, error) {
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[slot] = data
	return "/uploads/" + slot, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	return buf.Bytes()
}

func TestUploadStoreRecompressesImages(t *testing.T) {
	repo := &fakeApplicantRepo{}
	blobs := &fakeBlobStore{}
	svc := NewUploadService(repo, blobs)
	applicantID := uuid.New()

	url, err := svc.Store(context.Background(), applicantID,
		models.DocumentProfilePicture, pngBytes(t), "image/png")
	require.NoError(t, err)

	slot := models.DocumentProfilePicture.Slot(applicantID)
	assert.Equal(t, "/uploads/"+slot, url)
	assert.Equal(t, url, repo.setDocURLs[models.DocumentProfilePicture])

	// The stored blob must have been re-encoded as JPEG.
	stored := blobs.saved[slot]
	require.NotEmpty(t, stored)
	assert.Equal(t, []byte{0xff, 0xd8}, stored[:2])
}

func TestUploadStoreRejectsNonImageForImageSlot(t *testing.T) {
	svc := NewUploadService(&fakeApplicantRepo{}, &fakeBlobStore{})

	_, err := svc.Store(context.Background(), uuid.New(),
		models.DocumentCNIC, []byte("%PDF-1.4"), "application/pdf")
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestUploadStoreRejectsNonPDFForDocumentSlot(t *testing.T) {
	svc := NewUploadService(&fakeApplicantRepo{}, &fakeBlobStore{})

	_, err := svc.Store(context.Background(), uuid.New(),
		models.DocumentCV, pngBytes(t), "image/png")
	require.Error(t, err)
}

func TestUploadStoreRejectsOversizedPDF(t *testing.T) {
	svc := NewUploadService(&fakeApplicantRepo{}, &fakeBlobStore{})

	big := make([]byte, 5*1024*1024+1)
	_, err := svc.Store(context.Background(), uuid.New(),
		models.DocumentAcademicCerts, big, "application/pdf")
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestUploadStoreStoresPDFAsIs(t *testing.T) {
	repo := &fakeApplicantRepo{}
	blobs := &fakeBlobStore{}
	svc := NewUploadService(repo, blobs)
	applicantID := uuid.New()

	raw := []byte("%PDF-1.4 fake body")
	url, err := svc.Store(context.Background(), applicantID,
		models.DocumentCV, raw, "application/pdf")
	require.NoError(t, err)

	slot := models.DocumentCV.Slot(applicantID)
	assert.Equal(t, raw, blobs.saved[slot])
	assert.Equal(t, url, repo.setDocURLs[models.DocumentCV])
}

func TestUploadStoreMapsSubmittedGuard(t *testing.T) {
	repo := &fakeApplicantRepo{setDocErr: utils.ErrAlreadySubmitted}
	svc := NewUploadService(repo, &fakeBlobStore{})

	_, err := svc.Store(context.Background(), uuid.New(),
		models.DocumentCV, []byte("%PDF-1.4"), "application/pdf")
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeAlreadySubmitted, appErr.Code)
	assert.True(t, errors.Is(err, utils.ErrAlreadySubmitted))
}

func TestUploadStoreWritesNoBlobWhenSubmitted(t *testing.T) {
	repo := &fakeApplicantRepo{setDocErr: utils.ErrAlreadySubmitted}
	blobs := &fakeBlobStore{}
	svc := NewUploadService(repo, blobs)
	applicantID := uuid.New()

	_, err := svc.Store(context.Background(), applicantID,
		models.DocumentCV, []byte("%PDF-1.4 replacement"), "application/pdf")
	require.Error(t, err)

	// The slot is a fixed published path; a rejected upload must leave it
	// untouched.
	assert.Empty(t, blobs.saved)
	assert.Empty(t, repo.setDocURLs)
}
