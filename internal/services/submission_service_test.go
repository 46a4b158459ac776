package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Hafizirfan96/spu-backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// completeApplicant builds an aggregate that satisfies every submission
// precondition.
func completeApplicant() *models.Applicant {
	return &models.Applicant{
		ID:                 uuid.New(),
		FullName:           "Ayesha Khan",
		CNIC:               "35202-1234567-1",
		Email:              "ayesha@example.com",
		Username:           "ayesha",
		PostID:             intPtr(1),
		URLProfilePic:      strPtr("/uploads/x/profile.jpg"),
		URLCv:              strPtr("/uploads/x/cv.pdf"),
		URLCnic:            strPtr("/uploads/x/cnic.jpg"),
		URLAcademicCerts:   strPtr("/uploads/x/academic.pdf"),
		URLExperienceCerts: strPtr("/uploads/x/experience.pdf"),
		SubmissionStatus:   models.SubmissionStatusDraft,
	}
}

func TestReadinessCompleteAggregate(t *testing.T) {
	r := EvaluateReadiness(completeApplicant(), 1, 1)
	assert.True(t, r.Complete())
	assert.Empty(t, r.Missing())
}

func TestReadinessEachMissingCategoryBlocks(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(a *models.Applicant) (qualCount, expCount int)
		missing string
	}{
		{"no full name", func(a *models.Applicant) (int, int) { a.FullName = ""; return 1, 1 }, "profile"},
		{"no cnic", func(a *models.Applicant) (int, int) { a.CNIC = ""; return 1, 1 }, "profile"},
		{"no email", func(a *models.Applicant) (int, int) { a.Email = ""; return 1, 1 }, "profile"},
		{"no username", func(a *models.Applicant) (int, int) { a.Username = ""; return 1, 1 }, "profile"},
		{"no post", func(a *models.Applicant) (int, int) { a.PostID = nil; return 1, 1 }, "profile"},
		{"no picture", func(a *models.Applicant) (int, int) { a.URLProfilePic = nil; return 1, 1 }, "picture"},
		{"no qualifications", func(a *models.Applicant) (int, int) { return 0, 1 }, "qualifications"},
		{"no experiences", func(a *models.Applicant) (int, int) { return 1, 0 }, "experiences"},
		{"no cv", func(a *models.Applicant) (int, int) { a.URLCv = nil; return 1, 1 }, "documents"},
		{"no academic certs", func(a *models.Applicant) (int, int) { a.URLAcademicCerts = nil; return 1, 1 }, "documents"},
		{"no experience certs", func(a *models.Applicant) (int, int) { a.URLExperienceCerts = nil; return 1, 1 }, "documents"},
		{"no cnic image", func(a *models.Applicant) (int, int) { a.URLCnic = nil; return 1, 1 }, "documents"},
		{"empty url counts as unset", func(a *models.Applicant) (int, int) { a.URLCv = strPtr(""); return 1, 1 }, "documents"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := completeApplicant()
			qualCount, expCount := tc.corrupt(a)
			r := EvaluateReadiness(a, qualCount, expCount)
			assert.False(t, r.Complete())
			assert.Contains(t, r.Missing(), tc.missing)
		})
	}
}

func TestGuardBlocksMutationsAfterSubmission(t *testing.T) {
	assert.True(t, models.CanMutate(models.SubmissionStatusDraft))
	assert.False(t, models.CanMutate(models.SubmissionStatusSubmitted))
}
