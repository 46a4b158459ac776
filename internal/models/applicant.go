package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission states for an application. SUBMITTED is terminal: once an
// applicant reaches it, neither the profile nor any child record may change.
const (
	SubmissionStatusDraft     = "DRAFT"
	SubmissionStatusSubmitted = "SUBMITTED"
)

// Applicant for the applicants table.
type Applicant struct {
	ID         uuid.UUID
	FullName   string
	FatherName *string
	CNIC       string
	Email      string
	Username   string
	Password   string
	CellNo     *string
	DOB        *time.Time
	Gender     *string
	PostID     *int
	DistrictID *int

	OtherDistrict *string
	Address       *string

	URLProfilePic      *string
	URLCv              *string
	URLCnic            *string
	URLAcademicCerts   *string
	URLExperienceCerts *string

	SubmissionStatus string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Locked reports whether the application has been submitted and is
// therefore immutable.
func (a *Applicant) Locked() bool {
	return a.SubmissionStatus == SubmissionStatusSubmitted
}

// CanMutate reports whether an application in the given submission status
// may still be edited. SUBMITTED blocks every mutation, regardless of
// payload.
func CanMutate(status string) bool {
	return status != SubmissionStatusSubmitted
}
