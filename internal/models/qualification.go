package models

import (
	"time"

	"github.com/google/uuid"
)

// Qualification for the qualifications table. Owned by exactly one
// applicant; rows cascade on applicant deletion.
type Qualification struct {
	ID          uuid.UUID
	ApplicantID uuid.UUID

	DegreeType              string
	DegreeTypeOther         *string
	FieldOfStudy            string
	FieldOfStudyOther       *string
	InstitutionName         string
	InstitutionCountry      string
	InstitutionCountryOther *string
	GraduationYear          int
	Grade                   string
	DurationMonths          int
	IsForeign               bool
	Notes                   *string

	CreatedAt time.Time
}
