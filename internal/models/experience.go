package models

import (
	"time"

	"github.com/google/uuid"
)

// Experience for the experiences table. Owned by exactly one applicant;
// rows cascade on applicant deletion.
type Experience struct {
	ID          uuid.UUID
	ApplicantID uuid.UUID

	OrganizationName string
	OrganizationType string
	Department       string
	Designation      string
	Grade            string
	StartDate        time.Time
	EndDate          *time.Time
	IsCurrent        bool
	DutiesSummary    *string
	Achievements     *string
	DistrictID       int
	Country          string
	CountryOther     *string

	CreatedAt time.Time
}
