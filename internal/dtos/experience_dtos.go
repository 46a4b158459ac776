package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/Hafizirfan96/spu-backend/internal/models"
)

type CreateExperienceRequest struct {
	OrganizationName string  `json:"organizationName" validate:"required"`
	OrganizationType string  `json:"organizationType" validate:"required"`
	Department       string  `json:"department" validate:"required"`
	Designation      string  `json:"designation" validate:"required"`
	Grade            string  `json:"grade" validate:"required"`
	StartDate        string  `json:"startDate" validate:"required"`
	EndDate          *string `json:"endDate"`
	IsCurrent        *bool   `json:"isCurrent" validate:"required"`
	DutiesSummary    *string `json:"dutiesSummary"`
	Achievements     *string `json:"achievements"`
	DistrictID       int     `json:"districtId" validate:"required"`
	Country          string  `json:"country" validate:"required"`
	CountryOther     *string `json:"countryOther"`
}

// UpdateExperienceRequest is a partial update: nil fields are left
// untouched.
type UpdateExperienceRequest struct {
	OrganizationName *string `json:"organizationName"`
	OrganizationType *string `json:"organizationType"`
	Department       *string `json:"department"`
	Designation      *string `json:"designation"`
	Grade            *string `json:"grade"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	IsCurrent        *bool   `json:"isCurrent"`
	DutiesSummary    *string `json:"dutiesSummary"`
	Achievements     *string `json:"achievements"`
	DistrictID       *int    `json:"districtId"`
	Country          *string `json:"country"`
	CountryOther     *string `json:"countryOther"`
}

type ExperienceResponse struct {
	ID               uuid.UUID  `json:"id"`
	OrganizationName string     `json:"organizationName"`
	OrganizationType string     `json:"organizationType"`
	Department       string     `json:"department"`
	Designation      string     `json:"designation"`
	Grade            string     `json:"grade"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	IsCurrent        bool       `json:"isCurrent"`
	DutiesSummary    *string    `json:"dutiesSummary,omitempty"`
	Achievements     *string    `json:"achievements,omitempty"`
	DistrictID       int        `json:"districtId"`
	Country          string     `json:"country"`
	CountryOther     *string    `json:"countryOther,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func NewExperienceResponse(e *models.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:               e.ID,
		OrganizationName: e.OrganizationName,
		OrganizationType: e.OrganizationType,
		Department:       e.Department,
		Designation:      e.Designation,
		Grade:            e.Grade,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		IsCurrent:        e.IsCurrent,
		DutiesSummary:    e.DutiesSummary,
		Achievements:     e.Achievements,
		DistrictID:       e.DistrictID,
		Country:          e.Country,
		CountryOther:     e.CountryOther,
		CreatedAt:        e.CreatedAt,
	}
}
