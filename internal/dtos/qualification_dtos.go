package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/Hafizirfan96/spu-backend/internal/models"
)

type CreateQualificationRequest struct {
	DegreeType              string  `json:"degreeType" validate:"required"`
	DegreeTypeOther         *string `json:"degreeTypeOther"`
	FieldOfStudy            string  `json:"fieldOfStudy" validate:"required"`
	FieldOfStudyOther       *string `json:"fieldOfStudyOther"`
	InstitutionName         string  `json:"institutionName" validate:"required"`
	InstitutionCountry      string  `json:"institutionCountry" validate:"required"`
	InstitutionCountryOther *string `json:"institutionCountryOther"`
	GraduationYear          int     `json:"graduationYear" validate:"required"`
	Grade                   string  `json:"grade" validate:"required"`
	DurationMonths          *int    `json:"durationMonths" validate:"required"`
	IsForeign               *bool   `json:"isForeign" validate:"required"`
	Notes                   *string `json:"notes"`
}

// UpdateQualificationRequest is a partial update: nil fields are left
// untouched.
type UpdateQualificationRequest struct {
	DegreeType              *string `json:"degreeType"`
	DegreeTypeOther         *string `json:"degreeTypeOther"`
	FieldOfStudy            *string `json:"fieldOfStudy"`
	FieldOfStudyOther       *string `json:"fieldOfStudyOther"`
	InstitutionName         *string `json:"institutionName"`
	InstitutionCountry      *string `json:"institutionCountry"`
	InstitutionCountryOther *string `json:"institutionCountryOther"`
	GraduationYear          *int    `json:"graduationYear"`
	Grade                   *string `json:"grade"`
	DurationMonths          *int    `json:"durationMonths"`
	IsForeign               *bool   `json:"isForeign"`
	Notes                   *string `json:"notes"`
}

type QualificationResponse struct {
	ID                      uuid.UUID `json:"id"`
	DegreeType              string    `json:"degreeType"`
	DegreeTypeOther         *string   `json:"degreeTypeOther,omitempty"`
	FieldOfStudy            string    `json:"fieldOfStudy"`
	FieldOfStudyOther       *string   `json:"fieldOfStudyOther,omitempty"`
	InstitutionName         string    `json:"institutionName"`
	InstitutionCountry      string    `json:"institutionCountry"`
	InstitutionCountryOther *string   `json:"institutionCountryOther,omitempty"`
	GraduationYear          int       `json:"graduationYear"`
	Grade                   string    `json:"grade"`
	DurationMonths          int       `json:"durationMonths"`
	IsForeign               bool      `json:"isForeign"`
	Notes                   *string   `json:"notes,omitempty"`
	CreatedAt               time.Time `json:"createdAt"`
}

func NewQualificationResponse(q *models.Qualification) QualificationResponse {
	return QualificationResponse{
		ID:                      q.ID,
		DegreeType:              q.DegreeType,
		DegreeTypeOther:         q.DegreeTypeOther,
		FieldOfStudy:            q.FieldOfStudy,
		FieldOfStudyOther:       q.FieldOfStudyOther,
		InstitutionName:         q.InstitutionName,
		InstitutionCountry:      q.InstitutionCountry,
		InstitutionCountryOther: q.InstitutionCountryOther,
		GraduationYear:          q.GraduationYear,
		Grade:                   q.Grade,
		DurationMonths:          q.DurationMonths,
		IsForeign:               q.IsForeign,
		Notes:                   q.Notes,
		CreatedAt:               q.CreatedAt,
	}
}
