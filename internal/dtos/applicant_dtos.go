package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/Hafizirfan96/spu-backend/internal/models"
)

// UpdateApplicantRequest is a partial update: nil fields are left
// untouched.
type UpdateApplicantRequest struct {
	FullName      *string `json:"fullName"`
	FatherName    *string `json:"fatherName"`
	CNIC          *string `json:"cnic"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Username      *string `json:"username" validate:"omitempty,min=3"`
	CellNo        *string `json:"cellNo"`
	DOB           *string `json:"dob"`
	Gender        *string `json:"gender"`
	PostID        *int    `json:"postId"`
	DistrictID    *int    `json:"districtId"`
	OtherDistrict *string `json:"otherDistrict"`
	Address       *string `json:"address"`
}

type ApplicantResponse struct {
	ID            uuid.UUID  `json:"id"`
	FullName      string     `json:"fullName"`
	FatherName    *string    `json:"fatherName,omitempty"`
	CNIC          string     `json:"cnic"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	CellNo        *string    `json:"cellNo,omitempty"`
	DOB           *time.Time `json:"dob,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	PostID        *int       `json:"postId,omitempty"`
	DistrictID    *int       `json:"districtId,omitempty"`
	OtherDistrict *string    `json:"otherDistrict,omitempty"`
	Address       *string    `json:"address,omitempty"`

	URLProfilePic      *string `json:"urlProfilePic,omitempty"`
	URLCv              *string `json:"urlCv,omitempty"`
	URLCnic            *string `json:"urlCnic,omitempty"`
	URLAcademicCerts   *string `json:"urlAcademicCerts,omitempty"`
	URLExperienceCerts *string `json:"urlExperienceCerts,omitempty"`

	SubmissionStatus string `json:"submissionStatus"`

	Post     *PostResponse     `json:"post,omitempty"`
	District *DistrictResponse `json:"district,omitempty"`
}

func NewApplicantResponse(a *models.Applicant) ApplicantResponse {
	return ApplicantResponse{
		ID:                 a.ID,
		FullName:           a.FullName,
		FatherName:         a.FatherName,
		CNIC:               a.CNIC,
		Email:              a.Email,
		Username:           a.Username,
		CellNo:             a.CellNo,
		DOB:                a.DOB,
		Gender:             a.Gender,
		PostID:             a.PostID,
		DistrictID:         a.DistrictID,
		OtherDistrict:      a.OtherDistrict,
		Address:            a.Address,
		URLProfilePic:      a.URLProfilePic,
		URLCv:              a.URLCv,
		URLCnic:            a.URLCnic,
		URLAcademicCerts:   a.URLAcademicCerts,
		URLExperienceCerts: a.URLExperienceCerts,
		SubmissionStatus:   a.SubmissionStatus,
	}
}
