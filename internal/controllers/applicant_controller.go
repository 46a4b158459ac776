package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/services"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ApplicantController serves the authenticated applicant's own profile.
type ApplicantController struct {
	applicantService services.ApplicantService
}

func NewApplicantController(applicantService services.ApplicantService) *ApplicantController {
	return &ApplicantController{applicantService: applicantService}
}

func (c *ApplicantController) GetProfile(w http.ResponseWriter, r *http.Request) {
	applicant, post, district, err := c.applicantService.GetProfile(r.Context(), applicantIDFromContext(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := dtos.NewApplicantResponse(applicant)
	if post != nil {
		p := dtos.NewPostResponse(*post)
		resp.Post = &p
	}
	if district != nil {
		d := dtos.NewDistrictResponse(*district)
		resp.District = &d
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *ApplicantController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Profile details are invalid", nil, err,
		)
		return
	}

	updated, err := c.applicantService.UpdateProfile(r.Context(), applicantIDFromContext(r), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewApplicantResponse(updated))
}
