package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/services"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ExperienceController handles the applicant's experience records.
type ExperienceController struct {
	expService services.ExperienceService
}

func NewExperienceController(expService services.ExperienceService) *ExperienceController {
	return &ExperienceController{expService: expService}
}

func (c *ExperienceController) List(w http.ResponseWriter, r *http.Request) {
	exps, err := c.expService.List(r.Context(), applicantIDFromContext(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.ExperienceResponse, 0, len(exps))
	for i := range exps {
		resp = append(resp, dtos.NewExperienceResponse(&exps[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *ExperienceController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Experience details are invalid", nil, err,
		)
		return
	}

	e, err := c.expService.Create(r.Context(), applicantIDFromContext(r), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewExperienceResponse(e))
}

func (c *ExperienceController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid experience id", nil, err,
		)
		return
	}

	var req dtos.UpdateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}

	e, err := c.expService.Update(r.Context(), id, applicantIDFromContext(r), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewExperienceResponse(e))
}

func (c *ExperienceController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid experience id", nil, err,
		)
		return
	}

	if err := c.expService.Delete(r.Context(), id, applicantIDFromContext(r)); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Experience deleted"})
}
