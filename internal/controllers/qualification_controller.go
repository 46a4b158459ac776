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

// QualificationController handles the applicant's qualification records.
type QualificationController struct {
	qualService services.QualificationService
}

func NewQualificationController(qualService services.QualificationService) *QualificationController {
	return &QualificationController{qualService: qualService}
}

func (c *QualificationController) List(w http.ResponseWriter, r *http.Request) {
	quals, err := c.qualService.List(r.Context(), applicantIDFromContext(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.QualificationResponse, 0, len(quals))
	for i := range quals {
		resp = append(resp, dtos.NewQualificationResponse(&quals[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *QualificationController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateQualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Qualification details are invalid", nil, err,
		)
		return
	}

	q, err := c.qualService.Create(r.Context(), applicantIDFromContext(r), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewQualificationResponse(q))
}

func (c *QualificationController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid qualification id", nil, err,
		)
		return
	}

	var req dtos.UpdateQualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}

	q, err := c.qualService.Update(r.Context(), id, applicantIDFromContext(r), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewQualificationResponse(q))
}

func (c *QualificationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid qualification id", nil, err,
		)
		return
	}

	if err := c.qualService.Delete(r.Context(), id, applicantIDFromContext(r)); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Qualification deleted"})
}
