package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/services"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// AuthController handles applicant signup and login.
type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Signup details are invalid", nil, err,
		)
		return
	}

	applicant, token, err := c.authService.Signup(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.AuthResponse{
		Token:     token,
		Applicant: dtos.NewApplicantResponse(applicant),
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Username and password are required", nil, err,
		)
		return
	}

	applicant, token, err := c.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.AuthResponse{
		Token:     token,
		Applicant: dtos.NewApplicantResponse(applicant),
	})
}
