package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/services"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// OTPController handles the pre-signup email verification endpoints.
type OTPController struct {
	otpService services.OTPService
}

func NewOTPController(otpService services.OTPService) *OTPController {
	return &OTPController{otpService: otpService}
}

// SendCode issues a fresh verification code and emails it. Re-requesting
// replaces any live code for the same email.
func (c *OTPController) SendCode(w http.ResponseWriter, r *http.Request) {
	var req dtos.SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "A valid email address is required", nil, err,
		)
		return
	}

	if err := c.otpService.RequestCode(r.Context(), req.Email, utils.DetectClientIP(r)); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Verification code sent"})
}

// VerifyCode is the non-consuming pre-check used by the signup form. The
// code stays usable for the actual signup afterwards.
func (c *OTPController) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Email and code are required", nil, err,
		)
		return
	}

	res := c.otpService.Verify(r.Context(), req.Email, req.Code, false)
	if !res.OK {
		utils.HandleAppError(w, services.VerificationError(res))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Code verified"})
}
