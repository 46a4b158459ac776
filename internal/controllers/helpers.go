package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Hafizirfan96/spu-backend/internal/middleware"
)

var validate = validator.New()

// applicantIDFromContext reads the authenticated applicant's UUID placed
// by the auth middleware. Returns uuid.Nil when absent.
func applicantIDFromContext(r *http.Request) uuid.UUID {
	id, ok := r.Context().Value(middleware.ContextKeyApplicantID).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
