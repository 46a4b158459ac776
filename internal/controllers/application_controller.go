package controllers

import (
	"net/http"
	"strconv"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/services"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ApplicationController handles the final submission and the printable
// application form.
type ApplicationController struct {
	submissionService services.SubmissionService
	pdfService        services.ApplicationPDFService
}

func NewApplicationController(
	submissionService services.SubmissionService,
	pdfService services.ApplicationPDFService,
) *ApplicationController {
	return &ApplicationController{
		submissionService: submissionService,
		pdfService:        pdfService,
	}
}

// Submit runs the one-way DRAFT to SUBMITTED transition.
func (c *ApplicationController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := c.submissionService.Submit(r.Context(), applicantIDFromContext(r)); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.SubmitResponse{Submitted: true})
}

// DownloadPDF renders the application form as an attachment. Available
// in both DRAFT and SUBMITTED states.
func (c *ApplicationController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	pdfBytes, err := c.pdfService.Render(r.Context(), applicantIDFromContext(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="application.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
