package controllers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/services"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// maxUploadMemoryBytes caps how much of a multipart body is held in
// memory before spilling to disk.
const maxUploadMemoryBytes = 8 << 20

var uploadCategories = map[string]models.DocumentCategory{
	"profile":    models.DocumentProfilePicture,
	"cnic":       models.DocumentCNIC,
	"cv":         models.DocumentCV,
	"academic":   models.DocumentAcademicCerts,
	"experience": models.DocumentExperienceCerts,
}

// UploadController handles the five fixed document upload slots.
type UploadController struct {
	uploadService services.UploadService
}

func NewUploadController(uploadService services.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	category, ok := uploadCategories[mux.Vars(r)["category"]]
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Unknown upload category", nil,
		)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemoryBytes); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", nil, err,
		)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "No file uploaded", nil, err,
		)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Unable to read uploaded file", nil, err,
		)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := c.uploadService.Store(r.Context(), applicantIDFromContext(r), category, data, contentType)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.UploadResponse{URL: url})
}
