package controllers

import (
	"net/http"

	"github.com/Hafizirfan96/spu-backend/internal/dtos"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// CatalogController serves the public posts and districts lookups.
type CatalogController struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogController(catalogRepo repositories.CatalogRepository) *CatalogController {
	return &CatalogController{catalogRepo: catalogRepo}
}

func (c *CatalogController) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := c.catalogRepo.ListPosts(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.PostResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, dtos.NewPostResponse(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *CatalogController) ListDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := c.catalogRepo.ListDistricts(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	resp := make([]dtos.DistrictResponse, 0, len(districts))
	for _, d := range districts {
		resp = append(resp, dtos.NewDistrictResponse(d))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
