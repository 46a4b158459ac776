package dtos

import "github.com/Hafizirfan96/spu-backend/internal/models"

type PostResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DistrictResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewPostResponse(p models.Post) PostResponse {
	return PostResponse{ID: p.ID, Name: p.Name, Description: p.Description}
}

func NewDistrictResponse(d models.District) DistrictResponse {
	return DistrictResponse{ID: d.ID, Name: d.Name}
}
