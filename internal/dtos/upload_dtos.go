package dtos

type UploadResponse struct {
	URL string `json:"url"`
}

type SubmitResponse struct {
	Submitted bool `json:"submitted"`
}
