package dtos

type SignupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	CNIC     string `json:"cnic" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	PostID   int    `json:"postId" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string            `json:"token"`
	Applicant ApplicantResponse `json:"applicant"`
}
