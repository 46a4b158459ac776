package routes

const (
	// Public
	Health    = "/health"
	OTPSend   = "/otp/send"
	OTPVerify = "/otp/verify"
	Signup    = "/auth/signup"
	Login     = "/auth/login"
	Posts     = "/posts"
	Districts = "/districts"

	// Authenticated applicant endpoints
	Applicant         = "/applicant"
	Qualifications    = "/qualifications"
	QualificationByID = "/qualifications/{id}"
	Experiences       = "/experiences"
	ExperienceByID    = "/experiences/{id}"
	Upload            = "/upload/{category}"
	ApplicationSubmit = "/application/submit"
	ApplicationPDF    = "/application/pdf"

	// Static serving of uploaded documents
	UploadsPrefix = "/uploads"
)
