package models

import (
	"fmt"

	"github.com/google/uuid"
)

// DocumentCategory identifies one of the fixed upload slots on an
// application. Each category maps to exactly one URL column on the
// applicant row and one file slot under the applicant's upload folder.
type DocumentCategory string

const (
	DocumentProfilePicture  DocumentCategory = "profile"
	DocumentCNIC            DocumentCategory = "cnic"
	DocumentCV              DocumentCategory = "cv"
	DocumentAcademicCerts   DocumentCategory = "academic"
	DocumentExperienceCerts DocumentCategory = "experience"
)

// Image reports whether uploads for this category are images (and thus
// go through adaptive recompression) rather than PDFs.
func (c DocumentCategory) Image() bool {
	return c == DocumentProfilePicture || c == DocumentCNIC
}

// Slot returns the relative storage path for this category, scoped to
// the applicant. Slots are fixed: re-uploading overwrites in place.
func (c DocumentCategory) Slot(applicantID uuid.UUID) string {
	switch c {
	case DocumentProfilePicture:
		return fmt.Sprintf("%s/profile-%s.jpg", applicantID, applicantID)
	case DocumentCNIC:
		return fmt.Sprintf("%s/cnic-%s.jpg", applicantID, applicantID)
	case DocumentCV:
		return fmt.Sprintf("%s/cv-%s.pdf", applicantID, applicantID)
	case DocumentAcademicCerts:
		return fmt.Sprintf("%s/qualifications/academic-%s.pdf", applicantID, applicantID)
	case DocumentExperienceCerts:
		return fmt.Sprintf("%s/experiences/experience-%s.pdf", applicantID, applicantID)
	}
	return ""
}
