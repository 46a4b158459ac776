package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// ---------------------------------------------------------------------
// ApplicationPDFService interface
// ---------------------------------------------------------------------
type ApplicationPDFService interface {
	// Render produces the printable application form for the applicant.
	Render(ctx context.Context, applicantID uuid.UUID) ([]byte, error)
}

type applicationPDFService struct {
	applicantRepo repositories.ApplicantRepository
	catalogRepo   repositories.CatalogRepository
	qualRepo      repositories.QualificationRepository
	expRepo       repositories.ExperienceRepository
}

func NewApplicationPDFService(
	applicantRepo repositories.ApplicantRepository,
	catalogRepo repositories.CatalogRepository,
	qualRepo repositories.QualificationRepository,
	expRepo repositories.ExperienceRepository,
) ApplicationPDFService {
	return &applicationPDFService{
		applicantRepo: applicantRepo,
		catalogRepo:   catalogRepo,
		qualRepo:      qualRepo,
		expRepo:       expRepo,
	}
}

// formWriter wraps the pdf handle with the form's band and box helpers so
// each section reads as layout, not coordinates.
type formWriter struct {
	pdf *fpdf.Fpdf
}

func (f *formWriter) contentWidth() float64 {
	w, _ := f.pdf.GetPageSize()
	left, _, right, _ := f.pdf.GetMargins()
	return w - left - right
}

func (f *formWriter) breakIfNeeded(needed float64) {
	_, h := f.pdf.GetPageSize()
	_, _, _, bottom := f.pdf.GetMargins()
	if f.pdf.GetY()+needed > h-bottom {
		f.pdf.AddPage()
	}
}

// sectionTitle draws a full-width blue band with centered white text.
func (f *formWriter) sectionTitle(text string) {
	f.breakIfNeeded(30)
	f.pdf.SetFillColor(15, 78, 199)
	f.pdf.SetTextColor(255, 255, 255)
	f.pdf.SetFont("Helvetica", "B", 12)
	f.pdf.CellFormat(f.contentWidth(), 24, text, "", 1, "CM", true, 0, "")
	f.pdf.Ln(6)
}

// subsectionTitle draws a lighter band with blue text, used per record.
func (f *formWriter) subsectionTitle(text string) {
	f.breakIfNeeded(20)
	f.pdf.SetFillColor(238, 242, 249)
	f.pdf.SetTextColor(15, 78, 199)
	f.pdf.SetFont("Helvetica", "B", 11)
	f.pdf.CellFormat(f.contentWidth(), 18, "  "+text, "", 1, "LM", true, 0, "")
	f.pdf.Ln(4)
}

// boxRow renders one two-column row of label/value boxes.
func (f *formWriter) boxRow(leftLabel, leftValue, rightLabel, rightValue string) {
	const labelWidth = 80.0
	const lineHeight = 20.0

	f.breakIfNeeded(lineHeight + 10)
	colWidth := f.contentWidth() / 2
	f.pdf.SetDrawColor(208, 215, 228)

	cell := func(label, value string) {
		if label == "" && value == "" {
			f.pdf.SetX(f.pdf.GetX() + colWidth)
			return
		}
		f.pdf.SetFillColor(240, 244, 255)
		f.pdf.SetTextColor(15, 78, 199)
		f.pdf.SetFont("Helvetica", "B", 9)
		f.pdf.CellFormat(labelWidth, lineHeight, " "+label, "1", 0, "LM", true, 0, "")

		if value == "" {
			value = "-"
		}
		f.pdf.SetFillColor(255, 255, 255)
		f.pdf.SetTextColor(17, 17, 17)
		f.pdf.SetFont("Helvetica", "", 9)
		f.pdf.CellFormat(colWidth-labelWidth, lineHeight, " "+value, "1", 0, "LM", true, 0, "")
	}

	cell(leftLabel, leftValue)
	cell(rightLabel, rightValue)
	f.pdf.Ln(lineHeight + 8)
}

func (f *formWriter) plainLine(text string) {
	f.pdf.SetTextColor(17, 17, 17)
	f.pdf.SetFont("Helvetica", "", 10)
	f.pdf.CellFormat(f.contentWidth(), 14, text, "", 1, "LM", false, 0, "")
	f.pdf.Ln(4)
}

// withOther appends the free-text companion when the enum value is OTHER.
func withOther(value string, other *string) string {
	if value == "OTHER" && other != nil && *other != "" {
		return fmt.Sprintf("%s (%s)", value, *other)
	}
	return value
}

func uploadedOrMissing(url *string) string {
	if url != nil && *url != "" {
		return "Uploaded"
	}
	return "Missing"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *applicationPDFService) Render(ctx context.Context, applicantID uuid.UUID) ([]byte, error) {
	a, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound,
			"Applicant not found", nil)
	}

	quals, err := s.qualRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	exps, err := s.expRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	postName := ""
	if a.PostID != nil {
		if post, pErr := s.catalogRepo.GetPost(ctx, *a.PostID); pErr == nil && post != nil {
			postName = post.Name
		}
	}
	districtName := deref(a.OtherDistrict)
	if a.DistrictID != nil {
		if d, dErr := s.catalogRepo.GetDistrict(ctx, *a.DistrictID); dErr == nil && d != nil {
			districtName = d.Name
		}
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(40, 40, 40)
	pdf.SetAutoPageBreak(false, 40)
	pdf.AddPage()
	form := &formWriter{pdf: pdf}

	pdf.SetTextColor(17, 17, 17)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(form.contentWidth(), 20, "Government of the Punjab", "", 1, "CM", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(form.contentWidth(), 18, "Skills Development and Entrepreneurship Department", "", 1, "CM", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(form.contentWidth(), 16, "Application Form", "", 1, "CM", false, 0, "")
	pdf.Ln(16)

	form.sectionTitle("Profile")
	form.boxRow("Full Name", a.FullName, "Father Name", deref(a.FatherName))
	form.boxRow("CNIC", a.CNIC, "Email", a.Email)
	form.boxRow("Username", a.Username, "Cell No", deref(a.CellNo))
	dob := ""
	if a.DOB != nil {
		dob = a.DOB.Format("2006-01-02")
	}
	form.boxRow("Date of Birth", dob, "Gender", deref(a.Gender))
	form.boxRow("Post", postName, "District", districtName)
	form.boxRow("Address", deref(a.Address), "Submission Status", a.SubmissionStatus)
	pdf.Ln(6)

	form.sectionTitle("Qualifications")
	if len(quals) == 0 {
		form.plainLine("No qualifications provided.")
	}
	for i, q := range quals {
		form.subsectionTitle(fmt.Sprintf("Qualification %d", i+1))
		form.boxRow(
			"Degree Type", withOther(q.DegreeType, q.DegreeTypeOther),
			"Field of Study", withOther(q.FieldOfStudy, q.FieldOfStudyOther))
		form.boxRow(
			"Institution", q.InstitutionName,
			"Country", withOther(q.InstitutionCountry, q.InstitutionCountryOther))
		form.boxRow(
			"Graduation Year", strconv.Itoa(q.GraduationYear),
			"Grade/CGPA", q.Grade)
		foreign := "No"
		if q.IsForeign {
			foreign = "Yes"
		}
		form.boxRow(
			"Duration (months)", strconv.Itoa(q.DurationMonths),
			"Foreign Degree", foreign)
		form.boxRow("Notes", deref(q.Notes), "", "")
		pdf.Ln(6)
	}

	form.sectionTitle("Experiences")
	if len(exps) == 0 {
		form.plainLine("No experiences provided.")
	}
	for i, e := range exps {
		form.subsectionTitle(fmt.Sprintf("Experience %d", i+1))
		form.boxRow(
			"Organization", e.OrganizationName,
			"Type", e.OrganizationType)
		form.boxRow(
			"Department", e.Department,
			"Designation", e.Designation)
		expDistrict := ""
		if d, dErr := s.catalogRepo.GetDistrict(ctx, e.DistrictID); dErr == nil && d != nil {
			expDistrict = d.Name
		}
		form.boxRow("Grade", e.Grade, "District", expDistrict)
		end := ""
		if e.EndDate != nil {
			end = e.EndDate.Format("2006-01-02")
		} else if e.IsCurrent {
			end = "Current"
		}
		form.boxRow(
			"Start Date", e.StartDate.Format("2006-01-02"),
			"End Date", end)
		posting := "No"
		if e.Country != "PAKISTAN" {
			posting = "Yes"
		}
		form.boxRow(
			"Country", withOther(e.Country, e.CountryOther),
			"Foreign Posting", posting)
		form.boxRow(
			"Duties", deref(e.DutiesSummary),
			"Achievements", deref(e.Achievements))
		pdf.Ln(6)
	}

	form.sectionTitle("Documents")
	form.boxRow(
		"Profile Picture", uploadedOrMissing(a.URLProfilePic),
		"CV", uploadedOrMissing(a.URLCv))
	form.boxRow(
		"Academic Certificates", uploadedOrMissing(a.URLAcademicCerts),
		"Experience Certificates", uploadedOrMissing(a.URLExperienceCerts))
	form.boxRow("CNIC", uploadedOrMissing(a.URLCnic), "", "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal,
			"Unable to generate PDF", err)
	}
	return buf.Bytes(), nil
}
