package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/models"
)

type ApplicantRepository interface {
	Create(ctx context.Context, a *models.Applicant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error)
	GetByUsername(ctx context.Context, username string) (*models.Applicant, error)
	FindByIdentity(ctx context.Context, email, username, cnic string) (*models.Applicant, error)

	// UpdateProfileLocked applies mutate to the applicant inside a row-locked
	// transaction. The mutation is rejected once the application is SUBMITTED.
	UpdateProfileLocked(ctx context.Context, id uuid.UUID, mutate func(*models.Applicant) error) (*models.Applicant, error)

	// StoreDocumentLocked persists one document slot under the row lock:
	// the submission guard runs first, then persist writes the blob and
	// returns its locator, which is stored on the applicant. A locked or
	// missing applicant means persist is never invoked, so no bytes are
	// written.
	StoreDocumentLocked(ctx context.Context, id uuid.UUID, category models.DocumentCategory, persist func(ctx context.Context) (string, error)) (string, error)

	// Submit runs the DRAFT -> SUBMITTED transition. The evaluate callback
	// sees a consistent snapshot of the aggregate (applicant row plus child
	// counts) under the row lock and decides whether the transition fires.
	Submit(ctx context.Context, id uuid.UUID, evaluate func(a *models.Applicant, qualCount, expCount int) error) error
}

type applicantRepo struct {
	db DB
}

func NewApplicantRepository(db DB) ApplicantRepository {
	return &applicantRepo{db: db}
}

func baseSelectApplicant() string {
	return `
        SELECT id, full_name, father_name, cnic, email, username, password,
               cell_no, dob, gender, post_id, district_id, other_district, address,
               url_profile_pic, url_cv, url_cnic, url_academic_certs, url_experience_certs,
               submission_status, created_at, updated_at
        FROM applicants
    `
}

func scanApplicant(row pgx.Row) (*models.Applicant, error) {
	var a models.Applicant
	err := row.Scan(
		&a.ID, &a.FullName, &a.FatherName, &a.CNIC, &a.Email, &a.Username, &a.Password,
		&a.CellNo, &a.DOB, &a.Gender, &a.PostID, &a.DistrictID, &a.OtherDistrict, &a.Address,
		&a.URLProfilePic, &a.URLCv, &a.URLCnic, &a.URLAcademicCerts, &a.URLExperienceCerts,
		&a.SubmissionStatus, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicantRepo) Create(ctx context.Context, a *models.Applicant) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO applicants (id, full_name, cnic, email, username, password, post_id, submission_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, a.ID, a.FullName, a.CNIC, a.Email, a.Username, a.Password, a.PostID, models.SubmissionStatusDraft)
	return err
}

func (r *applicantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error) {
	row := r.db.QueryRow(ctx, baseSelectApplicant()+" WHERE id=$1", id)
	return scanApplicant(row)
}

func (r *applicantRepo) GetByUsername(ctx context.Context, username string) (*models.Applicant, error) {
	row := r.db.QueryRow(ctx, baseSelectApplicant()+" WHERE username=$1", username)
	return scanApplicant(row)
}

func (r *applicantRepo) FindByIdentity(ctx context.Context, email, username, cnic string) (*models.Applicant, error) {
	row := r.db.QueryRow(ctx,
		baseSelectApplicant()+" WHERE email=$1 OR username=$2 OR cnic=$3 LIMIT 1",
		email, username, cnic)
	return scanApplicant(row)
}

func (r *applicantRepo) UpdateProfileLocked(
	ctx context.Context,
	id uuid.UUID,
	mutate func(*models.Applicant) error,
) (*models.Applicant, error) {
	var updated *models.Applicant

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, baseSelectApplicant()+" WHERE id=$1 FOR UPDATE", id)
		a, err := scanApplicant(row)
		if err != nil {
			return err
		}
		if a == nil {
			return pgx.ErrNoRows
		}
		if gErr := ensureDraft(a.SubmissionStatus); gErr != nil {
			return gErr
		}

		if mErr := mutate(a); mErr != nil {
			return mErr
		}

		_, err = tx.Exec(ctx, `
            UPDATE applicants
            SET full_name=$1, father_name=$2, cnic=$3, email=$4, username=$5,
                cell_no=$6, dob=$7, gender=$8, post_id=$9, district_id=$10,
                other_district=$11, address=$12, updated_at=NOW()
            WHERE id=$13
        `,
			a.FullName, a.FatherName, a.CNIC, a.Email, a.Username,
			a.CellNo, a.DOB, a.Gender, a.PostID, a.DistrictID,
			a.OtherDistrict, a.Address, id,
		)
		if err != nil {
			return err
		}

		newRow := tx.QueryRow(ctx, baseSelectApplicant()+" WHERE id=$1", id)
		updated, err = scanApplicant(newRow)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// documentColumns whitelists the URL column each upload slot may touch.
var documentColumns = map[models.DocumentCategory]string{
	models.DocumentProfilePicture:  "url_profile_pic",
	models.DocumentCNIC:            "url_cnic",
	models.DocumentCV:              "url_cv",
	models.DocumentAcademicCerts:   "url_academic_certs",
	models.DocumentExperienceCerts: "url_experience_certs",
}

func (r *applicantRepo) StoreDocumentLocked(
	ctx context.Context,
	id uuid.UUID,
	category models.DocumentCategory,
	persist func(ctx context.Context) (string, error),
) (string, error) {
	column, ok := documentColumns[category]
	if !ok {
		return "", errors.New("unknown document category")
	}

	var url string
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		status, err := lockApplicantStatus(ctx, tx, id)
		if err != nil {
			return err
		}
		if gErr := ensureDraft(status); gErr != nil {
			return gErr
		}

		// Slots are fixed paths, so the blob write must not happen until
		// the guard has passed: a rejected upload leaves the published
		// file untouched.
		url, err = persist(ctx)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE applicants SET `+column+`=$1, updated_at=NOW() WHERE id=$2`, url, id)
		return err
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

func (r *applicantRepo) Submit(
	ctx context.Context,
	id uuid.UUID,
	evaluate func(a *models.Applicant, qualCount, expCount int) error,
) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, baseSelectApplicant()+" WHERE id=$1 FOR UPDATE", id)
		a, err := scanApplicant(row)
		if err != nil {
			return err
		}
		if a == nil {
			return pgx.ErrNoRows
		}

		var qualCount, expCount int
		if err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM qualifications WHERE applicant_id=$1`, id).Scan(&qualCount); err != nil {
			return err
		}
		if err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM experiences WHERE applicant_id=$1`, id).Scan(&expCount); err != nil {
			return err
		}

		if eErr := evaluate(a, qualCount, expCount); eErr != nil {
			return eErr
		}

		_, err = tx.Exec(ctx, `
            UPDATE applicants
            SET submission_status=$1, updated_at=NOW()
            WHERE id=$2
        `, models.SubmissionStatusSubmitted, id)
		return err
	})
}
