package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/models"
)

type QualificationRepository interface {
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Qualification, error)
	GetByID(ctx context.Context, id, applicantID uuid.UUID) (*models.Qualification, error)

	CreateLocked(ctx context.Context, q *models.Qualification) error
	UpdateLocked(ctx context.Context, id, applicantID uuid.UUID, mutate func(*models.Qualification) error) (*models.Qualification, error)
	DeleteLocked(ctx context.Context, id, applicantID uuid.UUID) error
}

type qualificationRepo struct {
	db DB
}

func NewQualificationRepository(db DB) QualificationRepository {
	return &qualificationRepo{db: db}
}

func baseSelectQualification() string {
	return `
        SELECT id, applicant_id, degree_type, degree_type_other, field_of_study,
               field_of_study_other, institution_name, institution_country,
               institution_country_other, graduation_year, grade, duration_months,
               is_foreign, notes, created_at
        FROM qualifications
    `
}

func scanQualification(row pgx.Row) (*models.Qualification, error) {
	var q models.Qualification
	err := row.Scan(
		&q.ID, &q.ApplicantID, &q.DegreeType, &q.DegreeTypeOther, &q.FieldOfStudy,
		&q.FieldOfStudyOther, &q.InstitutionName, &q.InstitutionCountry,
		&q.InstitutionCountryOther, &q.GraduationYear, &q.Grade, &q.DurationMonths,
		&q.IsForeign, &q.Notes, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *qualificationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Qualification, error) {
	rows, err := r.db.Query(ctx,
		baseSelectQualification()+" WHERE applicant_id=$1 ORDER BY created_at ASC", applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Qualification
	for rows.Next() {
		q, sErr := scanQualification(rows)
		if sErr != nil {
			return nil, sErr
		}
		out = append(out, *q)
	}
	return out, rows.Err()
}

func (r *qualificationRepo) GetByID(ctx context.Context, id, applicantID uuid.UUID) (*models.Qualification, error) {
	row := r.db.QueryRow(ctx,
		baseSelectQualification()+" WHERE id=$1 AND applicant_id=$2", id, applicantID)
	return scanQualification(row)
}

func (r *qualificationRepo) CreateLocked(ctx context.Context, q *models.Qualification) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		status, err := lockApplicantStatus(ctx, tx, q.ApplicantID)
		if err != nil {
			return err
		}
		if gErr := ensureDraft(status); gErr != nil {
			return gErr
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO qualifications (
                id, applicant_id, degree_type, degree_type_other, field_of_study,
                field_of_study_other, institution_name, institution_country,
                institution_country_other, graduation_year, grade, duration_months,
                is_foreign, notes, created_at
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,NOW())
        `,
			q.ID, q.ApplicantID, q.DegreeType, q.DegreeTypeOther, q.FieldOfStudy,
			q.FieldOfStudyOther, q.InstitutionName, q.InstitutionCountry,
			q.InstitutionCountryOther, q.GraduationYear, q.Grade, q.DurationMonths,
			q.IsForeign, q.Notes,
		)
		return err
	})
}

func (r *qualificationRepo) UpdateLocked(
	ctx context.Context,
	id, applicantID uuid.UUID,
	mutate func(*models.Qualification) error,
) (*models.Qualification, error) {
	var updated *models.Qualification

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		status, err := lockApplicantStatus(ctx, tx, applicantID)
		if err != nil {
			return err
		}
		if gErr := ensureDraft(status); gErr != nil {
			return gErr
		}

		row := tx.QueryRow(ctx,
			baseSelectQualification()+" WHERE id=$1 AND applicant_id=$2", id, applicantID)
		q, err := scanQualification(row)
		if err != nil {
			return err
		}
		if q == nil {
			return pgx.ErrNoRows
		}

		if mErr := mutate(q); mErr != nil {
			return mErr
		}

		_, err = tx.Exec(ctx, `
            UPDATE qualifications
            SET degree_type=$1, degree_type_other=$2, field_of_study=$3,
                field_of_study_other=$4, institution_name=$5, institution_country=$6,
                institution_country_other=$7, graduation_year=$8, grade=$9,
                duration_months=$10, is_foreign=$11, notes=$12
            WHERE id=$13
        `,
			q.DegreeType, q.DegreeTypeOther, q.FieldOfStudy,
			q.FieldOfStudyOther, q.InstitutionName, q.InstitutionCountry,
			q.InstitutionCountryOther, q.GraduationYear, q.Grade,
			q.DurationMonths, q.IsForeign, q.Notes, id,
		)
		if err != nil {
			return err
		}

		updated = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *qualificationRepo) DeleteLocked(ctx context.Context, id, applicantID uuid.UUID) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		status, err := lockApplicantStatus(ctx, tx, applicantID)
		if err != nil {
			return err
		}
		if gErr := ensureDraft(status); gErr != nil {
			return gErr
		}

		tag, err := tx.Exec(ctx,
			`DELETE FROM qualifications WHERE id=$1 AND applicant_id=$2`, id, applicantID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}
