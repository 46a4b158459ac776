package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/models"
)

type ExperienceRepository interface {
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Experience, error)
	GetByID(ctx context.Context, id, applicantID uuid.UUID) (*models.Experience, error)

	CreateLocked(ctx context.Context, e *models.Experience) error
	UpdateLocked(ctx context.Context, id, applicantID uuid.UUID, mutate func(*models.Experience) error) (*models.Experience, error)
	DeleteLocked(ctx context.Context, id, applicantID uuid.UUID) error
}

type experienceRepo struct {
	db DB
}

func NewExperienceRepository(db DB) ExperienceRepository {
	return &experienceRepo{db: db}
}

func baseSelectExperience() string {
	return `
        SELECT id, applicant_id, organization_name, organization_type, department,
               designation, grade, start_date, end_date, is_current, duties_summary,
               achievements, district_id, country, country_other, created_at
        FROM experiences
    `
}

func scanExperience(row pgx.Row) (*models.Experience, error) {
	var e models.Experience
	err := row.Scan(
		&e.ID, &e.ApplicantID, &e.OrganizationName, &e.OrganizationType, &e.Department,
		&e.Designation, &e.Grade, &e.StartDate, &e.EndDate, &e.IsCurrent, &e.DutiesSummary,
		&e.Achievements, &e.DistrictID, &e.Country, &e.CountryOther, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *experienceRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Experience, error) {
	rows, err := r.db.Query(ctx,
		baseSelectExperience()+" WHERE applicant_id=$1 ORDER BY created_at ASC", applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Experience
	for rows.Next() {
		e, sErr := scanExperience(rows)
		if sErr != nil {
			return nil, sErr
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *experienceRepo) GetByID(ctx context.Context, id, applicantID uuid.UUID) (*models.Experience, error) {
	row := r.db.QueryRow(ctx,
		baseSelectExperience()+" WHERE id=$1 AND applicant_id=$2", id, applicantID)
	return scanExperience(row)
}

func (r *experienceRepo) CreateLocked(ctx context.Context, e *models.Experience) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		status, err := lockApplicantStatus(ctx, tx, e.ApplicantID)
		if err != nil {
			return err
		}
		if gErr := ensureDraft(status); gErr != nil {
			return gErr
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO experiences (
                id, applicant_id, organization_name, organization_type, department,
                designation, grade, start_date, end_date, is_current, duties_summary,
                achievements, district_id, country, country_other, created_at
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,NOW())
        `,
			e.ID, e.ApplicantID, e.OrganizationName, e.OrganizationType, e.Department,
			e.Designation, e.Grade, e.StartDate, e.EndDate, e.IsCurrent, e.DutiesSummary,
			e.Achievements, e.DistrictID, e.Country, e.CountryOther,
		)
		return err
	})
}

func (r *experienceRepo) UpdateLocked(
	ctx context.Context,
	id, applicantID uuid.UUID,
	mutate func(*models.Experience) error,
) (*models.Experience, error) {
	var updated *models.Experience

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		status, err := lockApplicantStatus(ctx, tx, applicantID)
		if err != nil {
			return err
		}
		if gErr := ensureDraft(status); gErr != nil {
			return gErr
		}

		row := tx.QueryRow(ctx,
			baseSelectExperience()+" WHERE id=$1 AND applicant_id=$2", id, applicantID)
		e, err := scanExperience(row)
		if err != nil {
			return err
		}
		if e == nil {
			return pgx.ErrNoRows
		}

		if mErr := mutate(e); mErr != nil {
			return mErr
		}

		_, err = tx.Exec(ctx, `
            UPDATE experiences
            SET organization_name=$1, organization_type=$2, department=$3,
                designation=$4, grade=$5, start_date=$6, end_date=$7, is_current=$8,
                duties_summary=$9, achievements=$10, district_id=$11, country=$12,
                country_other=$13
            WHERE id=$14
        `,
			e.OrganizationName, e.OrganizationType, e.Department,
			e.Designation, e.Grade, e.StartDate, e.EndDate, e.IsCurrent,
			e.DutiesSummary, e.Achievements, e.DistrictID, e.Country,
			e.CountryOther, id,
		)
		if err != nil {
			return err
		}

		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *experienceRepo) DeleteLocked(ctx context.Context, id, applicantID uuid.UUID) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		status, err := lockApplicantStatus(ctx, tx, applicantID)
		if err != nil {
			return err
		}
		if gErr := ensureDraft(status); gErr != nil {
			return gErr
		}

		tag, err := tx.Exec(ctx,
			`DELETE FROM experiences WHERE id=$1 AND applicant_id=$2`, id, applicantID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}
