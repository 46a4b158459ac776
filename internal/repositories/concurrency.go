package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Hafizirfan96/spu-backend/internal/models"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

/*
Every mutation of an application (profile scalars, child records, document
slots, the submit transition itself) must observe a consistent view of the
applicant's submission status: an edit must not slip in after the lock is
set, and a submit must not read a half-applied edit. The applicant row is
the unit of mutual exclusion, so each mutating repository method runs inside
a transaction that first takes a row lock on the applicant.
*/

// lockApplicantStatus locks the applicant row for the duration of tx and
// returns its current submission status. Returns pgx.ErrNoRows when the
// applicant does not exist.
func lockApplicantStatus(ctx context.Context, tx pgx.Tx, applicantID uuid.UUID) (string, error) {
	var status string
	row := tx.QueryRow(ctx,
		`SELECT submission_status FROM applicants WHERE id=$1 FOR UPDATE`, applicantID)
	if err := row.Scan(&status); err != nil {
		return "", err
	}
	return status, nil
}

// ensureDraft is the shared mutation guard: any write against a SUBMITTED
// application is rejected, uniformly, before state is touched.
func ensureDraft(status string) error {
	if !models.CanMutate(status) {
		return utils.ErrAlreadySubmitted
	}
	return nil
}

// inTx runs fn inside a transaction, committing on nil and rolling back
// on error. A commit failure is the caller's error: the write never
// became visible.
func inTx(ctx context.Context, db DB, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}
