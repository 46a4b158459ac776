package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCountRow struct {
	count int
	err   error
}

func (r *fakeCountRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.count
	return nil
}

type fakeCounterDB struct {
	row *fakeCountRow
}

func (d *fakeCounterDB) Begin(context.Context) (pgx.Tx, error) { return nil, nil }

func (d *fakeCounterDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}

func (d *fakeCounterDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (d *fakeCounterDB) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return d.row
}

func TestIncrementAndCheckWithinLimit(t *testing.T) {
	repo := NewRateLimitRepository(&fakeCounterDB{row: &fakeCountRow{count: 5}})

	allowed, err := repo.IncrementAndCheck(context.Background(), "email:global", 5, time.Hour)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestIncrementAndCheckOverLimit(t *testing.T) {
	repo := NewRateLimitRepository(&fakeCounterDB{row: &fakeCountRow{count: 6}})

	allowed, err := repo.IncrementAndCheck(context.Background(), "email:global", 5, time.Hour)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestIncrementAndCheckSurfacesDBError(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := NewRateLimitRepository(&fakeCounterDB{row: &fakeCountRow{err: dbErr}})

	allowed, err := repo.IncrementAndCheck(context.Background(), "email:global", 5, time.Hour)
	require.ErrorIs(t, err, dbErr)
	assert.False(t, allowed)
}
