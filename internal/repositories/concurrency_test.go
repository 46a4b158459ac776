package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx embeds pgx.Tx for interface satisfaction; only the lifecycle
// methods are implemented.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeTxDB struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeTxDB) Begin(context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func (d *fakeTxDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}

func (d *fakeTxDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (d *fakeTxDB) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func TestInTxCommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	err := inTx(context.Background(), &fakeTxDB{tx: tx}, func(pgx.Tx) error {
		return nil
	})
	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestInTxRollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	boom := errors.New("boom")
	err := inTx(context.Background(), &fakeTxDB{tx: tx}, func(pgx.Tx) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestInTxSurfacesCommitFailure(t *testing.T) {
	commitErr := errors.New("connection reset during commit")
	tx := &fakeTx{commitErr: commitErr}

	err := inTx(context.Background(), &fakeTxDB{tx: tx}, func(pgx.Tx) error {
		return nil
	})

	// The write never became visible, so the caller must see the failure.
	require.ErrorIs(t, err, commitErr)
}

func TestInTxSurfacesBeginFailure(t *testing.T) {
	beginErr := errors.New("pool exhausted")
	err := inTx(context.Background(), &fakeTxDB{beginErr: beginErr}, func(pgx.Tx) error {
		t.Fatal("fn must not run when Begin fails")
		return nil
	})
	require.ErrorIs(t, err, beginErr)
}
