package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE teams").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	conn := &Connection{DB: db}
	err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE teams SET team_name = 'x'")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	expected := errors.New("falha")
	conn := &Connection{DB: db}
	err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return expected
	})

	assert.ErrorIs(t, err, expected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	conn := &Connection{DB: db}
	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
