package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alioth/insurance-sales-api/infrastructure/database/postgres"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}
