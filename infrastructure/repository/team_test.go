package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_CreateWithManager(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTeamRepository(conn)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO teams").
		WithArgs("TXYZ123", "Alpha", int64(20240001)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(4), now, now))
	mock.ExpectExec("UPDATE sales_members SET team_id = \\$1").
		WithArgs(int64(4), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	team, err := repo.CreateWithManager(context.Background(), &domain.Team{
		TeamCode:        "TXYZ123",
		TeamName:        "Alpha",
		TeamManagerCode: 20240001,
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(4), team.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_CreateWithManager_RollbackWhenManagerUpdateFails(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTeamRepository(conn)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO teams").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(4), now, now))
	mock.ExpectExec("UPDATE sales_members").
		WillReturnError(errors.New("falha de conexão"))
	mock.ExpectRollback()

	team, err := repo.CreateWithManager(context.Background(), &domain.Team{TeamCode: "T1", TeamName: "Alpha"}, 1)

	assert.Error(t, err)
	assert.Nil(t, team)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_SoftDelete(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTeamRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sales_members SET team_id = \\$1").
		WithArgs(nil, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE teams SET deleted = \\$1").
		WithArgs(true, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SoftDelete(context.Background(), 4)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_GetByCode_NotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTeamRepository(conn)

	mock.ExpectQuery("FROM teams WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	team, err := repo.GetByCode(context.Background(), "TNONE00")

	assert.NoError(t, err)
	assert.Nil(t, team)
}
