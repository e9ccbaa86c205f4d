package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberRowColumns = []string{
	"id", "sales_member_code", "name", "email", "phone", "password_hash", "birth_day",
	"zone_code", "road_address", "detail_address", "office_address", "extension_number",
	"profile_image", "rank", "performance_review", "team_id", "team_code", "team_name",
	"quit", "created_at", "updated_at",
}

func TestSalesMemberRepository_GetByCode(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesMemberRepository(conn)
	now := time.Now()

	rows := sqlmock.NewRows(memberRowColumns).AddRow(
		int64(7), int64(20240007), "Kim", "kim@alioth.com", "010", "hash", "1990-01-01",
		"12345", "Road 1", "101", "Seoul", "123",
		nil, "MANAGER", "A", int64(3), "TABC123", "Alpha",
		false, now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM sales_members sm LEFT JOIN teams t ON t.id = sm.team_id WHERE sm.sales_member_code = \\$1").
		WithArgs(int64(20240007)).
		WillReturnRows(rows)

	member, err := repo.GetByCode(context.Background(), 20240007)

	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, int64(7), member.ID)
	assert.Equal(t, domain.RankManager, member.Rank)
	assert.Equal(t, "A", member.PerformanceReview)
	require.NotNil(t, member.TeamID)
	assert.Equal(t, int64(3), *member.TeamID)
	require.NotNil(t, member.TeamCode)
	assert.Equal(t, "TABC123", *member.TeamCode)
	assert.Nil(t, member.ProfileImage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesMemberRepository_GetByCode_NotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesMemberRepository(conn)

	mock.ExpectQuery("FROM sales_members sm").
		WillReturnRows(sqlmock.NewRows(memberRowColumns))

	member, err := repo.GetByCode(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, member)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesMemberRepository_GetByCode_WithoutTeam(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesMemberRepository(conn)
	now := time.Now()

	mock.ExpectQuery("FROM sales_members sm").
		WillReturnRows(sqlmock.NewRows(memberRowColumns).AddRow(
			int64(1), int64(20240001), "Lee", "lee@alioth.com", "", "hash", "",
			"", "", "", "", "",
			nil, "FP", "", nil, nil, nil,
			false, now, now,
		))

	member, err := repo.GetByCode(context.Background(), 20240001)

	require.NoError(t, err)
	assert.Nil(t, member.TeamID)
	assert.Nil(t, member.TeamCode)
	assert.Nil(t, member.TeamName)
}

func TestSalesMemberRepository_Create(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesMemberRepository(conn)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO sales_members").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

	member, err := repo.Create(context.Background(), &domain.SalesMember{
		SalesMemberCode: 20240010,
		Name:            "Park",
		Email:           "park@alioth.com",
		PasswordHash:    "hash",
		Rank:            domain.RankFP,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), member.ID)
	assert.Equal(t, now, member.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesMemberRepository_Create_Duplicate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesMemberRepository(conn)

	mock.ExpectQuery("INSERT INTO sales_members").
		WillReturnError(&pq.Error{Code: "23505"})

	member, err := repo.Create(context.Background(), &domain.SalesMember{Email: "dup@alioth.com"})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Nil(t, member)
}

func TestSalesMemberRepository_Quit(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesMemberRepository(conn)

	mock.ExpectExec("UPDATE sales_members SET quit = \\$1, team_id = \\$2").
		WithArgs(true, nil, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Quit(context.Background(), 5)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
