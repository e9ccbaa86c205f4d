package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesRankingRepository_SaveOrUpdate_Empty(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRankingRepository(conn)

	err := repo.SaveOrUpdate(context.Background(), nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRankingRepository_SaveOrUpdate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRankingRepository(conn)

	mock.ExpectExec("INSERT INTO sales_member_ranking (.+) ON CONFLICT \\(sales_member_id, month\\) DO UPDATE SET").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.SaveOrUpdate(context.Background(), []*domain.MemberRankingItem{
		{SalesMemberID: 1, Month: "08-2024", MemberName: "Kim", ContractPrice: 300, ContractCount: 2, Position: 1},
		{SalesMemberID: 2, Month: "08-2024", MemberName: "Lee", ContractPrice: 100, ContractCount: 1, Position: 2},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRankingRepository_GetByMonth(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRankingRepository(conn)
	older := time.Date(2024, 8, 10, 6, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 8, 11, 6, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "sales_member_id", "month", "member_name", "team_name", "contract_price",
		"contract_count", "position", "position_change", "previous_position", "created_at", "updated_at",
	}).
		AddRow(int64(1), int64(1), "08-2024", "Kim", "Alpha", int64(300), int64(2), 1, 1, 2, older, newer).
		AddRow(int64(2), int64(2), "08-2024", "Lee", "", int64(100), int64(1), 2, -1, 1, older, older)

	mock.ExpectQuery("FROM sales_member_ranking smr WHERE smr.month = \\$1 ORDER BY smr.position ASC").
		WithArgs("08-2024").
		WillReturnRows(rows)

	result, err := repo.GetByMonth(context.Background(), "08-2024")

	require.NoError(t, err)
	require.Len(t, result.Ranking, 2)
	assert.Equal(t, "Kim", result.Ranking[0].MemberName)
	assert.Equal(t, -1, result.Ranking[1].PositionChange)
	assert.Equal(t, newer, result.LastUpdate)
}
