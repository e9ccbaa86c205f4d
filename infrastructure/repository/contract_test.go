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

func TestContractRepository_ListSalesRecords(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewContractRepository(conn)

	start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	created := start.Add(48 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "contract_total_price", "contract_count", "contract_status", "created_at",
		"sm_id", "sales_member_code", "name", "performance_review",
		"t_id", "team_code", "team_name", "team_review",
		"ip_id", "insurance_name",
	}).
		AddRow(int64(1), int64(500000), int64(3), "Ongoing", created, int64(2), int64(20240002), "Kim", "A", int64(1), "TAAA111", "Alpha", "A", int64(9), "Life").
		AddRow(int64(2), int64(100000), int64(1), "Cancellation", created, int64(3), int64(20240003), "Lee", "B", nil, "", "", "", int64(9), "Life")

	mock.ExpectQuery("FROM contracts c JOIN sales_members sm").
		WithArgs(start, end).
		WillReturnRows(rows)

	records, err := repo.ListSalesRecords(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(500000), records[0].ContractTotalPrice)
	assert.Equal(t, int64(3), records[0].ContractCount)
	assert.Equal(t, "TAAA111", records[0].TeamCode)
	require.NotNil(t, records[0].TeamID)
	assert.Nil(t, records[1].TeamID)
	assert.True(t, records[1].IsCancelled())
	assert.Equal(t, domain.ContractStatusCancellation, records[1].ContractStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_SumMemberSales(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewContractRepository(conn)

	start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(contract_total_price\\), 0\\), COUNT\\(\\*\\) FROM contracts").
		WithArgs(int64(2), domain.ContractStatusCancellation, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow(int64(1500000), int64(3)))

	price, count, err := repo.SumMemberSales(context.Background(), 2, start, end)

	require.NoError(t, err)
	assert.Equal(t, int64(1500000), price)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_List_FiltersByMember(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewContractRepository(conn)
	memberID := int64(2)

	mock.ExpectQuery("WHERE c.sales_member_id = \\$1").
		WithArgs(memberID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	contracts, err := repo.List(context.Background(), domain.ContractFilter{SalesMemberID: &memberID})

	require.NoError(t, err)
	assert.Empty(t, contracts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
