package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository/mocks"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ref = time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)

func id(v int64) *int64 {
	return &v
}

func record(memberID, code int64, review string, team *int64, teamCode, teamReview string, price int64, status domain.ContractStatus) *domain.SalesRecord {
	return &domain.SalesRecord{
		ContractTotalPrice:      price,
		ContractCount:           1,
		ContractStatus:          status,
		SalesMemberID:           memberID,
		SalesMemberCode:         code,
		SalesMemberName:         "M" + teamCode,
		MemberPerformanceReview: review,
		TeamID:                  team,
		TeamCode:                teamCode,
		TeamName:                "Time " + teamCode,
		TeamPerformanceReview:   teamReview,
	}
}

func withCount(r *domain.SalesRecord, count int64) *domain.SalesRecord {
	r.ContractCount = count
	return r
}

func team(id int64, code, review string) *domain.Team {
	return &domain.Team{ID: id, TeamCode: code, TeamName: "Time " + code, PerformanceReview: review}
}

func expectMonth(repo *mocks.MockContractRepository, records []*domain.SalesRecord) {
	repo.EXPECT().ListSalesRecords(gomock.Any(),
		time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	).Return(records, nil)
}

func TestService_SalesGod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		records       []*domain.SalesRecord
		expectedPrice int64
		expectedCount int64
		expectedName  string
		expectedCode  string
	}{
		{
			name: "Maior venda entre membros A",
			records: []*domain.SalesRecord{
				record(1, 20240001, "A", id(1), "T1", "A", 100, domain.ContractStatusOngoing),
				record(1, 20240001, "A", id(1), "T1", "A", 150, domain.ContractStatusOngoing),
				record(2, 20240002, "B", id(1), "T2", "A", 1000, domain.ContractStatusOngoing),
				record(3, 20240003, "A", id(1), "T3", "A", 200, domain.ContractStatusOngoing),
			},
			expectedPrice: 250,
			expectedCount: 2,
			expectedName:  "MT1",
		},
		{
			name: "Contrato cancelado entra na soma do membro",
			records: []*domain.SalesRecord{
				record(1, 20240001, "A", id(1), "T1", "A", 250, domain.ContractStatusOngoing),
				record(3, 20240003, "A", id(1), "T3", "A", 200, domain.ContractStatusOngoing),
				record(3, 20240003, "A", id(1), "T3", "A", 500, domain.ContractStatusCancellation),
			},
			expectedPrice: 700,
			expectedCount: 2,
			expectedName:  "MT3",
		},
		{
			name: "Quantidade soma contract_count",
			records: []*domain.SalesRecord{
				withCount(record(1, 20240001, "A", id(1), "T1", "A", 300, domain.ContractStatusOngoing), 3),
				withCount(record(1, 20240001, "A", id(1), "T1", "A", 100, domain.ContractStatusMaturity), 2),
			},
			expectedPrice: 400,
			expectedCount: 5,
			expectedName:  "MT1",
		},
		{
			name: "Empate fica com o menor código",
			records: []*domain.SalesRecord{
				record(5, 20240005, "A", nil, "X", "", 300, domain.ContractStatusOngoing),
				record(4, 20240004, "A", nil, "Y", "", 300, domain.ContractStatusOngoing),
			},
			expectedPrice: 300,
			expectedCount: 1,
			expectedName:  "MY",
		},
		{
			name: "Sem membros A",
			records: []*domain.SalesRecord{
				record(2, 20240002, "B", nil, "", "", 1000, domain.ContractStatusOngoing),
			},
			expectedCode: apiErrors.ErrNoSalesData,
		},
		{
			name:         "Mês sem contratos",
			expectedCode: apiErrors.ErrNoSalesData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockContractRepository(ctrl)
			expectMonth(repo, tt.records)

			result, err := NewService(repo, mocks.NewMockTeamRepository(ctrl)).SalesGod(context.Background(), ref)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, apiErrors.CodeOf(err))
				assert.True(t, errors.Is(err, ErrNoSalesData))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, result.Name)
			assert.Equal(t, tt.expectedPrice, result.Price)
			assert.Equal(t, tt.expectedCount, result.Count)
		})
	}
}

func TestService_BestTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		teams         []*domain.Team
		records       []*domain.SalesRecord
		skipContracts bool
		expectedName  string
		expectedPrice int64
		expectedCount int64
		expectedCode  string
	}{
		{
			name:  "Time A com maior venda",
			teams: []*domain.Team{team(1, "TAAAAAA", "A"), team(2, "TBBBBBB", "B"), team(3, "TCCCCCC", "A")},
			records: []*domain.SalesRecord{
				record(1, 20240001, "C", id(1), "TAAAAAA", "A", 400, domain.ContractStatusOngoing),
				record(2, 20240002, "A", id(1), "TAAAAAA", "A", 100, domain.ContractStatusMaturity),
				record(3, 20240003, "A", id(2), "TBBBBBB", "B", 9000, domain.ContractStatusOngoing),
				record(4, 20240004, "A", id(3), "TCCCCCC", "A", 450, domain.ContractStatusOngoing),
				record(4, 20240004, "A", id(3), "TCCCCCC", "A", 450, domain.ContractStatusCancellation),
				record(5, 20240005, "A", nil, "", "", 9999, domain.ContractStatusOngoing),
			},
			expectedName:  "Time TAAAAAA",
			expectedPrice: 500,
			expectedCount: 2,
		},
		{
			name:  "Time A sem vendas no mês devolve totais zerados",
			teams: []*domain.Team{team(1, "T1", "A")},
			records: []*domain.SalesRecord{
				record(1, 20240001, "A", id(1), "T1", "A", 300, domain.ContractStatusCancellation),
			},
			expectedName: "Time T1",
		},
		{
			name:          "Nenhum time A",
			teams:         []*domain.Team{team(2, "TBBBBBB", "B")},
			skipContracts: true,
			expectedCode:  apiErrors.ErrNoSalesData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contractRepo := mocks.NewMockContractRepository(ctrl)
			teamRepo := mocks.NewMockTeamRepository(ctrl)
			teamRepo.EXPECT().List(gomock.Any()).Return(tt.teams, nil)
			if !tt.skipContracts {
				expectMonth(contractRepo, tt.records)
			}

			result, err := NewService(contractRepo, teamRepo).BestTeam(context.Background(), ref)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, apiErrors.CodeOf(err))
				assert.True(t, errors.Is(err, ErrNoSalesData))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, result.TeamName)
			assert.Equal(t, tt.expectedPrice, result.Price)
			assert.Equal(t, tt.expectedCount, result.Count)
		})
	}
}
