package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/cache"
	cacheMocks "github.com/alioth/insurance-sales-api/infrastructure/cache/mocks"
	"github.com/alioth/insurance-sales-api/infrastructure/repository/mocks"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ref = time.Date(2024, 8, 17, 15, 0, 0, 0, time.UTC)

func TestService_MemberSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monthStart := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	key := "stats:sales-member:month:2024-08-01"

	tests := []struct {
		name  string
		setup func(repo *mocks.MockContractRepository, c *cacheMocks.MockCache)
	}{
		{
			name: "Cache vazio calcula e grava",
			setup: func(repo *mocks.MockContractRepository, c *cacheMocks.MockCache) {
				c.EXPECT().Get(gomock.Any(), key).Return(nil, cache.ErrCacheMiss)
				repo.EXPECT().ListSalesRecords(gomock.Any(), monthStart, monthEnd).Return(sampleRecords(), nil)
				c.EXPECT().Set(gomock.Any(), key, gomock.Any(), 5*time.Minute).Return(nil)
			},
		},
		{
			name: "Resultado vem do cache",
			setup: func(repo *mocks.MockContractRepository, c *cacheMocks.MockCache) {
				data, err := json.Marshal(aggregateByMember(sampleRecords()))
				require.NoError(t, err)
				c.EXPECT().Get(gomock.Any(), key).Return(data, nil)
			},
		},
		{
			name: "Falha do cache não interrompe o cálculo",
			setup: func(repo *mocks.MockContractRepository, c *cacheMocks.MockCache) {
				c.EXPECT().Get(gomock.Any(), key).Return(nil, errors.New("conexão recusada"))
				repo.EXPECT().ListSalesRecords(gomock.Any(), monthStart, monthEnd).Return(sampleRecords(), nil)
				c.EXPECT().Set(gomock.Any(), key, gomock.Any(), 5*time.Minute).Return(errors.New("conexão recusada"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockContractRepository(ctrl)
			c := cacheMocks.NewMockCache(ctrl)
			tt.setup(repo, c)

			result, err := NewService(repo, c, 5*time.Minute).MemberSales(context.Background(), "month", ref)
			require.NoError(t, err)
			require.Len(t, result, 3)
			assert.Equal(t, int64(20240001), result[0].SalesMemberCode)
			assert.Equal(t, int64(300), result[0].ContractPrice)
		})
	}
}

func TestService_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockContractRepository(ctrl), cacheMocks.NewMockCache(ctrl), time.Minute)

	_, err := service.MemberSales(context.Background(), "week", ref)
	assert.Equal(t, apiErrors.ErrInvalidPeriod, apiErrors.CodeOf(err))

	_, err = service.TeamSales(context.Background(), "", ref)
	assert.Equal(t, apiErrors.ErrInvalidPeriod, apiErrors.CodeOf(err))

	_, err = service.HQSales(context.Background(), "decade", ref)
	assert.Equal(t, apiErrors.ErrInvalidPeriod, apiErrors.CodeOf(err))
}

func TestService_QuarterWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockContractRepository(ctrl)
	c := cacheMocks.NewMockCache(ctrl)

	c.EXPECT().Get(gomock.Any(), "stats:sales-hq:quarter:2024-07-01").Return(nil, cache.ErrCacheMiss)
	repo.EXPECT().ListSalesRecords(gomock.Any(),
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
	).Return(nil, nil)
	c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := NewService(repo, c, time.Minute).HQSales(context.Background(), "quarter", ref)
	require.NoError(t, err)
	assert.Equal(t, []domain.HQSales{{}}, result)
}

func TestService_ProductRankUsesDayWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockContractRepository(ctrl)
	c := cacheMocks.NewMockCache(ctrl)

	c.EXPECT().Get(gomock.Any(), "stats:contract-rank-count:day:2024-08-17").Return(nil, cache.ErrCacheMiss)
	repo.EXPECT().ListSalesRecords(gomock.Any(),
		time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 8, 18, 0, 0, 0, 0, time.UTC),
	).Return(sampleRecords(), nil)
	c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := NewService(repo, c, time.Minute).ProductRankByCount(context.Background(), ref)
	require.NoError(t, err)
	require.NotEmpty(t, result)
	assert.Equal(t, 1, result[0].Rank)
}

func TestService_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockContractRepository(ctrl)
	c := cacheMocks.NewMockCache(ctrl)

	c.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, cache.ErrCacheMiss)
	repo.EXPECT().ListSalesRecords(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := NewService(repo, c, time.Minute).TeamSales(context.Background(), "day", ref)
	require.Error(t, err)
	assert.Empty(t, apiErrors.CodeOf(err))
}
