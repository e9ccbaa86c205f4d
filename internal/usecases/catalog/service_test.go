package catalog

import (
	"context"
	"testing"

	"github.com/alioth/insurance-sales-api/infrastructure/repository/mocks"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepository(ctrl)
	service := NewService(repo)

	_, err := service.CreateProduct(context.Background(), &domain.InsuranceProduct{InsuranceName: " "})
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErrors.CodeOf(err))

	repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.InsuranceProduct) (*domain.InsuranceProduct, error) {
			p.ID = 1
			return p, nil
		})

	product, err := service.CreateProduct(context.Background(), &domain.InsuranceProduct{
		InsuranceName:     " Seguro Vida ",
		InsuranceCategory: "Vida",
	})
	require.NoError(t, err)
	assert.Equal(t, "Seguro Vida", product.InsuranceName)
}

func TestService_GetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(nil, nil)
	repo.EXPECT().GetCustomer(gomock.Any(), int64(9)).Return(nil, nil)
	repo.EXPECT().GetContractMember(gomock.Any(), int64(9)).Return(nil, nil)

	_, err := service.GetProduct(context.Background(), 9)
	assert.Equal(t, apiErrors.ErrCatalogNotFound, apiErrors.CodeOf(err))

	_, err = service.GetCustomer(context.Background(), 9)
	assert.Equal(t, apiErrors.ErrCatalogNotFound, apiErrors.CodeOf(err))

	_, err = service.GetContractMember(context.Background(), 9)
	assert.Equal(t, apiErrors.ErrCatalogNotFound, apiErrors.CodeOf(err))
}

func TestService_CreateCustomerAndInsured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(&domain.Customer{ID: 1, CustomerName: "Kim"}, nil)
	repo.EXPECT().CreateContractMember(gomock.Any(), gomock.Any()).Return(&domain.ContractMember{ID: 2, CMName: "Lee"}, nil)

	customer, err := service.CreateCustomer(context.Background(), &domain.Customer{CustomerName: "Kim"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)

	cm, err := service.CreateContractMember(context.Background(), &domain.ContractMember{CMName: "Lee"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cm.ID)

	_, err = service.CreateContractMember(context.Background(), &domain.ContractMember{})
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErrors.CodeOf(err))
}
