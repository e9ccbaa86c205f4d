package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	pkgerrors "github.com/pkg/errors"
)

var (
	ErrNotFound            = errors.New("registro não encontrado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

type CatalogError struct {
	Err     error
	Code    string
	Details string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func (e *CatalogError) ErrorCode() string {
	return e.Code
}

// CatalogService mantém os dados de referência usados pelos contratos
type CatalogService interface {
	CreateProduct(ctx context.Context, product *domain.InsuranceProduct) (*domain.InsuranceProduct, error)
	GetProduct(ctx context.Context, id int64) (*domain.InsuranceProduct, error)
	ListProducts(ctx context.Context) ([]*domain.InsuranceProduct, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	CreateContractMember(ctx context.Context, cm *domain.ContractMember) (*domain.ContractMember, error)
	GetContractMember(ctx context.Context, id int64) (*domain.ContractMember, error)
	ListContractMembers(ctx context.Context) ([]*domain.ContractMember, error)
}

type Service struct {
	repo repository.CatalogRepository
}

func NewService(repo repository.CatalogRepository) CatalogService {
	return &Service{repo: repo}
}

func missing(field string) error {
	return &CatalogError{Err: ErrMissingRequiredData, Code: apiErrors.ErrMissingRequiredData, Details: field}
}

func notFound(kind string, id int64) error {
	return &CatalogError{Err: ErrNotFound, Code: apiErrors.ErrCatalogNotFound, Details: fmt.Sprintf("%s %d", kind, id)}
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.InsuranceProduct) (*domain.InsuranceProduct, error) {
	product.InsuranceName = strings.TrimSpace(product.InsuranceName)
	if product.InsuranceName == "" {
		return nil, missing("insuranceName")
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao criar produto")
	}
	return created, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.InsuranceProduct, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar produto")
	}
	if product == nil {
		return nil, notFound("produto", id)
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.InsuranceProduct, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar produtos")
	}
	return products, nil
}

func (s *Service) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	customer.CustomerName = strings.TrimSpace(customer.CustomerName)
	if customer.CustomerName == "" {
		return nil, missing("customerName")
	}

	created, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao criar cliente")
	}
	return created, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar cliente")
	}
	if customer == nil {
		return nil, notFound("cliente", id)
	}
	return customer, nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar clientes")
	}
	return customers, nil
}

func (s *Service) CreateContractMember(ctx context.Context, cm *domain.ContractMember) (*domain.ContractMember, error) {
	cm.CMName = strings.TrimSpace(cm.CMName)
	if cm.CMName == "" {
		return nil, missing("cmName")
	}

	created, err := s.repo.CreateContractMember(ctx, cm)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao criar segurado")
	}
	return created, nil
}

func (s *Service) GetContractMember(ctx context.Context, id int64) (*domain.ContractMember, error) {
	cm, err := s.repo.GetContractMember(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar segurado")
	}
	if cm == nil {
		return nil, notFound("segurado", id)
	}
	return cm, nil
}

func (s *Service) ListContractMembers(ctx context.Context) ([]*domain.ContractMember, error) {
	members, err := s.repo.ListContractMembers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar segurados")
	}
	return members, nil
}
