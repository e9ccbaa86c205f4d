package contract

import (
	"context"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/alioth/insurance-sales-api/pkg/utils"
	"github.com/pkg/errors"
)

// ListFilter é o filtro recebido pela API; o código do membro é resolvido
// para o id interno antes da consulta
type ListFilter struct {
	MemberCode *int64
	Status     domain.ContractStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

type ContractService interface {
	Create(ctx context.Context, claims *domain.Claims, req *domain.CreateContractRequest) (*domain.Contract, error)
	Get(ctx context.Context, claims *domain.Claims, id int64) (*domain.Contract, error)
	List(ctx context.Context, claims *domain.Claims, filter ListFilter) ([]*domain.Contract, error)
	Update(ctx context.Context, claims *domain.Claims, id int64, req *domain.UpdateContractRequest) (*domain.Contract, error)
	Cancel(ctx context.Context, claims *domain.Claims, id int64) error
}

type Service struct {
	contractRepo repository.ContractRepository
	memberRepo   repository.SalesMemberRepository
	catalogRepo  repository.CatalogRepository
	generateCode func() (string, error)
}

func NewService(
	contractRepo repository.ContractRepository,
	memberRepo repository.SalesMemberRepository,
	catalogRepo repository.CatalogRepository,
) ContractService {
	return &Service{
		contractRepo: contractRepo,
		memberRepo:   memberRepo,
		catalogRepo:  catalogRepo,
		generateCode: utils.GenerateContractCode,
	}
}

func (s *Service) Create(ctx context.Context, claims *domain.Claims, req *domain.CreateContractRequest) (*domain.Contract, error) {
	if req.InsuranceProductID == 0 || req.CustomerID == 0 || req.ContractMemberID == 0 {
		return nil, NewContractError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "produto, cliente e segurado são obrigatórios")
	}

	if req.ContractTotalPrice < 0 || req.ContractPaymentAmount < 0 {
		return nil, NewContractError(ErrInvalidValue, apiErrors.ErrInvalidFormat, "valores negativos")
	}

	if req.ContractStatus == "" {
		req.ContractStatus = domain.ContractStatusOngoing
	}
	if !req.ContractStatus.Valid() {
		return nil, NewContractError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, string(req.ContractStatus))
	}

	sellerCode := claims.MemberCode
	if req.SalesMemberCode != nil && *req.SalesMemberCode != claims.MemberCode {
		if !claims.IsManagerOrAdmin() {
			return nil, NewContractError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "apenas gerentes registram contratos de outros membros")
		}
		sellerCode = *req.SalesMemberCode
	}

	seller, err := s.memberRepo.GetByCode(ctx, sellerCode)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendedor")
	}
	if seller == nil || seller.Quit {
		return nil, NewContractError(ErrMemberNotFound, apiErrors.ErrMemberNotFound, "")
	}

	product, err := s.catalogRepo.GetProduct(ctx, req.InsuranceProductID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produto")
	}
	if product == nil {
		return nil, NewContractError(ErrMissingRequiredData, apiErrors.ErrCatalogNotFound, "produto")
	}

	customer, err := s.catalogRepo.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar cliente")
	}
	if customer == nil {
		return nil, NewContractError(ErrMissingRequiredData, apiErrors.ErrCatalogNotFound, "cliente")
	}

	insured, err := s.catalogRepo.GetContractMember(ctx, req.ContractMemberID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar segurado")
	}
	if insured == nil {
		return nil, NewContractError(ErrMissingRequiredData, apiErrors.ErrCatalogNotFound, "segurado")
	}

	code, err := s.generateCode()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar código do contrato")
	}

	contract, err := s.contractRepo.Create(ctx, &domain.Contract{
		ContractCode:                       code,
		ContractDate:                       req.ContractDate,
		ContractExpireDate:                 req.ContractExpireDate,
		ContractPeriod:                     req.ContractPeriod,
		ContractTotalPrice:                 req.ContractTotalPrice,
		ContractPaymentAmount:              req.ContractPaymentAmount,
		ContractPaymentFrequency:           req.ContractPaymentFrequency,
		ContractPaymentMaturityInstallment: req.ContractPaymentMaturityInstallment,
		ContractCount:                      req.ContractCount,
		ContractPaymentMethod:              req.ContractPaymentMethod,
		ContractPayer:                      req.ContractPayer,
		ContractConsultation:               req.ContractConsultation,
		ContractStatus:                     req.ContractStatus,
		ContractMemberID:                   insured.ID,
		CustomerID:                         customer.ID,
		InsuranceProductID:                 product.ID,
		SalesMemberID:                      seller.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewContractError(err, apiErrors.ErrAlreadyExists, code)
		}
		return nil, errors.Wrap(err, "erro ao criar contrato")
	}

	contract.InsuranceProductName = product.InsuranceName
	contract.CustomerName = customer.CustomerName
	contract.ContractMemberName = insured.CMName
	contract.SalesMemberName = seller.Name
	contract.SalesMemberCode = seller.SalesMemberCode

	log.ForContext(ctx).WithFields(log.Fields{
		"contract_code": contract.ContractCode,
		"member_code":   seller.SalesMemberCode,
	}).Info("Contrato registrado")

	return contract, nil
}

func (s *Service) Get(ctx context.Context, claims *domain.Claims, id int64) (*domain.Contract, error) {
	return s.getVisible(ctx, claims, id)
}

// List restringe FP aos próprios contratos, ignorando o filtro de membro
func (s *Service) List(ctx context.Context, claims *domain.Claims, filter ListFilter) ([]*domain.Contract, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, NewContractError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, string(filter.Status))
	}

	repoFilter := domain.ContractFilter{
		Status:    filter.Status,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}

	switch {
	case !claims.IsManagerOrAdmin():
		memberID := claims.MemberID
		repoFilter.SalesMemberID = &memberID
	case filter.MemberCode != nil:
		member, err := s.memberRepo.GetByCode(ctx, *filter.MemberCode)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar membro")
		}
		if member == nil {
			return []*domain.Contract{}, nil
		}
		repoFilter.SalesMemberID = &member.ID
	}

	contracts, err := s.contractRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar contratos")
	}

	return contracts, nil
}

func (s *Service) Update(ctx context.Context, claims *domain.Claims, id int64, req *domain.UpdateContractRequest) (*domain.Contract, error) {
	contract, err := s.getVisible(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if req.ContractExpireDate != nil {
		contract.ContractExpireDate = *req.ContractExpireDate
	}
	if req.ContractPeriod != nil {
		contract.ContractPeriod = *req.ContractPeriod
	}
	if req.ContractTotalPrice != nil {
		if *req.ContractTotalPrice < 0 {
			return nil, NewContractError(ErrInvalidValue, apiErrors.ErrInvalidFormat, "contractTotalPrice")
		}
		contract.ContractTotalPrice = *req.ContractTotalPrice
	}
	if req.ContractPaymentAmount != nil {
		if *req.ContractPaymentAmount < 0 {
			return nil, NewContractError(ErrInvalidValue, apiErrors.ErrInvalidFormat, "contractPaymentAmount")
		}
		contract.ContractPaymentAmount = *req.ContractPaymentAmount
	}
	if req.ContractPaymentFrequency != nil {
		contract.ContractPaymentFrequency = *req.ContractPaymentFrequency
	}
	if req.ContractPaymentMaturityInstallment != nil {
		contract.ContractPaymentMaturityInstallment = *req.ContractPaymentMaturityInstallment
	}
	if req.ContractCount != nil {
		contract.ContractCount = *req.ContractCount
	}
	if req.ContractPaymentMethod != nil {
		contract.ContractPaymentMethod = *req.ContractPaymentMethod
	}
	if req.ContractPayer != nil {
		contract.ContractPayer = *req.ContractPayer
	}
	if req.ContractConsultation != nil {
		contract.ContractConsultation = *req.ContractConsultation
	}
	if req.ContractStatus != nil {
		if !req.ContractStatus.Valid() {
			return nil, NewContractError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, string(*req.ContractStatus))
		}
		contract.ContractStatus = *req.ContractStatus
	}

	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar contrato")
	}

	return contract, nil
}

func (s *Service) Cancel(ctx context.Context, claims *domain.Claims, id int64) error {
	contract, err := s.getVisible(ctx, claims, id)
	if err != nil {
		return err
	}

	if contract.IsCancelled() {
		return NewContractError(ErrAlreadyCancelled, apiErrors.ErrInvalidRequest, contract.ContractCode)
	}

	if err := s.contractRepo.UpdateStatus(ctx, contract.ID, domain.ContractStatusCancellation); err != nil {
		return errors.Wrap(err, "erro ao cancelar contrato")
	}

	log.ForContext(ctx).WithField("contract_code", contract.ContractCode).Info("Contrato cancelado")
	return nil
}

func (s *Service) getVisible(ctx context.Context, claims *domain.Claims, id int64) (*domain.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar contrato")
	}
	if contract == nil {
		return nil, NewContractError(ErrContractNotFound, apiErrors.ErrContractNotFound, "")
	}

	if !claims.IsManagerOrAdmin() && contract.SalesMemberID != claims.MemberID {
		return nil, NewContractError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "contrato de outro membro")
	}

	return contract, nil
}
