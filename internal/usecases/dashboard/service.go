package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	pkgerrors "github.com/pkg/errors"
)

var ErrNoSalesData = errors.New("nenhuma venda elegível no mês")

type DashboardError struct {
	Err  error
	Code string
}

func (e *DashboardError) Error() string {
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func (e *DashboardError) ErrorCode() string {
	return e.Code
}

var errNoSalesData = &DashboardError{Err: ErrNoSalesData, Code: apiErrors.ErrNoSalesData}

type DashboardService interface {
	SalesGod(ctx context.Context, ref time.Time) (*domain.SalesGod, error)
	BestTeam(ctx context.Context, ref time.Time) (*domain.BestTeam, error)
}

type Service struct {
	contractRepo repository.ContractRepository
	teamRepo     repository.TeamRepository
}

func NewService(contractRepo repository.ContractRepository, teamRepo repository.TeamRepository) DashboardService {
	return &Service{
		contractRepo: contractRepo,
		teamRepo:     teamRepo,
	}
}

type totals struct {
	key   string
	code  int64
	name  string
	price int64
	count int64
}

func (s *Service) monthRecords(ctx context.Context, ref time.Time) ([]*domain.SalesRecord, error) {
	start, end := domain.PeriodMonth.Window(ref)
	records, err := s.contractRepo.ListSalesRecords(ctx, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar contratos do mês")
	}
	return records, nil
}

// SalesGod é o membro com avaliação A de maior venda no mês. Contratos
// cancelados entram na soma e a quantidade vem de contract_count. Empate fica
// com o menor código
func (s *Service) SalesGod(ctx context.Context, ref time.Time) (*domain.SalesGod, error) {
	records, err := s.monthRecords(ctx, ref)
	if err != nil {
		return nil, err
	}

	byMember := make(map[int64]*totals)
	for _, r := range records {
		if r.MemberPerformanceReview != domain.ReviewA {
			continue
		}
		t, ok := byMember[r.SalesMemberID]
		if !ok {
			t = &totals{code: r.SalesMemberCode, name: r.SalesMemberName}
			byMember[r.SalesMemberID] = t
		}
		t.price += r.ContractTotalPrice
		t.count += r.ContractCount
	}

	var best *totals
	for _, t := range byMember {
		if best == nil || t.price > best.price || (t.price == best.price && t.code < best.code) {
			best = t
		}
	}

	if best == nil {
		return nil, errNoSalesData
	}

	return &domain.SalesGod{Name: best.name, Price: best.price, Count: best.count}, nil
}

// BestTeam soma os contratos não cancelados dos membros de times com
// avaliação A. Todo time A concorre, mesmo sem vendas no mês
func (s *Service) BestTeam(ctx context.Context, ref time.Time) (*domain.BestTeam, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar times")
	}

	byTeam := make(map[int64]*totals)
	for _, team := range teams {
		if team.PerformanceReview != domain.ReviewA {
			continue
		}
		byTeam[team.ID] = &totals{key: team.TeamCode, name: team.TeamName}
	}

	if len(byTeam) == 0 {
		return nil, errNoSalesData
	}

	records, err := s.monthRecords(ctx, ref)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.TeamID == nil || r.IsCancelled() {
			continue
		}
		t, ok := byTeam[*r.TeamID]
		if !ok {
			continue
		}
		t.price += r.ContractTotalPrice
		t.count++
	}

	var best *totals
	for _, t := range byTeam {
		if best == nil || t.price > best.price || (t.price == best.price && t.key < best.key) {
			best = t
		}
	}

	return &domain.BestTeam{TeamName: best.name, Price: best.price, Count: best.count}, nil
}
