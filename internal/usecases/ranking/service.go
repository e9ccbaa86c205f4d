package ranking

import (
	"context"
	"errors"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	pkgerrors "github.com/pkg/errors"
)

var ErrInvalidMonth = errors.New("mês inválido, use o formato MM-AAAA")

type RankingError struct {
	Err     error
	Code    string
	Details string
}

func (e *RankingError) Error() string {
	return e.Err.Error() + ": " + e.Details
}

func (e *RankingError) Unwrap() error {
	return e.Err
}

func (e *RankingError) ErrorCode() string {
	return e.Code
}

type RankingService interface {
	GetMemberRanking(ctx context.Context, month string) (*domain.MemberRankingResponse, error)
}

type MemberRankingService struct {
	rankingRepository repository.SalesRankingRepository
	now               func() time.Time
}

func NewMemberRankingService(rankingRepository repository.SalesRankingRepository) RankingService {
	return &MemberRankingService{
		rankingRepository: rankingRepository,
		now:               time.Now,
	}
}

// GetMemberRanking lê o ranking gravado pela sincronização. Sem mês
// informado usa o mês corrente.
func (s *MemberRankingService) GetMemberRanking(ctx context.Context, month string) (*domain.MemberRankingResponse, error) {
	if month == "" {
		month = s.now().Format(domain.MonthLayout)
	} else if _, err := time.Parse(domain.MonthLayout, month); err != nil {
		return nil, &RankingError{Err: ErrInvalidMonth, Code: apiErrors.ErrInvalidFormat, Details: month}
	}

	ranking, err := s.rankingRepository.GetByMonth(ctx, month)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar ranking de membros")
	}

	return ranking, nil
}
