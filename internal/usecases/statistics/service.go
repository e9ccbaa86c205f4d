package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/cache"
	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/alioth/insurance-sales-api/pkg/metrics"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	kindMember       = "sales-member"
	kindTeam         = "sales-team"
	kindHQ           = "sales-hq"
	kindProductPrice = "contract-rank-price"
	kindProductCount = "contract-rank-count"
)

type StatisticsService interface {
	MemberSales(ctx context.Context, period string, ref time.Time) ([]domain.MemberSales, error)
	TeamSales(ctx context.Context, period string, ref time.Time) ([]domain.TeamSales, error)
	HQSales(ctx context.Context, period string, ref time.Time) ([]domain.HQSales, error)
	ProductRankByPrice(ctx context.Context, ref time.Time) ([]domain.ProductPriceRank, error)
	ProductRankByCount(ctx context.Context, ref time.Time) ([]domain.ProductCountRank, error)
}

type Service struct {
	contractRepo repository.ContractRepository
	cache        cache.Cache
	ttl          time.Duration
}

func NewService(contractRepo repository.ContractRepository, c cache.Cache, ttl time.Duration) StatisticsService {
	return &Service{
		contractRepo: contractRepo,
		cache:        c,
		ttl:          ttl,
	}
}

func parsePeriod(period string) (domain.Period, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return "", &StatisticsError{Err: ErrInvalidPeriod, Code: apiErrors.ErrInvalidPeriod, Details: period}
	}
	return p, nil
}

func (s *Service) MemberSales(ctx context.Context, period string, ref time.Time) ([]domain.MemberSales, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}

	return cached(ctx, s, kindMember, p, ref, aggregateByMember)
}

func (s *Service) TeamSales(ctx context.Context, period string, ref time.Time) ([]domain.TeamSales, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}

	return cached(ctx, s, kindTeam, p, ref, aggregateByTeam)
}

func (s *Service) HQSales(ctx context.Context, period string, ref time.Time) ([]domain.HQSales, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}

	return cached(ctx, s, kindHQ, p, ref, aggregateHQ)
}

// Os rankings de produto consideram sempre o dia de referência
func (s *Service) ProductRankByPrice(ctx context.Context, ref time.Time) ([]domain.ProductPriceRank, error) {
	return cached(ctx, s, kindProductPrice, domain.PeriodDay, ref, rankProductsByPrice)
}

func (s *Service) ProductRankByCount(ctx context.Context, ref time.Time) ([]domain.ProductCountRank, error) {
	return cached(ctx, s, kindProductCount, domain.PeriodDay, ref, rankProductsByCount)
}

func cacheKey(kind string, period domain.Period, start time.Time) string {
	return fmt.Sprintf("stats:%s:%s:%s", kind, period, start.Format("2006-01-02"))
}

// cached consulta o cache antes de agregar os contratos da janela. Falhas do
// cache só geram log; o cálculo segue direto do banco.
func cached[T any](
	ctx context.Context,
	s *Service,
	kind string,
	period domain.Period,
	ref time.Time,
	aggregate func([]*domain.SalesRecord) []T,
) ([]T, error) {
	start, end := period.Window(ref)
	key := cacheKey(kind, period, start)
	logger := log.ForContext(ctx).WithField("cache_key", key)

	if data, err := s.cache.Get(ctx, key); err == nil {
		var result []T
		if err := json.Unmarshal(data, &result); err == nil {
			metrics.RecordCacheResult(kind, "hit")
			return result, nil
		}
		logger.Warn("Valor inválido no cache de estatísticas, recalculando")
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		metrics.RecordCacheResult(kind, "error")
		logger.WithError(err).Warn("Erro ao ler cache de estatísticas")
	} else {
		metrics.RecordCacheResult(kind, "miss")
	}

	records, err := s.contractRepo.ListSalesRecords(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar contratos da janela")
	}

	result := aggregate(records)

	data, err := json.Marshal(result)
	if err != nil {
		logger.WithError(err).Warn("Erro ao serializar estatísticas para o cache")
		return result, nil
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		logger.WithError(err).Warn("Erro ao gravar cache de estatísticas")
	}

	return result, nil
}
