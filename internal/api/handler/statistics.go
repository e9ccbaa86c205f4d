package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/alioth/insurance-sales-api/internal/usecases/dashboard"
	"github.com/alioth/insurance-sales-api/internal/usecases/ranking"
	"github.com/alioth/insurance-sales-api/internal/usecases/statistics"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/response"
	"github.com/alioth/insurance-sales-api/pkg/utils"
)

// referenceDate lê ?date=YYYY-MM-DD; ausente significa hoje
func referenceDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	ref, err := utils.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato AAAA-MM-DD", nil)
		return time.Time{}, false
	}
	return ref, true
}

// periodStats adapta as agregações por período ao formato de handler
func periodStats[T any](
	fetch func(ctx context.Context, period string, ref time.Time) ([]T, error),
	message string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := referenceDate(w, r)
		if !ok {
			return
		}

		result, err := fetch(r.Context(), stringParam(r, "period"), ref)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao calcular estatísticas")
			return
		}

		response.OK(w, message, result)
	}
}

func dailyStats[T any](
	fetch func(ctx context.Context, ref time.Time) (T, error),
	message string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := referenceDate(w, r)
		if !ok {
			return
		}

		result, err := fetch(r.Context(), ref)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao calcular estatísticas")
			return
		}

		response.OK(w, message, result)
	}
}

func MemberSales(service statistics.StatisticsService) http.HandlerFunc {
	return periodStats(service.MemberSales, "Vendas por membro")
}

func TeamSales(service statistics.StatisticsService) http.HandlerFunc {
	return periodStats(service.TeamSales, "Vendas por time")
}

func HQSales(service statistics.StatisticsService) http.HandlerFunc {
	return periodStats(service.HQSales, "Vendas da matriz")
}

func ProductRankByPrice(service statistics.StatisticsService) http.HandlerFunc {
	return dailyStats(service.ProductRankByPrice, "Ranking de produtos por valor")
}

func ProductRankByCount(service statistics.StatisticsService) http.HandlerFunc {
	return dailyStats(service.ProductRankByCount, "Ranking de produtos por quantidade")
}

func SalesGod(service dashboard.DashboardService) http.HandlerFunc {
	return dailyStats(service.SalesGod, "Melhor vendedor do mês")
}

func BestTeam(service dashboard.DashboardService) http.HandlerFunc {
	return dailyStats(service.BestTeam, "Melhor time do mês")
}

// GetMemberRanking retorna o ranking mensal de vendedores (?month=MM-AAAA)
func GetMemberRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetMemberRanking(r.Context(), r.URL.Query().Get("month"))
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar ranking de vendedores")
			return
		}

		response.OK(w, "Ranking de vendedores", result)
	}
}
