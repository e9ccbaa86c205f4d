package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alioth/insurance-sales-api/internal/api/handler"
	"github.com/alioth/insurance-sales-api/internal/api/handler/router"
	"github.com/alioth/insurance-sales-api/internal/config"
	"github.com/alioth/insurance-sales-api/internal/usecases/authenticating"
	"github.com/alioth/insurance-sales-api/internal/usecases/board"
	"github.com/alioth/insurance-sales-api/internal/usecases/catalog"
	"github.com/alioth/insurance-sales-api/internal/usecases/contract"
	"github.com/alioth/insurance-sales-api/internal/usecases/dashboard"
	"github.com/alioth/insurance-sales-api/internal/usecases/member"
	"github.com/alioth/insurance-sales-api/internal/usecases/ranking"
	"github.com/alioth/insurance-sales-api/internal/usecases/schedule"
	"github.com/alioth/insurance-sales-api/internal/usecases/statistics"
	"github.com/alioth/insurance-sales-api/internal/usecases/team"
	"github.com/alioth/insurance-sales-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Member        member.MemberService
	Team          team.TeamService
	Catalog       catalog.CatalogService
	Contract      contract.ContractService
	Schedule      schedule.ScheduleService
	Board         board.BoardService
	Statistics    statistics.StatisticsService
	Dashboard     dashboard.DashboardService
	Ranking       ranking.RankingService
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("autenticador não configurado")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Members(services.Member)...),
		router.WithRoutes(handler.Teams(services.Team)...),
		router.WithRoutes(handler.Catalog(services.Catalog)...),
		router.WithRoutes(handler.Contracts(services.Contract)...),
		router.WithRoutes(handler.Schedules(services.Schedule)...),
		router.WithRoutes(handler.Boards(services.Board)...),
		router.WithRoutes(handler.Statistics(services.Statistics)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.MemberRanking(services.Ranking)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa, usada nos testes de ponta a ponta
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
