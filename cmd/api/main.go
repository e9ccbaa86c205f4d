package main

import (
	"context"

	"github.com/alioth/insurance-sales-api/infrastructure/cache"
	"github.com/alioth/insurance-sales-api/infrastructure/database/postgres"
	"github.com/alioth/insurance-sales-api/infrastructure/migration"
	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/api"
	"github.com/alioth/insurance-sales-api/internal/api/handler"
	"github.com/alioth/insurance-sales-api/internal/config"
	"github.com/alioth/insurance-sales-api/internal/scheduler"
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
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	statsCache := cache.New(cfg.Redis)
	defer statsCache.Close()

	memberRepo := repository.NewSalesMemberRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)
	contractRepo := repository.NewContractRepository(pgConn)
	scheduleRepo := repository.NewScheduleRepository(pgConn)
	boardRepo := repository.NewBoardRepository(pgConn)
	answerRepo := repository.NewAnswerRepository(pgConn)
	rankingRepo := repository.NewSalesRankingRepository(pgConn)

	salesRankingSyncService := scheduler.NewSalesRankingSyncService(
		memberRepo,
		contractRepo,
		rankingRepo,
		cfg,
	)

	if err := salesRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de vendas")
	} else {
		logrus.Info("Agendador do ranking de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticating.NewService(memberRepo, cfg.Auth),
		Member:        member.NewService(memberRepo),
		Team:          team.NewService(teamRepo, memberRepo),
		Catalog:       catalog.NewService(catalogRepo),
		Contract:      contract.NewService(contractRepo, memberRepo, catalogRepo),
		Schedule:      schedule.NewService(scheduleRepo, memberRepo),
		Board:         board.NewService(boardRepo, answerRepo),
		Statistics:    statistics.NewService(contractRepo, statsCache, cfg.StatisticsCache.TTL),
		Dashboard:     dashboard.NewService(contractRepo, teamRepo),
		Ranking:       ranking.NewMemberRankingService(rankingRepo),
		CronJobs: handler.CronJobServices{
			SalesRankingSyncService: salesRankingSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
