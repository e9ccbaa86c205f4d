package handler

import (
	"net/http"

	"github.com/alioth/insurance-sales-api/internal/api/handler/router"
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
	"github.com/alioth/insurance-sales-api/pkg/metrics"
	"github.com/alioth/insurance-sales-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/refresh",
			Method:  http.MethodPost,
			Handler: Refresh(service),
		},
	}
}

func Members(service member.MemberService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/members",
			Method:      http.MethodPost,
			Handler:     CreateMember(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/members",
			Method:      http.MethodGet,
			Handler:     ListMembers(service),
			Middlewares: middlewares{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/api/members/:code",
			Method:      http.MethodGet,
			Handler:     GetMember(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/members/:code",
			Method:      http.MethodPut,
			Handler:     UpdateMember(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/members/:code",
			Method:      http.MethodDelete,
			Handler:     QuitMember(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/members/:code/performance-review",
			Method:      http.MethodPut,
			Handler:     UpdateMemberPerformanceReview(service),
			Middlewares: middlewares{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/api/members/:code/password",
			Method:      http.MethodPut,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Teams(service team.TeamService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/teams",
			Method:      http.MethodPost,
			Handler:     CreateTeam(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/teams",
			Method:      http.MethodGet,
			Handler:     ListTeams(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/teams/:code",
			Method:      http.MethodGet,
			Handler:     GetTeam(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/teams/:code",
			Method:      http.MethodPut,
			Handler:     UpdateTeam(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/teams/:code",
			Method:      http.MethodDelete,
			Handler:     DeleteTeam(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/teams/:code/members",
			Method:      http.MethodPost,
			Handler:     AddTeamMember(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/teams/:code/members/:memberCode",
			Method:      http.MethodDelete,
			Handler:     RemoveTeamMember(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/teams/:code/performance-review",
			Method:      http.MethodPut,
			Handler:     UpdateTeamPerformanceReview(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Catalog(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/products/:id",
			Method:      http.MethodGet,
			Handler:     GetProduct(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomer(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/contract-members",
			Method:      http.MethodPost,
			Handler:     CreateContractMember(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/contract-members",
			Method:      http.MethodGet,
			Handler:     ListContractMembers(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/contract-members/:id",
			Method:      http.MethodGet,
			Handler:     GetContractMember(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Contracts(service contract.ContractService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/contracts",
			Method:      http.MethodPost,
			Handler:     CreateContract(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/contracts",
			Method:      http.MethodGet,
			Handler:     ListContracts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/contracts/:id",
			Method:      http.MethodGet,
			Handler:     GetContract(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/contracts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateContract(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/contracts/:id/cancel",
			Method:      http.MethodPut,
			Handler:     CancelContract(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Schedules(service schedule.ScheduleService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/schedules",
			Method:      http.MethodPost,
			Handler:     CreateSchedule(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/schedules",
			Method:      http.MethodGet,
			Handler:     ListSchedules(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/schedules/:id",
			Method:      http.MethodGet,
			Handler:     GetSchedule(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/schedules/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSchedule(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/schedules/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSchedule(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Boards(service board.BoardService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/boards",
			Method:      http.MethodPost,
			Handler:     CreateBoard(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/boards",
			Method:      http.MethodGet,
			Handler:     ListBoards(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/boards/:id",
			Method:      http.MethodGet,
			Handler:     GetBoard(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/boards/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBoard(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/boards/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBoard(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/boards/:id/answers",
			Method:      http.MethodPost,
			Handler:     CreateAnswer(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/boards/:id/answers",
			Method:      http.MethodGet,
			Handler:     ListAnswers(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/answers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAnswer(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/answers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAnswer(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Statistics(service statistics.StatisticsService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/batch/sales-member/:period",
			Method:      http.MethodGet,
			Handler:     MemberSales(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/batch/sales-team/:period",
			Method:      http.MethodGet,
			Handler:     TeamSales(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/batch/sales-hq/:period",
			Method:      http.MethodGet,
			Handler:     HQSales(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/batch/contract-rank/price",
			Method:      http.MethodGet,
			Handler:     ProductRankByPrice(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/batch/contract-rank/count",
			Method:      http.MethodGet,
			Handler:     ProductRankByCount(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/dashboard/sales-god",
			Method:      http.MethodGet,
			Handler:     SalesGod(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/dashboard/best-team",
			Method:      http.MethodGet,
			Handler:     BestTeam(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func MemberRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/stats/ranking/members",
			Method:      http.MethodGet,
			Handler:     GetMemberRanking(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
