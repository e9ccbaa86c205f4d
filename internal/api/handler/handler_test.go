package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cachemocks "github.com/alioth/insurance-sales-api/infrastructure/cache/mocks"
	"github.com/alioth/insurance-sales-api/infrastructure/repository/mocks"
	"github.com/alioth/insurance-sales-api/internal/api/handler/router"
	"github.com/alioth/insurance-sales-api/internal/config"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/internal/scheduler"
	"github.com/alioth/insurance-sales-api/internal/usecases/authenticating"
	"github.com/alioth/insurance-sales-api/internal/usecases/dashboard"
	"github.com/alioth/insurance-sales-api/internal/usecases/member"
	"github.com/alioth/insurance-sales-api/internal/usecases/statistics"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Result  map[string]any `json:"result"`
	Code    string         `json:"code"`
}

// serve monta as rotas e injeta os claims como o AuthMiddleware faria
func serve(t *testing.T, routes []router.Route, claims *domain.Claims, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

var (
	adminClaims = &domain.Claims{MemberID: 1, MemberCode: 20240001, MemberRank: domain.RankAdmin, TokenType: domain.TokenTypeAccess}
	fpClaims    = &domain.Claims{MemberID: 2, MemberCode: 20240002, MemberRank: domain.RankFP, TokenType: domain.TokenTypeAccess}
)

func TestLogin(t *testing.T) {
	hash, err := authenticating.HashPassword("Senha@123")
	require.NoError(t, err)

	tests := []struct {
		name           string
		body           string
		setup          func(repo *mocks.MockSalesMemberRepository)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Login com sucesso devolve os tokens",
			body: `{"memberCode": 20240001, "password": "Senha@123"}`,
			setup: func(repo *mocks.MockSalesMemberRepository) {
				repo.EXPECT().GetByCode(gomock.Any(), int64(20240001)).Return(&domain.SalesMember{
					ID:              1,
					SalesMemberCode: 20240001,
					Name:            "Kim",
					PasswordHash:    hash,
					Rank:            domain.RankFP,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Senha incorreta devolve 401",
			body: `{"memberCode": 20240001, "password": "Errada@123"}`,
			setup: func(repo *mocks.MockSalesMemberRepository) {
				repo.EXPECT().GetByCode(gomock.Any(), int64(20240001)).Return(&domain.SalesMember{
					ID:              1,
					SalesMemberCode: 20240001,
					PasswordHash:    hash,
				}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:           "Corpo inválido devolve 400",
			body:           `{memberCode`,
			setup:          func(repo *mocks.MockSalesMemberRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSalesMemberRepository(ctrl)
			tt.setup(repo)

			service := authenticating.NewService(repo, config.Auth{
				Secret:          "segredo",
				AccessTokenTTL:  time.Hour,
				RefreshTokenTTL: 24 * time.Hour,
			})

			rec, env := serve(t, Authentication(service), nil, http.MethodPost, "/api/login", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, env.Code)
				return
			}
			assert.Equal(t, float64(20240001), env.Result["memberCode"])
			assert.NotEmpty(t, env.Result["accessToken"])
			assert.NotEmpty(t, env.Result["refreshToken"])
		})
	}
}

func TestMemberRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesMemberRepository(ctrl)
	routes := Members(member.NewService(repo))

	t.Run("Busca membro pelo código", func(t *testing.T) {
		repo.EXPECT().GetByCode(gomock.Any(), int64(20240002)).Return(&domain.SalesMember{
			ID:              2,
			SalesMemberCode: 20240002,
			Name:            "Lee",
			Rank:            domain.RankFP,
		}, nil)

		rec, env := serve(t, routes, fpClaims, http.MethodGet, "/api/members/20240002", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Lee", env.Result["name"])
		assert.Equal(t, http.StatusOK, env.Status)
	})

	t.Run("Código não numérico devolve 400", func(t *testing.T) {
		rec, env := serve(t, routes, fpClaims, http.MethodGet, "/api/members/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, env.Code)
	})

	t.Run("Membro inexistente devolve 404", func(t *testing.T) {
		repo.EXPECT().GetByCode(gomock.Any(), int64(99)).Return(nil, nil)

		rec, env := serve(t, routes, fpClaims, http.MethodGet, "/api/members/99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrMemberNotFound, env.Code)
	})

	t.Run("FP não lista membros", func(t *testing.T) {
		rec, env := serve(t, routes, fpClaims, http.MethodGet, "/api/members", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, env.Code)
	})

	t.Run("Cargo inválido no filtro devolve 400", func(t *testing.T) {
		rec, env := serve(t, routes, adminClaims, http.MethodGet, "/api/members?rank=CEO", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, env.Code)
	})

	t.Run("Sem autenticação devolve 401", func(t *testing.T) {
		rec, _ := serve(t, routes, nil, http.MethodGet, "/api/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestStatisticsRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	contractRepo := mocks.NewMockContractRepository(ctrl)
	cache := cachemocks.NewMockCache(ctrl)
	routes := Statistics(statistics.NewService(contractRepo, cache, time.Minute))

	t.Run("Período desconhecido devolve 400", func(t *testing.T) {
		rec, env := serve(t, routes, fpClaims, http.MethodGet, "/api/batch/sales-member/week", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidPeriod, env.Code)
	})

	t.Run("Data inválida devolve 400", func(t *testing.T) {
		rec, env := serve(t, routes, fpClaims, http.MethodGet, "/api/batch/sales-hq/day?date=2024/01/01", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, env.Code)
	})
}

func TestDashboardWithoutSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	contractRepo := mocks.NewMockContractRepository(ctrl)
	contractRepo.EXPECT().ListSalesRecords(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	rec, env := serve(t, Dashboard(dashboard.NewService(contractRepo, mocks.NewMockTeamRepository(ctrl))), fpClaims, http.MethodGet, "/api/dashboard/sales-god?date=2024-08-10", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNoSalesData, env.Code)
}

type fakeSyncJob struct {
	err       error
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync() error {
	f.triggered++
	return f.err
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		method         string
		target         string
		jobErr         error
		expectedStatus int
		expectedRuns   int
	}{
		{
			name:           "Admin dispara o ranking de vendas",
			claims:         adminClaims,
			method:         http.MethodPost,
			target:         "/api/cron/sales-ranking/run",
			expectedStatus: http.StatusOK,
			expectedRuns:   1,
		},
		{
			name:           "Sincronização em andamento devolve 409",
			claims:         adminClaims,
			method:         http.MethodPost,
			target:         "/api/cron/all/run",
			jobErr:         &scheduler.JobError{Err: scheduler.ErrSyncRunning, Code: apiErrors.ErrJobRunning},
			expectedStatus: http.StatusConflict,
			expectedRuns:   1,
		},
		{
			name:           "Tipo desconhecido devolve 400",
			claims:         adminClaims,
			method:         http.MethodPost,
			target:         "/api/cron/meta/run",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "FP não executa cron",
			claims:         fpClaims,
			method:         http.MethodPost,
			target:         "/api/cron/sales-ranking/run",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Admin consulta o status",
			claims:         adminClaims,
			method:         http.MethodGet,
			target:         "/api/cron/status",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeSyncJob{err: tt.jobErr}

			rec, _ := serve(t, CronJobs(CronJobServices{SalesRankingSyncService: job}), tt.claims, tt.method, tt.target, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedRuns, job.triggered)
		})
	}
}

func TestParseContractFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/contracts?memberCode=20240002&status=Ongoing&startDate=2024-08-01&endDate=2024-08-31", nil)

	filter, err := parseContractFilter(req)
	require.NoError(t, err)

	require.NotNil(t, filter.MemberCode)
	assert.Equal(t, int64(20240002), *filter.MemberCode)
	assert.Equal(t, domain.ContractStatusOngoing, filter.Status)
	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.Local), *filter.StartDate)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local), *filter.EndDate)

	_, err = parseContractFilter(httptest.NewRequest(http.MethodGet, "/api/contracts?memberCode=x", nil))
	assert.Error(t, err)
}

func TestHealthcheck(t *testing.T) {
	rec, _ := serve(t, Healthcheck(), nil, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestHandleLoginErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	handleLoginError(rec, httptest.NewRequest(http.MethodPost, "/api/login", nil), errors.New("banco fora do ar"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
