package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository/mocks"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	owner    = &domain.Claims{MemberID: 1, MemberCode: 20240001, TeamCode: "TABC123"}
	teammate = &domain.Claims{MemberID: 2, MemberCode: 20240002, TeamCode: "TABC123"}
	stranger = &domain.Claims{MemberID: 3, MemberCode: 20240003, TeamCode: "TZZZZZZ"}

	start = time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC)
	end   = time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		request      *domain.ScheduleRequest
		expectCreate bool
		expectedCode string
	}{
		{
			name:         "Cria agenda pessoal por padrão",
			request:      &domain.ScheduleRequest{ScheduleTitle: "Visita", ScheduleStartTime: start, ScheduleEndTime: end},
			expectCreate: true,
		},
		{
			name:         "Início igual ao fim é aceito",
			request:      &domain.ScheduleRequest{ScheduleTitle: "Ligação", ScheduleStartTime: start, ScheduleEndTime: start},
			expectCreate: true,
		},
		{
			name:         "Início depois do fim",
			request:      &domain.ScheduleRequest{ScheduleTitle: "Visita", ScheduleStartTime: end, ScheduleEndTime: start},
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "Título ausente",
			request:      &domain.ScheduleRequest{ScheduleStartTime: start, ScheduleEndTime: end},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Tipo inválido",
			request:      &domain.ScheduleRequest{ScheduleTitle: "Visita", ScheduleStartTime: start, ScheduleEndTime: end, ScheduleType: "Holiday"},
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduleRepo := mocks.NewMockScheduleRepository(ctrl)
			memberRepo := mocks.NewMockSalesMemberRepository(ctrl)

			if tt.expectCreate {
				scheduleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
						assert.Equal(t, domain.ScheduleTypePersonal, s.ScheduleType)
						assert.Equal(t, int64(1), s.SalesMemberID)
						s.ID = 10
						return s, nil
					})
			}

			result, err := NewService(scheduleRepo, memberRepo).Create(context.Background(), owner, tt.request)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, apiErrors.CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(20240001), result.SalesMemberCode)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamCode := "TABC123"
	shared := &domain.Schedule{ID: 10, SalesMemberID: 1, Share: true}
	private := &domain.Schedule{ID: 11, SalesMemberID: 1}

	tests := []struct {
		name         string
		claims       *domain.Claims
		schedule     *domain.Schedule
		lookupOwner  bool
		expectedCode string
	}{
		{name: "Dono lê a própria agenda", claims: owner, schedule: private},
		{name: "Colega de time lê agenda compartilhada", claims: teammate, schedule: shared, lookupOwner: true},
		{name: "Colega de time não lê agenda privada", claims: teammate, schedule: private, expectedCode: apiErrors.ErrScheduleNotFound},
		{name: "Outro time não lê agenda compartilhada", claims: stranger, schedule: shared, lookupOwner: true, expectedCode: apiErrors.ErrScheduleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduleRepo := mocks.NewMockScheduleRepository(ctrl)
			memberRepo := mocks.NewMockSalesMemberRepository(ctrl)

			scheduleRepo.EXPECT().GetByID(gomock.Any(), tt.schedule.ID).Return(tt.schedule, nil)
			if tt.lookupOwner {
				memberRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.SalesMember{ID: 1, TeamCode: &teamCode}, nil)
			}

			result, err := NewService(scheduleRepo, memberRepo).Get(context.Background(), tt.claims, tt.schedule.ID)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, apiErrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.schedule.ID, result.ID)
		})
	}
}

func TestService_List_IncludesTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	memberRepo := mocks.NewMockSalesMemberRepository(ctrl)
	teamID := int64(4)

	memberRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.SalesMember{ID: 1, TeamID: &teamID}, nil)
	scheduleRepo.EXPECT().List(gomock.Any(), domain.ScheduleFilter{
		SalesMemberID: 1,
		TeamID:        &teamID,
		StartTime:     &start,
		EndTime:       &end,
	}).Return([]*domain.Schedule{{ID: 10}}, nil)

	result, err := NewService(scheduleRepo, memberRepo).List(context.Background(), owner, &start, &end)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	_, err = NewService(scheduleRepo, memberRepo).List(context.Background(), owner, &end, &start)
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErrors.CodeOf(err))
}

func TestService_UpdateAndDelete_OwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	memberRepo := mocks.NewMockSalesMemberRepository(ctrl)
	service := NewService(scheduleRepo, memberRepo)

	scheduleRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&domain.Schedule{ID: 10, SalesMemberID: 1}, nil).AnyTimes()

	_, err := service.Update(context.Background(), teammate, 10, &domain.ScheduleRequest{ScheduleTitle: "x", ScheduleStartTime: start, ScheduleEndTime: end})
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, apiErrors.CodeOf(err))

	err = service.Delete(context.Background(), teammate, 10)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, apiErrors.CodeOf(err))

	scheduleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	updated, err := service.Update(context.Background(), owner, 10, &domain.ScheduleRequest{
		ScheduleTitle: "Reunião", ScheduleStartTime: start, ScheduleEndTime: end, Share: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Reunião", updated.ScheduleTitle)
	assert.True(t, updated.Share)

	scheduleRepo.EXPECT().SoftDelete(gomock.Any(), int64(10)).Return(nil)
	require.NoError(t, service.Delete(context.Background(), owner, 10))
}
