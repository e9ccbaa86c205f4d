package board

import (
	"context"
	"testing"

	"github.com/alioth/insurance-sales-api/infrastructure/repository/mocks"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	fp      = &domain.Claims{MemberID: 1, MemberCode: 20240001, MemberName: "Kim", MemberRank: domain.RankFP}
	manager = &domain.Claims{MemberID: 2, MemberCode: 20240002, MemberName: "Park", MemberRank: domain.RankManager}
	admin   = &domain.Claims{MemberID: 3, MemberCode: 20240003, MemberName: "Lee", MemberRank: domain.RankAdmin}
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		claims       *domain.Claims
		request      *domain.BoardRequest
		expectCreate bool
		expectedCode string
	}{
		{
			name:         "FP publica pergunta",
			claims:       fp,
			request:      &domain.BoardRequest{Title: "Dúvida", Content: "Como cancelar?"},
			expectCreate: true,
		},
		{
			name:         "FP não publica aviso",
			claims:       fp,
			request:      &domain.BoardRequest{Title: "Aviso", Content: "x", BoardType: domain.BoardTypeNotice},
			expectedCode: apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:         "Gerente publica aviso",
			claims:       manager,
			request:      &domain.BoardRequest{Title: "Aviso", Content: "x", BoardType: domain.BoardTypeNotice},
			expectCreate: true,
		},
		{
			name:         "Conteúdo ausente",
			claims:       fp,
			request:      &domain.BoardRequest{Title: "Dúvida"},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Tipo desconhecido",
			claims:       admin,
			request:      &domain.BoardRequest{Title: "x", Content: "y", BoardType: "Blog"},
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boardRepo := mocks.NewMockBoardRepository(ctrl)
			answerRepo := mocks.NewMockAnswerRepository(ctrl)

			if tt.expectCreate {
				boardRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Board) (*domain.Board, error) {
						b.ID = 1
						return b, nil
					})
			}

			result, err := NewService(boardRepo, answerRepo).Create(context.Background(), tt.claims, tt.request)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, apiErrors.CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.claims.MemberCode, result.SalesMemberCode)
		})
	}
}

func TestService_Get_WithAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boardRepo := mocks.NewMockBoardRepository(ctrl)
	answerRepo := mocks.NewMockAnswerRepository(ctrl)

	boardRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Board{ID: 1, Title: "Dúvida"}, nil)
	answerRepo.EXPECT().ListByBoard(gomock.Any(), int64(1)).Return([]*domain.Answer{
		{ID: 10, Content: "Resposta", SalesMemberName: "Park"},
	}, nil)

	result, err := NewService(boardRepo, answerRepo).Get(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result.Answers, 1)
	assert.Equal(t, "Park", result.Answers[0].SalesMemberName)

	boardRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)
	_, err = NewService(boardRepo, answerRepo).Get(context.Background(), 2)
	assert.Equal(t, apiErrors.ErrBoardNotFound, apiErrors.CodeOf(err))
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		claims       *domain.Claims
		expectDelete bool
		expectedCode string
	}{
		{name: "Autor remove", claims: fp, expectDelete: true},
		{name: "Administrador remove", claims: admin, expectDelete: true},
		{name: "Gerente não remove publicação alheia", claims: manager, expectedCode: apiErrors.ErrInsufficientPrivilege},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boardRepo := mocks.NewMockBoardRepository(ctrl)
			answerRepo := mocks.NewMockAnswerRepository(ctrl)

			boardRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Board{ID: 1, SalesMemberID: 1}, nil)
			if tt.expectDelete {
				boardRepo.EXPECT().SoftDelete(gomock.Any(), int64(1)).Return(nil)
			}

			err := NewService(boardRepo, answerRepo).Delete(context.Background(), tt.claims, 1)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, apiErrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_Answers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boardRepo := mocks.NewMockBoardRepository(ctrl)
	answerRepo := mocks.NewMockAnswerRepository(ctrl)
	service := NewService(boardRepo, answerRepo)

	boardRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Board{ID: 1}, nil)
	answerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Answer) (*domain.Answer, error) {
			assert.Equal(t, int64(1), a.BoardID)
			assert.Equal(t, int64(2), a.SalesMemberID)
			a.ID = 10
			return a, nil
		})

	answer, err := service.CreateAnswer(context.Background(), manager, 1, &domain.AnswerRequest{Content: "Ligue para o cliente"})
	require.NoError(t, err)
	assert.Equal(t, "Park", answer.SalesMemberName)

	answerRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&domain.Answer{ID: 10, SalesMemberID: 2}, nil).Times(3)

	_, err = service.UpdateAnswer(context.Background(), fp, 10, &domain.AnswerRequest{Content: "editado"})
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, apiErrors.CodeOf(err))

	answerRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	updated, err := service.UpdateAnswer(context.Background(), manager, 10, &domain.AnswerRequest{Content: "editado"})
	require.NoError(t, err)
	assert.Equal(t, "editado", updated.Content)

	answerRepo.EXPECT().SoftDelete(gomock.Any(), int64(10)).Return(nil)
	require.NoError(t, service.DeleteAnswer(context.Background(), admin, 10))

	_, err = service.CreateAnswer(context.Background(), fp, 1, &domain.AnswerRequest{Content: "  "})
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErrors.CodeOf(err))
}
