package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository/mocks"
	"github.com/alioth/insurance-sales-api/internal/config"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAuthConfig = config.Auth{
	Secret:          "segredo-de-teste",
	AccessTokenTTL:  time.Hour,
	RefreshTokenTTL: 14 * 24 * time.Hour,
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestMember(t *testing.T) *domain.SalesMember {
	teamCode := "TABC123"
	return &domain.SalesMember{
		ID:              7,
		SalesMemberCode: 20240007,
		Name:            "Kim",
		PasswordHash:    hashForTest(t, "Senha@123"),
		Rank:            domain.RankManager,
		TeamCode:        &teamCode,
	}
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := newTestMember(t)

	tests := []struct {
		name         string
		code         int64
		password     string
		setup        func(repo *mocks.MockSalesMemberRepository)
		expectedCode string
	}{
		{
			name:     "Login com sucesso",
			code:     20240007,
			password: "Senha@123",
			setup: func(repo *mocks.MockSalesMemberRepository) {
				repo.EXPECT().GetByCode(gomock.Any(), int64(20240007)).Return(member, nil)
			},
		},
		{
			name:         "Dados obrigatórios ausentes",
			code:         0,
			password:     "",
			setup:        func(repo *mocks.MockSalesMemberRepository) {},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Membro inexistente",
			code:     1,
			password: "Senha@123",
			setup: func(repo *mocks.MockSalesMemberRepository) {
				repo.EXPECT().GetByCode(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Senha incorreta",
			code:     20240007,
			password: "errada",
			setup: func(repo *mocks.MockSalesMemberRepository) {
				repo.EXPECT().GetByCode(gomock.Any(), int64(20240007)).Return(member, nil)
			},
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Membro desligado",
			code:     20240008,
			password: "Senha@123",
			setup: func(repo *mocks.MockSalesMemberRepository) {
				quit := *member
				quit.SalesMemberCode = 20240008
				quit.Quit = true
				repo.EXPECT().GetByCode(gomock.Any(), int64(20240008)).Return(&quit, nil)
			},
			expectedCode: apiErrors.ErrMemberQuit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockSalesMemberRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, testAuthConfig)
			result, err := service.Login(context.Background(), tt.code, tt.password)

			if tt.expectedCode != "" {
				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.expectedCode, authErr.Code)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(20240007), result.MemberCode)
			assert.Equal(t, "MANAGER", result.MemberRank)
			assert.Equal(t, "TABC123", result.MemberTeam)
			assert.Equal(t, "Kim", result.Name)
			assert.NotEmpty(t, result.AccessToken)
			assert.NotEmpty(t, result.RefreshToken)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSalesMemberRepository(ctrl)
	member := newTestMember(t)
	repo.EXPECT().GetByCode(gomock.Any(), member.SalesMemberCode).Return(member, nil)

	service := NewService(repo, testAuthConfig)
	result, err := service.Login(context.Background(), member.SalesMemberCode, "Senha@123")
	require.NoError(t, err)

	claims, err := service.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.MemberID)
	assert.Equal(t, domain.RankManager, claims.MemberRank)
	assert.Equal(t, "TABC123", claims.TeamCode)
	assert.True(t, claims.IsManagerOrAdmin())
	assert.False(t, claims.IsAdmin())

	_, err = service.ValidateToken(result.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("token.invalido.aqui")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSalesMemberRepository(ctrl)
	member := newTestMember(t)

	issuer := &Service{memberRepo: repo, cfg: testAuthConfig, now: func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}}
	token, err := issuer.signToken(member, domain.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	service := NewService(repo, testAuthConfig)
	_, err = service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSalesMemberRepository(ctrl)
	member := newTestMember(t)
	repo.EXPECT().GetByCode(gomock.Any(), member.SalesMemberCode).Return(member, nil)
	repo.EXPECT().GetByID(gomock.Any(), member.ID).Return(member, nil)

	service := NewService(repo, testAuthConfig)
	login, err := service.Login(context.Background(), member.SalesMemberCode, "Senha@123")
	require.NoError(t, err)

	refreshed, err := service.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = service.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Senha@123", true},
		{"curta", false},
		{"semmaiuscula1!", false},
		{"SEMMINUSCULA1!", false},
		{"SemNumero!!", false},
		{"SemEspecial123", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}
