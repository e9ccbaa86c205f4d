package authenticating

import (
	"context"
	"time"

	"github.com/alioth/insurance-sales-api/infrastructure/repository"
	"github.com/alioth/insurance-sales-api/internal/config"
	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type Authenticator interface {
	Login(ctx context.Context, memberCode int64, password string) (*domain.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.LoginResult, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	memberRepo repository.SalesMemberRepository
	cfg        config.Auth
	now        func() time.Time
}

func NewService(memberRepo repository.SalesMemberRepository, cfg config.Auth) Authenticator {
	return &Service{
		memberRepo: memberRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *Service) Login(ctx context.Context, memberCode int64, password string) (*domain.LoginResult, error) {
	if memberCode == 0 || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Código do membro e senha são obrigatórios")
	}

	member, err := s.memberRepo.GetByCode(ctx, memberCode)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar membro")
	}

	if member == nil || !CheckPassword(member.PasswordHash, password) {
		log.ForContext(ctx).WithField("member_code", memberCode).Warn("Tentativa de login com credenciais inválidas")
		return nil, NewMemberAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, memberCode, "")
	}

	if member.Quit {
		return nil, NewMemberAuthError(ErrMemberQuit, apiErrors.ErrMemberQuit, memberCode, "")
	}

	return s.issueTokens(member)
}

// Refresh valida o refresh token, confere que o membro continua ativo e emite
// um novo par de tokens
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*domain.LoginResult, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != domain.TokenTypeRefresh {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "o token informado não é um refresh token")
	}

	member, err := s.memberRepo.GetByID(ctx, claims.MemberID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar membro")
	}

	if member == nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "membro do token não existe")
	}

	if member.Quit {
		return nil, NewMemberAuthError(ErrMemberQuit, apiErrors.ErrMemberQuit, member.SalesMemberCode, "")
	}

	return s.issueTokens(member)
}

// ValidateToken aceita apenas access tokens
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != domain.TokenTypeAccess {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "refresh token não pode ser usado para acesso")
	}

	return claims, nil
}

func (s *Service) parseToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) issueTokens(member *domain.SalesMember) (*domain.LoginResult, error) {
	accessToken, err := s.signToken(member, domain.TokenTypeAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar access token")
	}

	refreshToken, err := s.signToken(member, domain.TokenTypeRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar refresh token")
	}

	teamCode := ""
	if member.TeamCode != nil {
		teamCode = *member.TeamCode
	}

	return &domain.LoginResult{
		MemberCode:   member.SalesMemberCode,
		MemberRank:   string(member.Rank),
		MemberTeam:   teamCode,
		Name:         member.Name,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *Service) signToken(member *domain.SalesMember, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()

	teamCode := ""
	if member.TeamCode != nil {
		teamCode = *member.TeamCode
	}

	claims := &domain.Claims{
		MemberID:   member.ID,
		MemberCode: member.SalesMemberCode,
		MemberName: member.Name,
		MemberRank: member.Rank,
		TeamCode:   teamCode,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "insurance-sales-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
