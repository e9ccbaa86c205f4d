package middleware

import (
	"net/http"
	"slices"

	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RoleMiddleware cria um middleware que restringe o acesso com base no cargo
// allowedRanks é a lista de cargos que têm permissão para acessar a rota
func RoleMiddleware(allowedRanks []domain.MemberRank) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Membro não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRanks, claims.MemberRank) {
				logrus.Warningf("Acesso negado para membro=%d, cargo=%s", claims.MemberCode, claims.MemberRank)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.MemberRank{domain.RankAdmin})
}

// ManagerOrAdmin permite acesso para gerentes e administradores
func ManagerOrAdmin() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.MemberRank{domain.RankAdmin, domain.RankManager})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.MemberRank{domain.RankAdmin, domain.RankManager, domain.RankFP})
}
