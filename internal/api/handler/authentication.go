package handler

import (
	"net/http"

	"github.com/alioth/insurance-sales-api/internal/usecases/authenticating"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/alioth/insurance-sales-api/pkg/response"
	"github.com/pkg/errors"
)

type LoginRequest struct {
	MemberCode int64  `json:"memberCode"`
	Password   string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.Login(r.Context(), req.MemberCode, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		response.OK(w, "Login realizado com sucesso", result)
	}
}

// Refresh troca um refresh token válido por um novo par de tokens
func Refresh(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest

		if !decodeBody(w, r, &req) {
			return
		}

		if req.RefreshToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Refresh token não fornecido", nil)
			return
		}

		result, err := service.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		response.OK(w, "Token renovado", result)
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.MemberCode != 0 {
			details = map[string]any{"member_code": authErr.MemberCode}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro interno ao realizar login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
