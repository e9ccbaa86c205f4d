package handler

import (
	"net/http"

	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/internal/usecases/member"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
	"github.com/alioth/insurance-sales-api/pkg/response"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type PerformanceReviewRequest struct {
	PerformanceReview string `json:"performanceReview"`
}

func CreateMember(service member.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateMemberRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar membro")
			return
		}

		response.Created(w, "Membro criado com sucesso", created)
	}
}

func GetMember(service member.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := int64Param(w, r, "code")
		if !ok {
			return
		}

		m, err := service.Get(r.Context(), code)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar membro")
			return
		}

		response.OK(w, "Membro encontrado", m)
	}
}

// ListMembers aceita os filtros opcionais teamCode e rank na query string
func ListMembers(service member.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := domain.MemberFilter{
			TeamCode: query.Get("teamCode"),
			Rank:     domain.MemberRank(query.Get("rank")),
		}

		if filter.Rank != "" && !filter.Rank.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Cargo inválido", nil)
			return
		}

		members, err := service.List(r.Context(), filter)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar membros")
			return
		}

		response.OK(w, "Membros listados", members)
	}
}

// GetMe retorna as informações do membro logado
func GetMe(service member.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		m, err := service.Me(r.Context(), claims)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao obter dados do membro")
			return
		}

		response.OK(w, "Membro encontrado", m)
	}
}

func UpdateMember(service member.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		code, ok := int64Param(w, r, "code")
		if !ok {
			return
		}

		var req domain.UpdateMemberRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, err := service.Update(r.Context(), claims, code, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao atualizar membro")
			return
		}

		response.OK(w, "Membro atualizado com sucesso", updated)
	}
}

func UpdateMemberPerformanceReview(service member.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := int64Param(w, r, "code")
		if !ok {
			return
		}

		var req PerformanceReviewRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.UpdatePerformanceReview(r.Context(), code, req.PerformanceReview); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao atualizar avaliação do membro")
			return
		}

		response.OK(w, "Avaliação atualizada com sucesso", nil)
	}
}

// ChangePassword permite que o membro altere a própria senha
func ChangePassword(service member.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		code, ok := int64Param(w, r, "code")
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.CurrentPassword == "" || req.NewPassword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Senha atual e nova senha são obrigatórias", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), claims, code, req.CurrentPassword, req.NewPassword); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao alterar senha")
			return
		}

		log.ForContext(r.Context()).WithField("member_code", code).Info("Senha alterada")
		response.OK(w, "Senha alterada com sucesso", nil)
	}
}

func QuitMember(service member.MemberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := int64Param(w, r, "code")
		if !ok {
			return
		}

		if err := service.Quit(r.Context(), code); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao desligar membro")
			return
		}

		response.OK(w, "Membro desligado com sucesso", nil)
	}
}
