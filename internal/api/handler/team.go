package handler

import (
	"net/http"

	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/internal/usecases/team"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/response"
)

type AddTeamMemberRequest struct {
	SalesMemberCode int64 `json:"salesMemberCode"`
}

func CreateTeam(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateTeamRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar time")
			return
		}

		response.Created(w, "Time criado com sucesso", created)
	}
}

func GetTeam(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := service.Get(r.Context(), stringParam(r, "code"))
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar time")
			return
		}

		response.OK(w, "Time encontrado", t)
	}
}

func ListTeams(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := service.List(r.Context())
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar times")
			return
		}

		response.OK(w, "Times listados", teams)
	}
}

func UpdateTeam(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateTeamRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, err := service.Update(r.Context(), stringParam(r, "code"), &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao atualizar time")
			return
		}

		response.OK(w, "Time atualizado com sucesso", updated)
	}
}

func DeleteTeam(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), stringParam(r, "code")); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao excluir time")
			return
		}

		response.OK(w, "Time excluído com sucesso", nil)
	}
}

func AddTeamMember(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddTeamMemberRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.SalesMemberCode == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do membro não fornecido", nil)
			return
		}

		if err := service.AddMember(r.Context(), stringParam(r, "code"), req.SalesMemberCode); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao adicionar membro ao time")
			return
		}

		response.OK(w, "Membro adicionado ao time", nil)
	}
}

func RemoveTeamMember(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberCode, ok := int64Param(w, r, "memberCode")
		if !ok {
			return
		}

		if err := service.RemoveMember(r.Context(), stringParam(r, "code"), memberCode); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao remover membro do time")
			return
		}

		response.OK(w, "Membro removido do time", nil)
	}
}

func UpdateTeamPerformanceReview(service team.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PerformanceReviewRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.UpdatePerformanceReview(r.Context(), stringParam(r, "code"), req.PerformanceReview); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao atualizar avaliação do time")
			return
		}

		response.OK(w, "Avaliação atualizada com sucesso", nil)
	}
}
