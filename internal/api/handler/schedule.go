package handler

import (
	"net/http"
	"time"

	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/internal/usecases/schedule"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/response"
	"github.com/alioth/insurance-sales-api/pkg/utils"
)

func CreateSchedule(service schedule.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req domain.ScheduleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), claims, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar agenda")
			return
		}

		response.Created(w, "Agenda criada com sucesso", created)
	}
}

func GetSchedule(service schedule.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		s, err := service.Get(r.Context(), claims, id)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar agenda")
			return
		}

		response.OK(w, "Agenda encontrada", s)
	}
}

// ListSchedules lista as agendas próprias e as compartilhadas do time que
// cruzam o intervalo opcional start/end (YYYY-MM-DD)
func ListSchedules(service schedule.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		start, err := utils.ParseOptionalDate(query.Get("start"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", nil)
			return
		}

		end, err := utils.ParseOptionalDate(query.Get("end"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", nil)
			return
		}
		if end != nil {
			endOfDay := end.AddDate(0, 0, 1).Add(-time.Second)
			end = &endOfDay
		}

		schedules, err := service.List(r.Context(), claims, start, end)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar agendas")
			return
		}

		response.OK(w, "Agendas listadas", schedules)
	}
}

func UpdateSchedule(service schedule.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		var req domain.ScheduleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, err := service.Update(r.Context(), claims, id, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao atualizar agenda")
			return
		}

		response.OK(w, "Agenda atualizada com sucesso", updated)
	}
}

func DeleteSchedule(service schedule.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims, id); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao excluir agenda")
			return
		}

		response.OK(w, "Agenda excluída com sucesso", nil)
	}
}
