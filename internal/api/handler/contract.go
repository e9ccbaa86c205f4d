package handler

import (
	"net/http"
	"strconv"

	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/internal/usecases/contract"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/response"
	"github.com/alioth/insurance-sales-api/pkg/utils"
)

func CreateContract(service contract.ContractService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateContractRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), claims, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar contrato")
			return
		}

		response.Created(w, "Contrato criado com sucesso", created)
	}
}

func GetContract(service contract.ContractService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		c, err := service.Get(r.Context(), claims, id)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar contrato")
			return
		}

		response.OK(w, "Contrato encontrado", c)
	}
}

// ListContracts aceita memberCode, status, startDate e endDate (YYYY-MM-DD,
// ambos inclusivos) na query string
func ListContracts(service contract.ContractService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		filter, err := parseContractFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro de contratos inválido", nil)
			return
		}

		contracts, err := service.List(r.Context(), claims, filter)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar contratos")
			return
		}

		response.OK(w, "Contratos listados", contracts)
	}
}

func parseContractFilter(r *http.Request) (contract.ListFilter, error) {
	query := r.URL.Query()
	filter := contract.ListFilter{
		Status: domain.ContractStatus(query.Get("status")),
	}

	if raw := query.Get("memberCode"); raw != "" {
		code, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.MemberCode = &code
	}

	start, err := utils.ParseOptionalDate(query.Get("startDate"))
	if err != nil {
		return filter, err
	}
	filter.StartDate = start

	end, err := utils.ParseOptionalDate(query.Get("endDate"))
	if err != nil {
		return filter, err
	}
	if end != nil {
		next := end.AddDate(0, 0, 1)
		filter.EndDate = &next
	}

	return filter, nil
}

func UpdateContract(service contract.ContractService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateContractRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, err := service.Update(r.Context(), claims, id, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao atualizar contrato")
			return
		}

		response.OK(w, "Contrato atualizado com sucesso", updated)
	}
}

func CancelContract(service contract.ContractService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		if err := service.Cancel(r.Context(), claims, id); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao cancelar contrato")
			return
		}

		response.OK(w, "Contrato cancelado com sucesso", nil)
	}
}
