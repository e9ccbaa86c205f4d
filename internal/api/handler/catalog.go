package handler

import (
	"net/http"

	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/internal/usecases/catalog"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/response"
)

// Produtos, clientes e segurados compartilham o mesmo formato de handler

func CreateProduct(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.InsuranceProduct
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateProduct(r.Context(), &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar produto")
			return
		}

		response.Created(w, "Produto criado com sucesso", created)
	}
}

func GetProduct(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		product, err := service.GetProduct(r.Context(), id)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar produto")
			return
		}

		response.OK(w, "Produto encontrado", product)
	}
}

func ListProducts(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar produtos")
			return
		}

		response.OK(w, "Produtos listados", products)
	}
}

func CreateCustomer(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Customer
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateCustomer(r.Context(), &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar cliente")
			return
		}

		response.Created(w, "Cliente criado com sucesso", created)
	}
}

func GetCustomer(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		customer, err := service.GetCustomer(r.Context(), id)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar cliente")
			return
		}

		response.OK(w, "Cliente encontrado", customer)
	}
}

func ListCustomers(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context())
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar clientes")
			return
		}

		response.OK(w, "Clientes listados", customers)
	}
}

func CreateContractMember(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ContractMember
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateContractMember(r.Context(), &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar segurado")
			return
		}

		response.Created(w, "Segurado criado com sucesso", created)
	}
}

func GetContractMember(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		cm, err := service.GetContractMember(r.Context(), id)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar segurado")
			return
		}

		response.OK(w, "Segurado encontrado", cm)
	}
}

func ListContractMembers(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.ListContractMembers(r.Context())
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar segurados")
			return
		}

		response.OK(w, "Segurados listados", members)
	}
}
