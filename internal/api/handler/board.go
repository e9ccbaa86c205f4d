package handler

import (
	"net/http"

	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/internal/usecases/board"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/response"
)

func CreateBoard(service board.BoardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req domain.BoardRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), claims, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar publicação")
			return
		}

		response.Created(w, "Publicação criada com sucesso", created)
	}
}

func GetBoard(service board.BoardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		b, err := service.Get(r.Context(), id)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao buscar publicação")
			return
		}

		response.OK(w, "Publicação encontrada", b)
	}
}

// ListBoards filtra por ?type=Notice|QnA; sem o parâmetro usa QnA
func ListBoards(service board.BoardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardType := domain.BoardType(r.URL.Query().Get("type"))

		boards, err := service.List(r.Context(), boardType)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar publicações")
			return
		}

		response.OK(w, "Publicações listadas", boards)
	}
}

func UpdateBoard(service board.BoardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		var req domain.BoardRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, err := service.Update(r.Context(), claims, id, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao atualizar publicação")
			return
		}

		response.OK(w, "Publicação atualizada com sucesso", updated)
	}
}

func DeleteBoard(service board.BoardService) http.HandlerFunc {
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
			apiErrors.WriteFromError(w, err, "Erro ao excluir publicação")
			return
		}

		response.OK(w, "Publicação excluída com sucesso", nil)
	}
}

func CreateAnswer(service board.BoardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		boardID, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		var req domain.AnswerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateAnswer(r.Context(), claims, boardID, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao criar resposta")
			return
		}

		response.Created(w, "Resposta criada com sucesso", created)
	}
}

func ListAnswers(service board.BoardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		answers, err := service.ListAnswers(r.Context(), boardID)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao listar respostas")
			return
		}

		response.OK(w, "Respostas listadas", answers)
	}
}

func UpdateAnswer(service board.BoardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		var req domain.AnswerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, err := service.UpdateAnswer(r.Context(), claims, id, &req)
		if err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao atualizar resposta")
			return
		}

		response.OK(w, "Resposta atualizada com sucesso", updated)
	}
}

func DeleteAnswer(service board.BoardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteAnswer(r.Context(), claims, id); err != nil {
			apiErrors.WriteFromError(w, err, "Erro ao excluir resposta")
			return
		}

		response.OK(w, "Resposta excluída com sucesso", nil)
	}
}
