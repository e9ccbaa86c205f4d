// Package response escreve o envelope padrão das respostas de sucesso
package response

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CommonResponse envolve todo payload de sucesso da API
type CommonResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Result  any    `json:"result"`
}

// Write escreve o envelope com o status informado
func Write(w http.ResponseWriter, status int, message string, result any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(CommonResponse{
		Status:  status,
		Message: message,
		Result:  result,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func OK(w http.ResponseWriter, message string, result any) {
	Write(w, http.StatusOK, message, result)
}

func Created(w http.ResponseWriter, message string, result any) {
	Write(w, http.StatusCreated, message, result)
}
