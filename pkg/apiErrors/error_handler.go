package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrMemberQuit            = "AUTH_002" // Membro desligado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrWeakPassword        = "VAL_004" // Senha fora da política
	ErrInvalidPeriod       = "VAL_005" // Período de estatística desconhecido

	// Erros de recurso
	ErrMemberNotFound   = "RES_001"
	ErrTeamNotFound     = "RES_002"
	ErrContractNotFound = "RES_003"
	ErrScheduleNotFound = "RES_004"
	ErrBoardNotFound    = "RES_005"
	ErrAnswerNotFound   = "RES_006"
	ErrCatalogNotFound  = "RES_007" // Produto, cliente ou segurado
	ErrNoSalesData      = "RES_008" // Nenhuma venda elegível na janela
	ErrAlreadyExists    = "RES_009"
	ErrJobRunning       = "RES_010" // Sincronização já em andamento
	ErrCodeExhausted    = "RES_011" // Sequência de códigos do ano esgotada

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrMemberQuit:            http.StatusForbidden,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrWeakPassword:          http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrMemberNotFound:        http.StatusNotFound,
	ErrTeamNotFound:          http.StatusNotFound,
	ErrContractNotFound:      http.StatusNotFound,
	ErrScheduleNotFound:      http.StatusNotFound,
	ErrBoardNotFound:         http.StatusNotFound,
	ErrAnswerNotFound:        http.StatusNotFound,
	ErrCatalogNotFound:       http.StatusNotFound,
	ErrNoSalesData:           http.StatusNotFound,
	ErrAlreadyExists:         http.StatusConflict,
	ErrJobRunning:            http.StatusConflict,
	ErrCodeExhausted:         http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// CodedError é implementado pelos erros tipados dos casos de uso
type CodedError interface {
	error
	ErrorCode() string
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Warn("Erro ao escrever resposta de erro")
	}
}

// WriteFromError usa o código do erro tipado quando existir; caso contrário
// responde com erro interno e a mensagem genérica informada
func WriteFromError(w http.ResponseWriter, err error, fallbackMessage string) {
	var coded CodedError
	if errors.As(err, &coded) {
		WriteError(w, coded.ErrorCode(), coded.Error(), nil)
		return
	}

	logrus.WithError(err).Error(fallbackMessage)
	WriteError(w, ErrInternalServer, fallbackMessage, nil)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

// CodeOf retorna o código do erro tipado ou vazio quando não houver
func CodeOf(err error) string {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ""
}
