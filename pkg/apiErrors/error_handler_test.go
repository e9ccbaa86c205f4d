package apiErrors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedErr struct{ code string }

func (e *codedErr) Error() string     { return "erro de domínio" }
func (e *codedErr) ErrorCode() string { return e.code }

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{"Credenciais inválidas", ErrInvalidCredentials, http.StatusUnauthorized},
		{"Sem dados de venda", ErrNoSalesData, http.StatusNotFound},
		{"Duplicado", ErrAlreadyExists, http.StatusConflict},
		{"Código desconhecido", "XXX_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestWriteFromError(t *testing.T) {
	t.Run("Erro tipado usa o próprio código", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := fmt.Errorf("contexto: %w", &codedErr{code: ErrTeamNotFound})

		WriteFromError(rec, err, "falha")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrTeamNotFound)
	})

	t.Run("Erro genérico vira erro interno", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteFromError(rec, fmt.Errorf("conexão recusada"), "falha ao listar")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "falha ao listar")
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrBoardNotFound, CodeOf(fmt.Errorf("x: %w", &codedErr{code: ErrBoardNotFound})))
	assert.Empty(t, CodeOf(fmt.Errorf("sem código")))
}
