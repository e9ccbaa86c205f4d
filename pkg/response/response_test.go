package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	Created(rec, "Time criado", map[string]string{"teamCode": "TABC123"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Status  int               `json:"status"`
		Message string            `json:"message"`
		Result  map[string]string `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, body.Status)
	assert.Equal(t, "Time criado", body.Message)
	assert.Equal(t, "TABC123", body.Result["teamCode"])
}

func TestOK_NilResult(t *testing.T) {
	rec := httptest.NewRecorder()

	OK(rec, "Removido", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"Removido","result":null}`, rec.Body.String())
}
