package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate indica violação de chave única no banco
var ErrDuplicate = errors.New("registro duplicado")

const uniqueViolation = "23505"

// translateError converte erros conhecidos do driver em erros do repositório
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
