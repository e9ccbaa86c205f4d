package contract

import (
	"errors"
	"fmt"
)

var (
	ErrContractNotFound      = errors.New("contrato não encontrado")
	ErrMemberNotFound        = errors.New("membro não encontrado")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrInvalidStatus         = errors.New("status de contrato inválido")
	ErrInvalidValue          = errors.New("valor de contrato inválido")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrAlreadyCancelled      = errors.New("contrato já cancelado")
)

type ContractError struct {
	Err     error
	Code    string
	Details string
}

func (e *ContractError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func (e *ContractError) ErrorCode() string {
	return e.Code
}

func NewContractError(baseErr error, code string, details string) *ContractError {
	return &ContractError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
