package member

import (
	"errors"
	"fmt"
)

var (
	ErrMemberNotFound        = errors.New("membro não encontrado")
	ErrMemberAlreadyExists   = errors.New("email já cadastrado")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrInvalidRank           = errors.New("cargo inválido")
	ErrInvalidReview         = errors.New("avaliação de desempenho inválida")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrWrongPassword         = errors.New("senha atual incorreta")
	ErrSamePassword          = errors.New("nova senha deve ser diferente da atual")
	ErrMemberCodeExhausted   = errors.New("códigos de membro esgotados para o ano")
)

// MemberError carrega o código de API junto ao erro de domínio
type MemberError struct {
	Err     error
	Code    string
	Details string
}

func (e *MemberError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MemberError) Unwrap() error {
	return e.Err
}

func (e *MemberError) ErrorCode() string {
	return e.Code
}

func NewMemberError(baseErr error, code string, details string) *MemberError {
	return &MemberError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
