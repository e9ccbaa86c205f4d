package team

import (
	"errors"
	"fmt"
)

var (
	ErrTeamNotFound        = errors.New("time não encontrado")
	ErrManagerNotFound     = errors.New("gerente não encontrado")
	ErrMemberNotFound      = errors.New("membro não encontrado")
	ErrMemberNotInTeam     = errors.New("membro não pertence ao time")
	ErrCannotRemoveManager = errors.New("o gerente não pode ser removido do próprio time")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidReview       = errors.New("avaliação de desempenho inválida")
)

type TeamError struct {
	Err     error
	Code    string
	Details string
}

func (e *TeamError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TeamError) Unwrap() error {
	return e.Err
}

func (e *TeamError) ErrorCode() string {
	return e.Code
}

func NewTeamError(baseErr error, code string, details string) *TeamError {
	return &TeamError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
