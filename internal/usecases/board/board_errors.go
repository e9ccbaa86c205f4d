package board

import "errors"

var (
	ErrBoardNotFound         = errors.New("publicação não encontrada")
	ErrAnswerNotFound        = errors.New("resposta não encontrada")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrInvalidBoardType      = errors.New("tipo de publicação inválido")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
)

type BoardError struct {
	Err  error
	Code string
}

func (e *BoardError) Error() string {
	return e.Err.Error()
}

func (e *BoardError) Unwrap() error {
	return e.Err
}

func (e *BoardError) ErrorCode() string {
	return e.Code
}

func newError(err error, code string) *BoardError {
	return &BoardError{Err: err, Code: code}
}
