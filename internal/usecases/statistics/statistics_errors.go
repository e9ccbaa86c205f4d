package statistics

import (
	"errors"
	"fmt"
)

var ErrInvalidPeriod = errors.New("período de estatística inválido")

type StatisticsError struct {
	Err     error
	Code    string
	Details string
}

func (e *StatisticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StatisticsError) Unwrap() error {
	return e.Err
}

func (e *StatisticsError) ErrorCode() string {
	return e.Code
}
