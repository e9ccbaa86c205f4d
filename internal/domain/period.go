package domain

import (
	"fmt"
	"time"
)

type Period string

const (
	PeriodDay     Period = "day"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

const MonthLayout = "01-2006"

func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	switch p {
	case PeriodDay, PeriodMonth, PeriodQuarter, PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("período inválido: %q", s)
}

// Window retorna o intervalo semiaberto [start, end) do período que contém ref
func (p Period) Window(ref time.Time) (time.Time, time.Time) {
	loc := ref.Location()
	switch p {
	case PeriodDay:
		start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 0, 1)
	case PeriodQuarter:
		firstMonth := time.Month((int(ref.Month())-1)/3*3 + 1)
		start := time.Date(ref.Year(), firstMonth, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 3, 0)
	case PeriodYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0)
	default:
		start := FirstDayOfMonth(ref)
		return start, start.AddDate(0, 1, 0)
	}
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
