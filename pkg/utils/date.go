package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate interpreta datas no formato YYYY-MM-DD. String vazia retorna o
// início do dia de hoje.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	return time.ParseInLocation(DateLayout, dateStr, time.Local)
}

// ParseOptionalDate devolve nil para string vazia
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
