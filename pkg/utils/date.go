package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate interpreta datas no formato YYYY-MM-DD; vazio devolve o fallback
func ParseDate(dateStr string, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return fallback, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}

// Today formata o dia corrente do relógio informado
func Today(now func() time.Time) string {
	return now().Format(DateLayout)
}
