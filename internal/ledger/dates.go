package ledger

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// DateFormats lista os formatos aceitos, em ordem de prioridade.
// O primeiro que fizer o parse vence: "01/02/2024" é lido como 2 de janeiro
// (MM/DD/YYYY) mesmo que também seja um DD/MM/YYYY válido.
// Mês e dia aceitam um ou dois dígitos ("2024-1-5").
var DateFormats = []string{
	"2006-1-2", // YYYY-MM-DD
	"1/2/2006", // MM/DD/YYYY
	"2/1/2006", // DD/MM/YYYY
	"2006/1/2", // YYYY/MM/DD
}

// ParseDate converte a data persistida em um dia do calendário (meia-noite UTC)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, &Error{Err: ErrDateFormat, Row: -1, Value: s}
}

// Day normaliza um instante para o seu dia do calendário, descartando o fuso
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekOf calcula a janela de segunda a domingo que contém a data de referência
func WeekOf(reference time.Time) domain.Week {
	day := Day(reference)
	// time.Weekday começa no domingo; aqui segunda = 0
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return domain.Week{
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}
