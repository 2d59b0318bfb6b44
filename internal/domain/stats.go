package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats agrupa as estatísticas descritivas de uma sequência de valores
type Stats struct {
	Count  int             `json:"count"`
	Mean   decimal.Decimal `json:"mean"`
	Median decimal.Decimal `json:"median"`
	Max    int64           `json:"max"`
	Min    int64           `json:"min"`
}

// Week é a janela ISO de segunda a domingo, inclusiva nas duas pontas
type Week struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains informa se o dia está dentro da semana
func (w Week) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

type BranchTotal struct {
	BranchID string `json:"branch_id"`
	Total    int64  `json:"total"`
}

// BranchTotals é um mapeamento ordenado filial -> total vendido.
// A ordem segue a ordem das filiais no snapshot.
type BranchTotals []BranchTotal

// Get retorna o total de uma filial
func (t BranchTotals) Get(branchID string) (int64, bool) {
	for _, bt := range t {
		if bt.BranchID == branchID {
			return bt.Total, true
		}
	}
	return 0, false
}

// Sum retorna a soma de todos os totais
func (t BranchTotals) Sum() int64 {
	var sum int64
	for _, bt := range t {
		sum += bt.Total
	}
	return sum
}

func (t BranchTotals) AsMap() map[string]int64 {
	m := make(map[string]int64, len(t))
	for _, bt := range t {
		m[bt.BranchID] = bt.Total
	}
	return m
}
