package ledger

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// DescriptiveStats calcula média, máximo, mínimo e mediana.
// Cabe ao chamador checar se há dados; entrada vazia retorna ErrEmptyInput.
func DescriptiveStats(amounts []int64) (domain.Stats, error) {
	if len(amounts) == 0 {
		return domain.Stats{}, &Error{Err: ErrEmptyInput, Row: -1}
	}

	sorted := slices.Clone(amounts)
	slices.Sort(sorted)

	return domain.Stats{
		Count:  len(sorted),
		Mean:   Mean(sorted),
		Median: median(sorted),
		Max:    sorted[len(sorted)-1],
		Min:    sorted[0],
	}, nil
}

// Mean retorna a média exata dos valores, ou zero para entrada vazia
func Mean(amounts []int64) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(decimal.NewFromInt(a))
	}
	return sum.DivRound(decimal.NewFromInt(int64(len(amounts))), 8)
}

// median espera os valores já ordenados
func median(sorted []int64) decimal.Decimal {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return decimal.NewFromInt(sorted[mid])
	}
	pair := decimal.NewFromInt(sorted[mid-1]).Add(decimal.NewFromInt(sorted[mid]))
	return pair.Div(decimal.NewFromInt(2))
}
