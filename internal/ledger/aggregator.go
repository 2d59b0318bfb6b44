// Package ledger contém as funções puras de filtro e agregação sobre um
// snapshot do ledger de vendas. Nenhuma função altera o snapshot recebido.
package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// ParseAmount converte o valor persistido em inteiro (base 10, sinal permitido)
func ParseAmount(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &Error{Err: ErrParse, Row: -1, Value: s}
	}
	return v, nil
}

// FilterByBranch retorna os valores das vendas da filial, na ordem do snapshot
func FilterByBranch(sales []domain.Sale, branchID string) ([]int64, error) {
	return filter(sales, func(s domain.Sale) bool { return s.BranchID == branchID })
}

// FilterByProduct retorna os valores das vendas do produto, na ordem do snapshot
func FilterByProduct(sales []domain.Sale, productID string) ([]int64, error) {
	return filter(sales, func(s domain.Sale) bool { return s.ProductID == productID })
}

// FilterByWeek retorna os valores das vendas dentro da semana da data de referência.
// A data de toda linha é validada, mesmo das que ficam fora da janela.
func FilterByWeek(sales []domain.Sale, reference time.Time) ([]int64, error) {
	week := WeekOf(reference)

	amounts := make([]int64, 0)
	for i, sale := range sales {
		day, err := ParseDate(sale.Date)
		if err != nil {
			return nil, newRowError(ErrDateFormat, i, sale.Date)
		}

		if !week.Contains(day) {
			continue
		}

		amount, err := ParseAmount(sale.Amount)
		if err != nil {
			return nil, newRowError(ErrParse, i, sale.Amount)
		}
		amounts = append(amounts, amount)
	}

	return amounts, nil
}

// ParseAmounts converte o valor de todas as vendas, na ordem do snapshot
func ParseAmounts(sales []domain.Sale) ([]int64, error) {
	return filter(sales, func(domain.Sale) bool { return true })
}

func filter(sales []domain.Sale, keep func(domain.Sale) bool) ([]int64, error) {
	amounts := make([]int64, 0)
	for i, sale := range sales {
		if !keep(sale) {
			continue
		}

		amount, err := ParseAmount(sale.Amount)
		if err != nil {
			return nil, newRowError(ErrParse, i, sale.Amount)
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}

// SumAmounts soma os valores; entrada vazia resulta em 0.
// Uma soma fora do intervalo de int64 retorna ErrOverflow com o índice do valor.
func SumAmounts(amounts []int64) (int64, error) {
	var total int64
	for i, a := range amounts {
		next, ok := addAmount(total, a)
		if !ok {
			return 0, newRowError(ErrOverflow, i, strconv.FormatInt(a, 10))
		}
		total = next
	}
	return total, nil
}

func addAmount(total, amount int64) (int64, bool) {
	sum := total + amount
	if (amount > 0 && sum < total) || (amount < 0 && sum > total) {
		return 0, false
	}
	return sum, true
}

// JoinPolicy define o que fazer com vendas de filiais ausentes do snapshot
type JoinPolicy int

const (
	// Strict falha com ErrUnknownBranch
	Strict JoinPolicy = iota
	// AutoInsert cria o bucket da filial no fim, na ordem em que aparece
	AutoInsert
)

func (p JoinPolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	case AutoInsert:
		return "auto_insert"
	default:
		return "unknown"
	}
}

// ParseJoinPolicy converte o valor de configuração em JoinPolicy
func ParseJoinPolicy(s string) (JoinPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "auto_insert", "auto-insert", "autoinsert":
		return AutoInsert, nil
	default:
		return Strict, &Error{Err: ErrUnknownPolicy, Row: -1, Value: s}
	}
}

// SumByBranch acumula o valor de cada venda no bucket da sua filial.
// Todas as filiais conhecidas começam em 0, na ordem do snapshot de filiais;
// em IDs duplicados vale a primeira definição.
func SumByBranch(sales []domain.Sale, branches []domain.Branch, policy JoinPolicy) (domain.BranchTotals, error) {
	totals := make(domain.BranchTotals, 0, len(branches))
	index := make(map[string]int, len(branches))

	for _, branch := range branches {
		if _, exists := index[branch.ID]; exists {
			continue
		}
		index[branch.ID] = len(totals)
		totals = append(totals, domain.BranchTotal{BranchID: branch.ID})
	}

	for i, sale := range sales {
		pos, known := index[sale.BranchID]
		if !known {
			if policy != AutoInsert {
				return nil, newRowError(ErrUnknownBranch, i, sale.BranchID)
			}
			pos = len(totals)
			index[sale.BranchID] = pos
			totals = append(totals, domain.BranchTotal{BranchID: sale.BranchID})
		}

		amount, err := ParseAmount(sale.Amount)
		if err != nil {
			return nil, newRowError(ErrParse, i, sale.Amount)
		}
		next, ok := addAmount(totals[pos].Total, amount)
		if !ok {
			return nil, newRowError(ErrOverflow, i, sale.Amount)
		}
		totals[pos].Total = next
	}

	return totals, nil
}
