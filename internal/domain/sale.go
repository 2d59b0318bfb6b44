package domain

// SaleDateLayout é o formato usado ao registrar novas vendas (YYYY-MM-DD)
const SaleDateLayout = "2006-01-02"

// Sale é um fato imutável do ledger de vendas.
// Amount e Date guardam o texto persistido; a conversão acontece na agregação.
type Sale struct {
	BranchID  string `json:"branch_id"`
	ProductID string `json:"product_id"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
}
