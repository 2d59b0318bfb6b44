package domain

import "github.com/shopspring/decimal"

// BranchSalesReport é a análise de vendas de uma filial específica
type BranchSalesReport struct {
	BranchID  string  `json:"branch_id"`
	Amounts   []int64 `json:"amounts"`
	Total     int64   `json:"total"`
	Currency  string  `json:"currency"`
	NoData    bool    `json:"no_data"`
	Message   string  `json:"message,omitempty"`
	Histogram *Chart  `json:"histogram,omitempty"`
}

// ProductPriceReport é a análise de preços de um produto
type ProductPriceReport struct {
	ProductID string  `json:"product_id"`
	Amounts   []int64 `json:"amounts"`
	Stats     *Stats  `json:"stats,omitempty"`
	Currency  string  `json:"currency"`
	NoData    bool    `json:"no_data"`
	Message   string  `json:"message,omitempty"`
	BoxPlot   *Chart  `json:"boxplot,omitempty"`
}

// WeeklySalesReport é a análise semanal da rede inteira
type WeeklySalesReport struct {
	Week     Week            `json:"week"`
	Amounts  []int64         `json:"amounts"`
	Total    int64           `json:"total"`
	Average  decimal.Decimal `json:"average"`
	Currency string          `json:"currency"`
}

type TotalSalesReport struct {
	Total      int64  `json:"total"`
	SalesCount int    `json:"sales_count"`
	Currency   string `json:"currency"`
}

// AllBranchesSalesReport traz o total vendido por filial
type AllBranchesSalesReport struct {
	Totals   BranchTotals `json:"totals"`
	Currency string       `json:"currency"`
	Chart    *Chart       `json:"chart,omitempty"`
}
