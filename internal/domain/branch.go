// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Branch representa uma filial da rede de supermercados
type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Product representa um produto vendido pelas filiais
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
