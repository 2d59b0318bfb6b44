// Package session modela as opções do menu principal como ações tipadas e as
// executa por um único despachante.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

var (
	ErrUnknownAction  = errors.New("invalid selection, please enter a number between 1 and 8")
	ErrMissingParam   = errors.New("selection requires a parameter")
	ErrInvalidPayload = errors.New("invalid action payload")
)

// Kind é o número da opção no menu
type Kind int

const (
	KindAddBranch Kind = iota + 1
	KindAddSale
	KindBranchSales
	KindProductPrice
	KindWeeklySales
	KindTotalSales
	KindAllBranchesSales
	KindLogout
)

var labels = map[Kind]string{
	KindAddBranch:        "Add a New Branch",
	KindAddSale:          "Add a New Sale",
	KindBranchSales:      "Specific Branch's Monthly Sales Analysis",
	KindProductPrice:     "Price Analysis of a Specific Product",
	KindWeeklySales:      "Supermarket Network's Weekly Sales Analysis",
	KindTotalSales:       "Analysis of Total Sales Amounts",
	KindAllBranchesSales: "All Branches' Monthly Sales Analysis",
	KindLogout:           "Log out",
}

func (k Kind) String() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Action é uma das oito opções do menu. A interface é fechada: só os tipos
// deste pacote a implementam.
type Action interface {
	Kind() Kind
	isAction()
}

type AddBranch struct {
	Branch domain.Branch
}

type AddSale struct {
	Sale domain.Sale
}

type BranchSalesAnalysis struct {
	BranchID string
}

type ProductPriceAnalysis struct {
	ProductID string
}

// WeeklySalesAnalysis usa a semana que contém Reference; zero significa hoje
type WeeklySalesAnalysis struct {
	Reference time.Time
}

type TotalSalesAnalysis struct{}

type AllBranchesSalesAnalysis struct{}

type Logout struct{}

func (AddBranch) Kind() Kind                { return KindAddBranch }
func (AddSale) Kind() Kind                  { return KindAddSale }
func (BranchSalesAnalysis) Kind() Kind      { return KindBranchSales }
func (ProductPriceAnalysis) Kind() Kind     { return KindProductPrice }
func (WeeklySalesAnalysis) Kind() Kind      { return KindWeeklySales }
func (TotalSalesAnalysis) Kind() Kind       { return KindTotalSales }
func (AllBranchesSalesAnalysis) Kind() Kind { return KindAllBranchesSales }
func (Logout) Kind() Kind                   { return KindLogout }

func (AddBranch) isAction()                {}
func (AddSale) isAction()                  {}
func (BranchSalesAnalysis) isAction()      {}
func (ProductPriceAnalysis) isAction()     {}
func (WeeklySalesAnalysis) isAction()      {}
func (TotalSalesAnalysis) isAction()       {}
func (AllBranchesSalesAnalysis) isAction() {}
func (Logout) isAction()                   {}

// MenuItem é uma linha do menu principal
type MenuItem struct {
	Selection string `json:"selection"`
	Label     string `json:"label"`
	Param     string `json:"param,omitempty"`
}

// Menu devolve as opções na ordem de exibição
func Menu() []MenuItem {
	items := make([]MenuItem, 0, len(labels))
	for k := KindAddBranch; k <= KindLogout; k++ {
		item := MenuItem{Selection: fmt.Sprint(int(k)), Label: k.String()}
		switch k {
		case KindBranchSales:
			item.Param = "Branch ID"
		case KindProductPrice:
			item.Param = "Product ID"
		}
		items = append(items, item)
	}
	return items
}

// Payload carrega os dados das opções de cadastro
type Payload struct {
	Branch *domain.Branch
	Sale   *domain.Sale
}

// ParseSelection converte o número escolhido no menu na ação correspondente.
// As opções 3 e 4 exigem o ID em param; a opção 5 aceita uma data YYYY-MM-DD
// opcional; 1 e 2 exigem o payload do cadastro.
func ParseSelection(selection, param string, payload Payload) (Action, error) {
	param = strings.TrimSpace(param)

	switch strings.TrimSpace(selection) {
	case "1":
		if payload.Branch == nil {
			return nil, fmt.Errorf("%w: branch data", ErrInvalidPayload)
		}
		return AddBranch{Branch: *payload.Branch}, nil
	case "2":
		if payload.Sale == nil {
			return nil, fmt.Errorf("%w: sale data", ErrInvalidPayload)
		}
		return AddSale{Sale: *payload.Sale}, nil
	case "3":
		if param == "" {
			return nil, fmt.Errorf("%w: Branch ID", ErrMissingParam)
		}
		return BranchSalesAnalysis{BranchID: param}, nil
	case "4":
		if param == "" {
			return nil, fmt.Errorf("%w: Product ID", ErrMissingParam)
		}
		return ProductPriceAnalysis{ProductID: param}, nil
	case "5":
		if param == "" {
			return WeeklySalesAnalysis{}, nil
		}
		ref, err := time.Parse(domain.SaleDateLayout, param)
		if err != nil {
			return nil, fmt.Errorf("%w: reference date %q", ErrInvalidPayload, param)
		}
		return WeeklySalesAnalysis{Reference: ref}, nil
	case "6":
		return TotalSalesAnalysis{}, nil
	case "7":
		return AllBranchesSalesAnalysis{}, nil
	case "8":
		return Logout{}, nil
	default:
		return nil, ErrUnknownAction
	}
}
