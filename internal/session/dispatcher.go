package session

import (
	"context"
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/usecases/recording"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

// Result é o retorno de uma ação: uma mensagem curta e, quando houver, os
// dados produzidos (entidade cadastrada ou relatório).
type Result struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Logout  bool   `json:"logout,omitempty"`
}

type Dispatcher struct {
	recorder recording.Recorder
	reporter reporting.Reporter
	now      func() time.Time
}

func NewDispatcher(recorder recording.Recorder, reporter reporting.Reporter) *Dispatcher {
	return &Dispatcher{
		recorder: recorder,
		reporter: reporter,
		now:      time.Now,
	}
}

// Dispatch executa a ação. Erros dos casos de uso são devolvidos sem alteração.
func (d *Dispatcher) Dispatch(ctx context.Context, action Action) (*Result, error) {
	if action == nil {
		return nil, ErrUnknownAction
	}
	log.ForContext(ctx).WithField("job", action.Kind().String()).Debug("Executando ação do menu")

	switch a := action.(type) {
	case AddBranch:
		branch, err := d.recorder.AddBranch(ctx, a.Branch)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: a.Kind(), Message: "Branch " + branch.Name + " added successfully.", Data: branch}, nil

	case AddSale:
		sale, err := d.recorder.AddSale(ctx, a.Sale)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: a.Kind(), Message: "Sale added successfully.", Data: sale}, nil

	case BranchSalesAnalysis:
		rep, err := d.reporter.BranchSales(ctx, a.BranchID)
		if err != nil {
			return nil, err
		}
		msg := "Monthly Sales Analysis - Branch " + a.BranchID
		if rep.NoData {
			msg = rep.Message
		}
		return &Result{Kind: a.Kind(), Message: msg, Data: rep}, nil

	case ProductPriceAnalysis:
		rep, err := d.reporter.ProductPrice(ctx, a.ProductID)
		if err != nil {
			return nil, err
		}
		msg := "Price Analysis - Product " + a.ProductID
		if rep.NoData {
			msg = rep.Message
		}
		return &Result{Kind: a.Kind(), Message: msg, Data: rep}, nil

	case WeeklySalesAnalysis:
		ref := a.Reference
		if ref.IsZero() {
			ref = d.now()
		}
		rep, err := d.reporter.WeeklySales(ctx, ref)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: a.Kind(), Message: "Weekly Sales Analysis - Supermarket Network", Data: rep}, nil

	case TotalSalesAnalysis:
		rep, err := d.reporter.TotalSales(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: a.Kind(), Message: "Total Of Sales Amount Analysis", Data: rep}, nil

	case AllBranchesSalesAnalysis:
		rep, err := d.reporter.AllBranchesSales(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: a.Kind(), Message: "Monthly Sales Analysis of All Branches", Data: rep}, nil

	case Logout:
		return &Result{Kind: a.Kind(), Message: "Logged out!", Logout: true}, nil

	default:
		return nil, ErrUnknownAction
	}
}
