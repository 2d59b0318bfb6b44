package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/subcommands"
	"github.com/vfg2006/sales-ledger-api/internal/app"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/session"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// env é o estado compartilhado pelos comandos durante uma execução
type env struct {
	app        *app.App
	dispatcher *session.Dispatcher
	out        io.Writer
	errOut     io.Writer

	username string
	password string
	json     bool
}

func newEnv(a *app.App, out, errOut io.Writer) *env {
	return &env{
		app:        a,
		dispatcher: session.NewDispatcher(a.Recorder, a.Reporter),
		out:        out,
		errOut:     errOut,
	}
}

func envFrom(args []interface{}) *env {
	for _, arg := range args {
		if e, ok := arg.(*env); ok {
			return e
		}
	}
	panic("ledger: command executed without environment")
}

// login exige -u e -p válidos antes de qualquer operação
func (e *env) login(ctx context.Context) subcommands.ExitStatus {
	if e.username == "" || e.password == "" {
		fmt.Fprintln(e.errOut, "Error: -u and -p are required.")
		return subcommands.ExitUsageError
	}

	if _, err := e.app.Authenticator.LoginUser(ctx, e.username, e.password); err != nil {
		if authenticating.IsCredentialsError(err) {
			fmt.Fprintln(e.errOut, "Incorrect Username or Password.")
		} else {
			fmt.Fprintf(e.errOut, "Error logging in: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// dispatch autentica, executa a ação e imprime o resultado
func (e *env) dispatch(ctx context.Context, action session.Action) subcommands.ExitStatus {
	if status := e.login(ctx); status != subcommands.ExitSuccess {
		return status
	}

	result, err := e.dispatcher.Dispatch(ctx, action)
	if err != nil {
		fmt.Fprintf(e.errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return e.print(result.Message, result.Data)
}

func (e *env) print(message string, data any) subcommands.ExitStatus {
	if e.json {
		payload := map[string]any{"message": message}
		if data != nil {
			payload["data"] = data
		}
		fmt.Fprintln(e.out, utils.PrettyJson(payload))
		return subcommands.ExitSuccess
	}

	fmt.Fprintln(e.out, message)
	for _, line := range textLines(data) {
		fmt.Fprintln(e.out, line)
	}
	return subcommands.ExitSuccess
}

func textLines(data any) []string {
	switch d := data.(type) {
	case *domain.Branch:
		return []string{fmt.Sprintf("ID: %s  Name: %s  Location: %s", d.ID, d.Name, d.Location)}
	case *domain.Product:
		return []string{fmt.Sprintf("ID: %s  Name: %s", d.ID, d.Name)}
	case *domain.Sale:
		return []string{fmt.Sprintf("Branch: %s  Product: %s  Amount: %s  Date: %s", d.BranchID, d.ProductID, d.Amount, d.Date)}
	case *domain.BranchSalesReport:
		if d.NoData {
			return nil
		}
		return []string{
			"Amounts: " + joinAmounts(d.Amounts),
			fmt.Sprintf("Total: %d %s", d.Total, d.Currency),
		}
	case *domain.ProductPriceReport:
		if d.NoData || d.Stats == nil {
			return nil
		}
		return []string{
			fmt.Sprintf("Count: %d", d.Stats.Count),
			fmt.Sprintf("Mean: %s %s", d.Stats.Mean.StringFixed(2), d.Currency),
			fmt.Sprintf("Median: %s %s", d.Stats.Median.StringFixed(2), d.Currency),
			fmt.Sprintf("Max: %d %s", d.Stats.Max, d.Currency),
			fmt.Sprintf("Min: %d %s", d.Stats.Min, d.Currency),
		}
	case *domain.WeeklySalesReport:
		return []string{
			fmt.Sprintf("Week: %s to %s", d.Week.Start.Format(domain.SaleDateLayout), d.Week.End.Format(domain.SaleDateLayout)),
			fmt.Sprintf("Sales: %d", len(d.Amounts)),
			fmt.Sprintf("Total: %d %s", d.Total, d.Currency),
			fmt.Sprintf("Average: %s %s", d.Average.StringFixed(2), d.Currency),
		}
	case *domain.TotalSalesReport:
		return []string{
			fmt.Sprintf("Sales: %d", d.SalesCount),
			fmt.Sprintf("Total: %d %s", d.Total, d.Currency),
		}
	case *domain.AllBranchesSalesReport:
		lines := make([]string, 0, len(d.Totals))
		for _, bt := range d.Totals {
			lines = append(lines, fmt.Sprintf("Branch %s: %d %s", bt.BranchID, bt.Total, d.Currency))
		}
		return lines
	default:
		return nil
	}
}

func joinAmounts(amounts []int64) string {
	parts := make([]string, len(amounts))
	for i, a := range amounts {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, ", ")
}
