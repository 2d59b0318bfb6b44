// Package reporting executa as análises de vendas sobre um snapshot novo do
// ledger a cada chamada.
package reporting

//go:generate mockgen -source=service.go -destination=mocks/reporter.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/ledger"
	"github.com/vfg2006/sales-ledger-api/internal/report"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

type Reporter interface {
	BranchSales(ctx context.Context, branchID string) (*domain.BranchSalesReport, error)
	ProductPrice(ctx context.Context, productID string) (*domain.ProductPriceReport, error)
	WeeklySales(ctx context.Context, reference time.Time) (*domain.WeeklySalesReport, error)
	TotalSales(ctx context.Context) (*domain.TotalSalesReport, error)
	AllBranchesSales(ctx context.Context) (*domain.AllBranchesSalesReport, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	branchRepo repository.BranchRepository
	policy     ledger.JoinPolicy
	currency   string
	bins       int
}

func NewService(saleRepo repository.SaleRepository, branchRepo repository.BranchRepository, cfg *config.Config) (Reporter, error) {
	policy, err := ledger.ParseJoinPolicy(cfg.Ledger.JoinPolicy)
	if err != nil {
		return nil, err
	}

	bins := cfg.Ledger.HistogramBins
	if bins <= 0 {
		bins = report.DefaultBins
	}

	return &Service{
		saleRepo:   saleRepo,
		branchRepo: branchRepo,
		policy:     policy,
		currency:   cfg.Ledger.Currency,
		bins:       bins,
	}, nil
}

func (s *Service) loadSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar vendas")
		return nil, NewReportError(ErrLoadSnapshot, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return sales, nil
}

// BranchSales lista os valores vendidos pela filial e monta o histograma
func (s *Service) BranchSales(ctx context.Context, branchID string) (*domain.BranchSalesReport, error) {
	sales, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}

	amounts, err := ledger.FilterByBranch(sales, branchID)
	if err != nil {
		return nil, fromLedgerError(err)
	}

	total, err := ledger.SumAmounts(amounts)
	if err != nil {
		return nil, fromLedgerError(err)
	}

	result := &domain.BranchSalesReport{
		BranchID: branchID,
		Amounts:  amounts,
		Total:    total,
		Currency: s.currency,
	}

	if len(amounts) == 0 {
		result.NoData = true
		result.Message = fmt.Sprintf("No sales details found for Branch ID %s.", branchID)
		return result, nil
	}

	title := fmt.Sprintf("Monthly Sales Analysis - Branch %s", branchID)
	result.Histogram = report.WithCurrency(report.Histogram(title, amounts, s.bins), s.currency)

	log.ForContext(ctx).WithFields(log.Fields{
		"branch_id":    branchID,
		"report_sales": len(amounts),
	}).Debug("Análise de filial concluída")

	return result, nil
}

// ProductPrice calcula as estatísticas de preço do produto e o boxplot
func (s *Service) ProductPrice(ctx context.Context, productID string) (*domain.ProductPriceReport, error) {
	sales, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}

	amounts, err := ledger.FilterByProduct(sales, productID)
	if err != nil {
		return nil, fromLedgerError(err)
	}

	result := &domain.ProductPriceReport{
		ProductID: productID,
		Amounts:   amounts,
		Currency:  s.currency,
	}

	if len(amounts) == 0 {
		result.NoData = true
		result.Message = fmt.Sprintf("No sales details found for Product ID %s.", productID)
		return result, nil
	}

	stats, err := ledger.DescriptiveStats(amounts)
	if err != nil {
		return nil, fromLedgerError(err)
	}
	result.Stats = &stats

	title := fmt.Sprintf("Price Distribution - Product %s", productID)
	result.BoxPlot = report.WithCurrency(report.BoxPlot(title, amounts), s.currency)

	return result, nil
}

// WeeklySales soma as vendas da semana (segunda a domingo) que contém a referência
func (s *Service) WeeklySales(ctx context.Context, reference time.Time) (*domain.WeeklySalesReport, error) {
	sales, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}

	amounts, err := ledger.FilterByWeek(sales, reference)
	if err != nil {
		return nil, fromLedgerError(err)
	}

	total, err := ledger.SumAmounts(amounts)
	if err != nil {
		return nil, fromLedgerError(err)
	}

	return &domain.WeeklySalesReport{
		Week:     ledger.WeekOf(reference),
		Amounts:  amounts,
		Total:    total,
		Average:  ledger.Mean(amounts),
		Currency: s.currency,
	}, nil
}

func (s *Service) TotalSales(ctx context.Context) (*domain.TotalSalesReport, error) {
	sales, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}

	amounts, err := ledger.ParseAmounts(sales)
	if err != nil {
		return nil, fromLedgerError(err)
	}
	total, err := ledger.SumAmounts(amounts)
	if err != nil {
		return nil, fromLedgerError(err)
	}

	return &domain.TotalSalesReport{
		Total:      total,
		SalesCount: len(sales),
		Currency:   s.currency,
	}, nil
}

// AllBranchesSales totaliza as vendas por filial conforme a política de junção
func (s *Service) AllBranchesSales(ctx context.Context) (*domain.AllBranchesSalesReport, error) {
	sales, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}

	branches, err := s.branchRepo.ListBranches(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar filiais")
		return nil, NewReportError(ErrLoadSnapshot, apiErrors.ErrDatabaseOperation, err.Error())
	}

	totals, err := ledger.SumByBranch(sales, branches, s.policy)
	if err != nil {
		return nil, fromLedgerError(err)
	}

	return &domain.AllBranchesSalesReport{
		Totals:   totals,
		Currency: s.currency,
		Chart:    report.WithCurrency(report.Bar("Monthly Sales Analysis of All Branches", totals), s.currency),
	}, nil
}
