// Package recording registra filiais, produtos e vendas no armazenamento.
package recording

//go:generate mockgen -source=service.go -destination=mocks/recorder.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/ledger"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

type Recorder interface {
	AddBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error)
	AddProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	AddSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

type Service struct {
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	now         func() time.Time
	generateID  func() (string, error)
}

type Option func(*Service)

// WithClock troca o relógio usado para datar as vendas
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(generate func() (string, error)) Option {
	return func(s *Service) {
		s.generateID = generate
	}
}

func NewService(
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	opts ...Option,
) Recorder {
	s := &Service{
		branchRepo:  branchRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		now:         time.Now,
		generateID:  utils.GenerateID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddBranch registra uma filial. Sem ID informado, gera um ID curto.
// IDs repetidos são aceitos; a agregação considera a primeira definição.
func (s *Service) AddBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error) {
	branch.ID = strings.TrimSpace(branch.ID)
	branch.Name = strings.TrimSpace(branch.Name)
	branch.Location = strings.TrimSpace(branch.Location)

	if branch.Name == "" || branch.Location == "" {
		return nil, NewRecordError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "branch name and location are required")
	}

	if branch.ID == "" {
		id, err := s.generateID()
		if err != nil {
			return nil, NewRecordError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
		}
		branch.ID = id
	} else {
		s.warnDuplicateBranch(ctx, branch.ID)
	}

	if err := s.branchRepo.AddBranch(ctx, branch); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar filial")
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("branch_id", branch.ID).Info("Filial registrada")
	return &branch, nil
}

func (s *Service) warnDuplicateBranch(ctx context.Context, id string) {
	branches, err := s.branchRepo.ListBranches(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível verificar filiais existentes")
		return
	}
	for _, b := range branches {
		if b.ID == id {
			log.ForContext(ctx).WithField("branch_id", id).Warn("ID de filial já existe; a primeira definição prevalece")
			return
		}
	}
}

func (s *Service) AddProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	product.ID = strings.TrimSpace(product.ID)
	product.Name = strings.TrimSpace(product.Name)

	if product.Name == "" {
		return nil, NewRecordError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "product name is required")
	}

	if product.ID == "" {
		id, err := s.generateID()
		if err != nil {
			return nil, NewRecordError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
		}
		product.ID = id
	}

	if err := s.productRepo.AddProduct(ctx, product); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar produto")
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("product_id", product.ID).Info("Produto registrado")
	return &product, nil
}

// AddSale registra uma venda datada com o dia corrente quando a data vem vazia.
// Uma data informada precisa casar com um dos formatos do livro-razão.
// O valor não é validado aqui: a agregação reporta valores malformados.
func (s *Service) AddSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	sale.BranchID = strings.TrimSpace(sale.BranchID)
	sale.ProductID = strings.TrimSpace(sale.ProductID)

	if sale.BranchID == "" || sale.ProductID == "" || strings.TrimSpace(sale.Amount) == "" {
		return nil, NewRecordError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "branch ID, product ID and amount are required")
	}

	sale.Date = strings.TrimSpace(sale.Date)
	if sale.Date == "" {
		sale.Date = utils.Today(s.now)
	} else if _, err := ledger.ParseDate(sale.Date); err != nil {
		return nil, NewRecordError(ErrInvalidDate, apiErrors.ErrInvalidFormat, err.Error())
	}

	if err := s.saleRepo.AddSale(ctx, sale); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar venda")
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"branch_id":  sale.BranchID,
		"product_id": sale.ProductID,
	}).Info("Venda registrada")

	return &sale, nil
}

func (s *Service) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	branches, err := s.branchRepo.ListBranches(ctx)
	if err != nil {
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return branches, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return products, nil
}

func (s *Service) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, NewRecordError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return sales, nil
}
