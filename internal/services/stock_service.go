package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"stockqr_backend/internal/models"
	"stockqr_backend/internal/repositories"
)

// --- Custom Service Errors for Stock Transactions ---
var (
	ErrProductNotFound = errors.New("product not found")
)

// --- DTOs ---

// TransactionForm is everything the transaction-entry page needs: the product
// with its current stock level, the requested kind, and (for exits) the list
// of destination sites. For entries the site list is empty.
type TransactionForm struct {
	Product *models.ProductWithStock `json:"product"`
	Kind    models.TransactionType   `json:"kind"`
	Sites   []models.Site            `json:"sites"`
}

// ApplyTransactionRequest carries the raw form values of a stock update
// submission. Fields are strings because they arrive straight from the form;
// validation and parsing happen in ApplyTransaction.
type ApplyTransactionRequest struct {
	ProductID       string
	TransactionType string
	Quantity        string
	Site            string
}

// TransactionResult names the applied quantity and kind for the confirmation page.
type TransactionResult struct {
	ProductID int64                  `json:"product_id"`
	Kind      models.TransactionType `json:"kind"`
	Quantity  int                    `json:"quantity"`
}

// --- StockService Interface ---
type StockService interface {
	GetTransactionForm(productID int64, kind models.TransactionType) (*TransactionForm, error)
	ApplyTransaction(req ApplyTransactionRequest) (*TransactionResult, error)
	GetTransactions(productID *int64, transactionType *models.TransactionType, page, pageSize int) ([]models.StockTransaction, int, error)
}

// --- stockService Implementation ---
type stockService struct {
	productRepo     repositories.ProductRepository
	transactionRepo repositories.TransactionRepository
	siteRepo        repositories.SiteRepository
	db              *sql.DB
}

// NewStockService creates a new instance of StockService.
func NewStockService(productRepo repositories.ProductRepository, transactionRepo repositories.TransactionRepository, siteRepo repositories.SiteRepository, db *sql.DB) StockService {
	return &stockService{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		siteRepo:        siteRepo,
		db:              db,
	}
}

// GetTransactionForm fetches the product joined with its stock row and, for
// exit transactions, the full site list. Read-only: no mutation in this phase.
func (s *stockService) GetTransactionForm(productID int64, kind models.TransactionType) (*TransactionForm, error) {
	product, err := s.productRepo.GetProductWithStock(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product details: %w", err)
	}

	sites := []models.Site{}
	if kind == models.TransactionExit {
		sites, err = s.siteRepo.GetSites()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch site list: %w", err)
		}
	}

	return &TransactionForm{
		Product: product,
		Kind:    kind,
		Sites:   sites,
	}, nil
}

// ApplyTransaction validates the submission, applies the signed quantity delta
// to the stock row, then appends the transaction record. The stock update is a
// single relative UPDATE keyed by product id, so concurrent requests against
// the same product are serialized by the storage engine rather than racing a
// read-modify-write in application code. The update and the log insert are two
// statements: a log failure after the delta committed leaves the documented
// inconsistency window and is surfaced as a server error, never masked.
func (s *stockService) ApplyTransaction(req ApplyTransactionRequest) (*TransactionResult, error) {
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	productID, err := strconv.ParseInt(strings.TrimSpace(req.ProductID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: product id must be an integer", ErrValidation)
	}

	kind, err := models.ParseTransactionType(req.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if strings.TrimSpace(req.Quantity) == "" {
		return nil, fmt.Errorf("%w: quantity is required", ErrValidation)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(req.Quantity))
	if err != nil {
		return nil, fmt.Errorf("%w: quantity must be an integer", ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be strictly positive", ErrValidation)
	}

	site := strings.TrimSpace(req.Site)
	if kind == models.TransactionExit && site == "" {
		return nil, fmt.Errorf("%w: site is required for exit transactions", ErrValidation)
	}

	delta := quantity
	if kind == models.TransactionExit {
		delta = -quantity
	}
	if err := s.productRepo.AdjustStock(s.db, productID, delta); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		// Mutation failed, nothing was logged.
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	txn := &models.StockTransaction{
		ProductID:       productID,
		TransactionType: kind,
		Quantity:        quantity,
	}
	if kind == models.TransactionExit {
		txn.Site = &site
	}
	if _, err := s.transactionRepo.CreateTransaction(s.db, txn); err != nil {
		// The stock delta has already committed; the log row is missing.
		return nil, fmt.Errorf("failed to record transaction after stock update: %w", err)
	}

	return &TransactionResult{
		ProductID: productID,
		Kind:      kind,
		Quantity:  quantity,
	}, nil
}

func (s *stockService) GetTransactions(productID *int64, transactionType *models.TransactionType, page, pageSize int) ([]models.StockTransaction, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	transactions, total, err := s.transactionRepo.GetTransactions(productID, transactionType, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, total, nil
}
