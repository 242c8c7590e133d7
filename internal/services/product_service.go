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

// --- Custom Service Errors for Products ---
var (
	ErrValidation   = errors.New("validation error")
	ErrStockInsert  = errors.New("stock row not created") // product row committed, stock insert failed
	ErrQRGeneration = errors.New("QR code generation failed")
)

// --- DTOs ---

// RegisterProductRequest carries the raw form values of a new-product submission.
type RegisterProductRequest struct {
	Name           string
	PackagingTypes []string
	InitialStock   string
}

// RegistrationResult is what the caller needs to render the settings page:
// the new identifiers plus both inline-encoded QR images.
type RegistrationResult struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	EntryQR     string `json:"entry_qr"`
	ExitQR      string `json:"exit_qr"`
}

// --- ProductService Interface ---
type ProductService interface {
	RegisterProduct(req RegisterProductRequest) (*RegistrationResult, error)
	GetProduct(productID int64) (*models.ProductWithStock, error)
	GetProducts(page, pageSize int) ([]models.ProductWithStock, int, error)
}

// --- productService Implementation ---
type productService struct {
	productRepo repositories.ProductRepository
	qr          QRGenerator
	db          *sql.DB
	baseURL     string
}

// NewProductService creates a new instance of ProductService. baseURL is the
// externally reachable prefix embedded in QR payload URLs.
func NewProductService(productRepo repositories.ProductRepository, qr QRGenerator, db *sql.DB, baseURL string) ProductService {
	return &productService{
		productRepo: productRepo,
		qr:          qr,
		db:          db,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
	}
}

// RegisterProduct validates the form, persists the Product and Stock rows, and
// generates the entry/exit QR pair. The two inserts are sequential: a stock
// insert failure is surfaced as ErrStockInsert rather than a generic database
// error, because at that point the product row has already committed. A QR
// failure likewise leaves both rows committed.
func (s *productService) RegisterProduct(req RegisterProductRequest) (*RegistrationResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	packaging := make([]string, 0, len(req.PackagingTypes))
	for _, p := range req.PackagingTypes {
		if strings.TrimSpace(p) != "" {
			packaging = append(packaging, p)
		}
	}
	if len(packaging) == 0 {
		return nil, fmt.Errorf("%w: at least one packaging type is required", ErrValidation)
	}
	if strings.TrimSpace(req.InitialStock) == "" {
		return nil, fmt.Errorf("%w: initial stock is required", ErrValidation)
	}
	initialStock, err := strconv.Atoi(strings.TrimSpace(req.InitialStock))
	if err != nil || initialStock < 0 {
		return nil, fmt.Errorf("%w: initial stock must be a non-negative integer", ErrValidation)
	}

	product := &models.Product{
		Name:          req.Name,
		PackagingType: strings.Join(packaging, ", "),
	}
	productID, err := s.productRepo.CreateProduct(s.db, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.productRepo.CreateStock(s.db, productID, initialStock); err != nil {
		return nil, fmt.Errorf("%w: product %d exists without stock: %v", ErrStockInsert, productID, err)
	}

	entryURL := fmt.Sprintf("%s/stock-entry/%d", s.baseURL, productID)
	exitURL := fmt.Sprintf("%s/stock-exit/%d", s.baseURL, productID)

	if err := s.qr.GenerateFile(entryURL, models.TransactionEntry, productID); err != nil {
		return nil, fmt.Errorf("%w: entry file: %v", ErrQRGeneration, err)
	}
	entryQR, err := s.qr.GenerateDataURL(entryURL)
	if err != nil {
		return nil, fmt.Errorf("%w: entry data URL: %v", ErrQRGeneration, err)
	}
	if err := s.qr.GenerateFile(exitURL, models.TransactionExit, productID); err != nil {
		return nil, fmt.Errorf("%w: exit file: %v", ErrQRGeneration, err)
	}
	exitQR, err := s.qr.GenerateDataURL(exitURL)
	if err != nil {
		return nil, fmt.Errorf("%w: exit data URL: %v", ErrQRGeneration, err)
	}

	return &RegistrationResult{
		ProductID:   productID,
		ProductName: product.Name,
		EntryQR:     entryQR,
		ExitQR:      exitQR,
	}, nil
}

func (s *productService) GetProduct(productID int64) (*models.ProductWithStock, error) {
	product, err := s.productRepo.GetProductWithStock(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *productService) GetProducts(page, pageSize int) ([]models.ProductWithStock, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	products, total, err := s.productRepo.GetProductsWithStock(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get products: %w", err)
	}
	return products, total, nil
}
