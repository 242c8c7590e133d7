package services

import (
	"stockqr_backend/internal/models"
	"stockqr_backend/internal/repositories"

	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) CreateProduct(executor repositories.SQLExecutor, product *models.Product) (int64, error) {
	args := m.Called(executor, product)
	if id := args.Get(0).(int64); id != 0 {
		product.ID = id
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) CreateStock(executor repositories.SQLExecutor, productID int64, stockLevel int) error {
	args := m.Called(executor, productID, stockLevel)
	return args.Error(0)
}

func (m *mockProductRepo) GetProductWithStock(productID int64) (*models.ProductWithStock, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductWithStock), args.Error(1)
}

func (m *mockProductRepo) GetProductsWithStock(page, pageSize int) ([]models.ProductWithStock, int, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.ProductWithStock), args.Int(1), args.Error(2)
}

func (m *mockProductRepo) AdjustStock(executor repositories.SQLExecutor, productID int64, delta int) error {
	args := m.Called(executor, productID, delta)
	return args.Error(0)
}

type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) CreateTransaction(executor repositories.SQLExecutor, txn *models.StockTransaction) (int64, error) {
	args := m.Called(executor, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionRepo) GetTransactions(productID *int64, transactionType *models.TransactionType, page, pageSize int) ([]models.StockTransaction, int, error) {
	args := m.Called(productID, transactionType, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.StockTransaction), args.Int(1), args.Error(2)
}

type mockSiteRepo struct {
	mock.Mock
}

func (m *mockSiteRepo) CreateSite(executor repositories.SQLExecutor, site *models.Site) (int64, error) {
	args := m.Called(executor, site)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSiteRepo) GetSites() ([]models.Site, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Site), args.Error(1)
}

type mockQRGenerator struct {
	mock.Mock
}

func (m *mockQRGenerator) GenerateFile(content string, kind models.TransactionType, productID int64) error {
	args := m.Called(content, kind, productID)
	return args.Error(0)
}

func (m *mockQRGenerator) GenerateDataURL(content string) (string, error) {
	args := m.Called(content)
	return args.String(0), args.Error(1)
}

func (m *mockQRGenerator) FilePath(kind models.TransactionType, productID int64) string {
	args := m.Called(kind, productID)
	return args.String(0)
}
