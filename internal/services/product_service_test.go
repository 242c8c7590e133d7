package services

import (
	"errors"
	"testing"

	"stockqr_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductServiceForTest() (ProductService, *mockProductRepo, *mockQRGenerator) {
	productRepo := new(mockProductRepo)
	qr := new(mockQRGenerator)
	svc := NewProductService(productRepo, qr, nil, "http://localhost:3000")
	return svc, productRepo, qr
}

func TestRegisterProduct(t *testing.T) {
	svc, productRepo, qr := newProductServiceForTest()

	productRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Cement" && p.PackagingType == "bag"
	})).Return(int64(1), nil)
	productRepo.On("CreateStock", mock.Anything, int64(1), 100).Return(nil)

	// The two payload URLs differ only in the path suffix.
	qr.On("GenerateFile", "http://localhost:3000/stock-entry/1", models.TransactionEntry, int64(1)).Return(nil)
	qr.On("GenerateDataURL", "http://localhost:3000/stock-entry/1").Return("data:image/png;base64,ENTRY", nil)
	qr.On("GenerateFile", "http://localhost:3000/stock-exit/1", models.TransactionExit, int64(1)).Return(nil)
	qr.On("GenerateDataURL", "http://localhost:3000/stock-exit/1").Return("data:image/png;base64,EXIT", nil)

	result, err := svc.RegisterProduct(RegisterProductRequest{
		Name:           "Cement",
		PackagingTypes: []string{"bag"},
		InitialStock:   "100",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.ProductID)
	assert.Equal(t, "Cement", result.ProductName)
	assert.Equal(t, "data:image/png;base64,ENTRY", result.EntryQR)
	assert.Equal(t, "data:image/png;base64,EXIT", result.ExitQR)
	productRepo.AssertExpectations(t)
	qr.AssertExpectations(t)
}

func TestRegisterProductJoinsPackagingTypes(t *testing.T) {
	svc, productRepo, qr := newProductServiceForTest()

	productRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.PackagingType == "bag, box"
	})).Return(int64(2), nil)
	productRepo.On("CreateStock", mock.Anything, int64(2), 0).Return(nil)
	qr.On("GenerateFile", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	qr.On("GenerateDataURL", mock.Anything).Return("data:image/png;base64,X", nil)

	_, err := svc.RegisterProduct(RegisterProductRequest{
		Name:           "Cement",
		PackagingTypes: []string{"bag", "box"},
		InitialStock:   "0",
	})

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestRegisterProductRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		req  RegisterProductRequest
	}{
		{"missing name", RegisterProductRequest{PackagingTypes: []string{"bag"}, InitialStock: "10"}},
		{"missing packaging", RegisterProductRequest{Name: "Cement", InitialStock: "10"}},
		{"blank packaging", RegisterProductRequest{Name: "Cement", PackagingTypes: []string{"  "}, InitialStock: "10"}},
		{"missing initial stock", RegisterProductRequest{Name: "Cement", PackagingTypes: []string{"bag"}}},
		{"non-numeric initial stock", RegisterProductRequest{Name: "Cement", PackagingTypes: []string{"bag"}, InitialStock: "lots"}},
		{"negative initial stock", RegisterProductRequest{Name: "Cement", PackagingTypes: []string{"bag"}, InitialStock: "-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, productRepo, qr := newProductServiceForTest()

			_, err := svc.RegisterProduct(tc.req)

			assert.ErrorIs(t, err, ErrValidation)
			productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
			qr.AssertNotCalled(t, "GenerateFile", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterProductStockInsertFailureIsDistinct(t *testing.T) {
	svc, productRepo, qr := newProductServiceForTest()

	productRepo.On("CreateProduct", mock.Anything, mock.Anything).Return(int64(1), nil)
	productRepo.On("CreateStock", mock.Anything, int64(1), 100).Return(errors.New("insert failed"))

	_, err := svc.RegisterProduct(RegisterProductRequest{
		Name:           "Cement",
		PackagingTypes: []string{"bag"},
		InitialStock:   "100",
	})

	// The product row committed but the stock row did not; the error names
	// that state instead of reporting a generic failure.
	assert.ErrorIs(t, err, ErrStockInsert)
	qr.AssertNotCalled(t, "GenerateFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterProductQRFailureAfterCommit(t *testing.T) {
	svc, productRepo, qr := newProductServiceForTest()

	productRepo.On("CreateProduct", mock.Anything, mock.Anything).Return(int64(1), nil)
	productRepo.On("CreateStock", mock.Anything, int64(1), 100).Return(nil)
	qr.On("GenerateFile", mock.Anything, models.TransactionEntry, int64(1)).Return(errors.New("disk full"))

	_, err := svc.RegisterProduct(RegisterProductRequest{
		Name:           "Cement",
		PackagingTypes: []string{"bag"},
		InitialStock:   "100",
	})

	assert.ErrorIs(t, err, ErrQRGeneration)
	// Both inserts happened before the QR step failed.
	productRepo.AssertExpectations(t)
}
