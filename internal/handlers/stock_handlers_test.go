package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"stockqr_backend/internal/models"
	"stockqr_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockStockService struct {
	mock.Mock
}

func (m *mockStockService) GetTransactionForm(productID int64, kind models.TransactionType) (*services.TransactionForm, error) {
	args := m.Called(productID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TransactionForm), args.Error(1)
}

func (m *mockStockService) ApplyTransaction(req services.ApplyTransactionRequest) (*services.TransactionResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TransactionResult), args.Error(1)
}

func (m *mockStockService) GetTransactions(productID *int64, transactionType *models.TransactionType, page, pageSize int) ([]models.StockTransaction, int, error) {
	args := m.Called(productID, transactionType, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.StockTransaction), args.Int(1), args.Error(2)
}

func newStockTestRouter(svc services.StockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.LoadHTMLGlob("../../templates/*.html")
	handler := NewStockHandler(svc)
	engine.GET("/stock-entry/:productId", handler.StockEntryForm)
	engine.GET("/stock-exit/:productId", handler.StockExitForm)
	engine.POST("/update-stock", handler.UpdateStock)
	return engine
}

func postForm(engine *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestUpdateStockSuccess(t *testing.T) {
	svc := new(mockStockService)
	svc.On("ApplyTransaction", services.ApplyTransactionRequest{
		ProductID:       "1",
		TransactionType: "exit",
		Quantity:        "30",
		Site:            "SiteA",
	}).Return(&services.TransactionResult{ProductID: 1, Kind: models.TransactionExit, Quantity: 30}, nil)

	engine := newStockTestRouter(svc)
	w := postForm(engine, "/update-stock", url.Values{
		"productId":       {"1"},
		"transactionType": {"exit"},
		"quantity":        {"30"},
		"site":            {"SiteA"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Stock exit successful! Quantity: 30.")
	svc.AssertExpectations(t)
}

func TestUpdateStockValidationFailure(t *testing.T) {
	svc := new(mockStockService)
	svc.On("ApplyTransaction", mock.Anything).Return(nil, services.ErrValidation)

	engine := newStockTestRouter(svc)
	w := postForm(engine, "/update-stock", url.Values{
		"productId":       {"1"},
		"transactionType": {"entry"},
		"quantity":        {"0"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quantity must be a positive number")
}

func TestUpdateStockUnknownProduct(t *testing.T) {
	svc := new(mockStockService)
	svc.On("ApplyTransaction", mock.Anything).Return(nil, services.ErrProductNotFound)

	engine := newStockTestRouter(svc)
	w := postForm(engine, "/update-stock", url.Values{
		"productId":       {"99"},
		"transactionType": {"entry"},
		"quantity":        {"5"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStockExitFormRendersSites(t *testing.T) {
	svc := new(mockStockService)
	svc.On("GetTransactionForm", int64(1), models.TransactionExit).Return(&services.TransactionForm{
		Product: &models.ProductWithStock{ID: 1, Name: "Cement", PackagingType: "bag", StockLevel: 100},
		Kind:    models.TransactionExit,
		Sites:   []models.Site{{ID: 1, Name: "SiteA"}},
	}, nil)

	engine := newStockTestRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/stock-exit/1", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cement")
	assert.Contains(t, w.Body.String(), "SiteA")
	svc.AssertExpectations(t)
}

func TestStockEntryFormUnknownProduct(t *testing.T) {
	svc := new(mockStockService)
	svc.On("GetTransactionForm", int64(42), models.TransactionEntry).Return(nil, services.ErrProductNotFound)

	engine := newStockTestRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/stock-entry/42", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found.")
}
