package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"stockqr_backend/internal/models"
	"stockqr_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) RegisterProduct(req services.RegisterProductRequest) (*services.RegistrationResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RegistrationResult), args.Error(1)
}

func (m *mockProductService) GetProduct(productID int64) (*models.ProductWithStock, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductWithStock), args.Error(1)
}

func (m *mockProductService) GetProducts(page, pageSize int) ([]models.ProductWithStock, int, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.ProductWithStock), args.Int(1), args.Error(2)
}

func newProductTestRouter(svc services.ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewProductHandler(svc)
	engine.POST("/add-product", handler.AddProduct)
	return engine
}

func TestAddProductRedirectsToSettings(t *testing.T) {
	svc := new(mockProductService)
	svc.On("RegisterProduct", services.RegisterProductRequest{
		Name:           "Cement",
		PackagingTypes: []string{"bag"},
		InitialStock:   "100",
	}).Return(&services.RegistrationResult{
		ProductID:   1,
		ProductName: "Cement",
		EntryQR:     "data:image/png;base64,ENTRY",
		ExitQR:      "data:image/png;base64,EXIT",
	}, nil)

	engine := newProductTestRouter(svc)
	w := postForm(engine, "/add-product", url.Values{
		"productName":     {"Cement"},
		"packagingType[]": {"bag"},
		"initialStock":    {"100"},
	})

	assert.Equal(t, http.StatusFound, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/settings", location.Path)

	query := location.Query()
	assert.Equal(t, "1", query.Get("productId"))
	assert.Equal(t, "Cement", query.Get("productName"))
	assert.Equal(t, "data:image/png;base64,ENTRY", query.Get("entryQR"))
	assert.Equal(t, "data:image/png;base64,EXIT", query.Get("exitQR"))
	svc.AssertExpectations(t)
}

func TestAddProductValidationFailure(t *testing.T) {
	svc := new(mockProductService)
	svc.On("RegisterProduct", mock.Anything).Return(nil, services.ErrValidation)

	engine := newProductTestRouter(svc)
	w := postForm(engine, "/add-product", url.Values{
		"productName": {""},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All fields are required.")
}

func TestAddProductQRFailureIsServerError(t *testing.T) {
	svc := new(mockProductService)
	svc.On("RegisterProduct", mock.Anything).Return(nil, services.ErrQRGeneration)

	engine := newProductTestRouter(svc)
	w := postForm(engine, "/add-product", url.Values{
		"productName":     {"Cement"},
		"packagingType[]": {"bag"},
		"initialStock":    {"100"},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate QR code.")
}
