package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"stockqr_backend/internal/services"
	"stockqr_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves product registration (form surface) and the product
// listing endpoints of the admin API.
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// AddProduct handles the new-product form submission. On success it redirects
// to /settings with the product identifiers and both inline QR images as query
// parameters; failures come back as plain text with a fixed phrase, details
// stay in the server log.
func (h *ProductHandler) AddProduct(c *gin.Context) {
	packaging := c.PostFormArray("packagingType[]")
	if len(packaging) == 0 {
		packaging = c.PostFormArray("packagingType")
	}
	req := services.RegisterProductRequest{
		Name:           c.PostForm("productName"),
		PackagingTypes: packaging,
		InitialStock:   c.PostForm("initialStock"),
	}

	result, err := h.productService.RegisterProduct(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.LogError(err, "Product registration rejected")
			c.String(http.StatusBadRequest, "All fields are required.")
		case errors.Is(err, services.ErrStockInsert):
			utils.LogError(err, "Stock row insert failed after product commit")
			c.String(http.StatusInternalServerError, "Failed to add stock.")
		case errors.Is(err, services.ErrQRGeneration):
			utils.LogError(err, "QR generation failed after registration commit")
			c.String(http.StatusInternalServerError, "Failed to generate QR code.")
		default:
			utils.LogError(err, "Product registration failed")
			c.String(http.StatusInternalServerError, "Failed to add product.")
		}
		return
	}

	query := url.Values{}
	query.Set("productId", strconv.FormatInt(result.ProductID, 10))
	query.Set("productName", result.ProductName)
	query.Set("entryQR", result.EntryQR)
	query.Set("exitQR", result.ExitQR)
	c.Redirect(http.StatusFound, "/settings?"+query.Encode())
}

// GetProducts handles the paginated product listing for the admin API.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	products, total, err := h.productService.GetProducts(page, pageSize)
	if err != nil {
		utils.LogError(err, "Failed to list products")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch products", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": total, "page": page, "page_size": pageSize})
}

// GetProductByID handles fetching a single product with its stock level.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found", ""))
			return
		}
		utils.LogError(err, "Failed to fetch product")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch product", ""))
		return
	}
	c.JSON(http.StatusOK, product)
}
