package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"stockqr_backend/internal/models"
	"stockqr_backend/internal/services"
	"stockqr_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StockHandler serves the stock transaction workflow: the entry/exit forms
// reached by scanning a QR code, the stock update submission, and the
// transaction listing of the admin API.
type StockHandler struct {
	stockService services.StockService
}

// NewStockHandler creates a new instance of StockHandler.
func NewStockHandler(stockService services.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// StockEntryForm renders the stock-entry form for a product.
func (h *StockHandler) StockEntryForm(c *gin.Context) {
	h.renderTransactionForm(c, models.TransactionEntry)
}

// StockExitForm renders the stock-exit form for a product, including the
// destination site list.
func (h *StockHandler) StockExitForm(c *gin.Context) {
	h.renderTransactionForm(c, models.TransactionExit)
}

func (h *StockHandler) renderTransactionForm(c *gin.Context, kind models.TransactionType) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Product not found.")
		return
	}

	form, err := h.stockService.GetTransactionForm(productID, kind)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.String(http.StatusNotFound, "Product not found.")
			return
		}
		utils.LogError(err, "Failed to fetch transaction form data")
		c.String(http.StatusInternalServerError, "Failed to fetch product details.")
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"product":         form.Product,
		"stockLevel":      form.Product.StockLevel,
		"transactionType": string(form.Kind),
		"chantierList":    form.Sites,
	})
}

// UpdateStock handles the stock update submission: validation, the signed
// stock delta, then the transaction log append. The response is an HTML
// confirmation fragment naming the quantity and kind.
func (h *StockHandler) UpdateStock(c *gin.Context) {
	req := services.ApplyTransactionRequest{
		ProductID:       c.PostForm("productId"),
		TransactionType: c.PostForm("transactionType"),
		Quantity:        c.PostForm("quantity"),
		Site:            c.PostForm("site"),
	}

	result, err := h.stockService.ApplyTransaction(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.LogError(err, "Stock update rejected")
			c.String(http.StatusBadRequest, "All fields are required and quantity must be a positive number.")
		case errors.Is(err, services.ErrProductNotFound):
			c.String(http.StatusNotFound, "Product not found.")
		default:
			utils.LogError(err, "Stock update failed")
			c.String(http.StatusInternalServerError, "Failed to update stock.")
		}
		return
	}

	utils.LogInfo("Stock transaction applied", map[string]interface{}{
		"product_id": result.ProductID,
		"type":       string(result.Kind),
		"quantity":   result.Quantity,
	})

	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"transactionType": string(result.Kind),
		"quantity":        result.Quantity,
	})
}

// GetTransactions handles the filtered, paginated transaction log listing for
// the admin API.
func (h *StockHandler) GetTransactions(c *gin.Context) {
	var productID *int64
	if idStr := c.Query("product_id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			utils.RespondValidationFailed(c, "Invalid product_id filter")
			return
		}
		productID = &id
	}

	var transactionType *models.TransactionType
	if typeStr := c.Query("type"); typeStr != "" {
		kind, err := models.ParseTransactionType(typeStr)
		if err != nil {
			utils.RespondValidationFailed(c, "Invalid type filter")
			return
		}
		transactionType = &kind
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	transactions, total, err := h.stockService.GetTransactions(productID, transactionType, page, pageSize)
	if err != nil {
		utils.LogError(err, "Failed to list transactions")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch transactions", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "total": total, "page": page, "page_size": pageSize})
}
