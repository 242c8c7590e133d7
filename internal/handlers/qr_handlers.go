package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"stockqr_backend/internal/models"
	"stockqr_backend/internal/services"
	"stockqr_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// QRHandler streams previously generated QR PNG files back as attachments. It
// only serves what registration produced; a missing file is never regenerated.
type QRHandler struct {
	qr services.QRGenerator
}

// NewQRHandler creates a new instance of QRHandler.
func NewQRHandler(qr services.QRGenerator) *QRHandler {
	return &QRHandler{qr: qr}
}

// DownloadEntryQR streams the stock-entry QR code for a product.
func (h *QRHandler) DownloadEntryQR(c *gin.Context) {
	h.download(c, models.TransactionEntry)
}

// DownloadExitQR streams the stock-exit QR code for a product.
func (h *QRHandler) DownloadExitQR(c *gin.Context) {
	h.download(c, models.TransactionExit)
}

func (h *QRHandler) download(c *gin.Context, kind models.TransactionType) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, fmt.Sprintf("%s QR code not found.", kind))
		return
	}

	path := h.qr.FilePath(kind, productID)
	if _, err := os.Stat(path); err != nil {
		utils.LogError(err, fmt.Sprintf("Missing %s QR file for product %d", kind, productID))
		c.String(http.StatusNotFound, fmt.Sprintf("%s QR code not found.", kind))
		return
	}

	c.FileAttachment(path, fmt.Sprintf("%s_%d.png", kind, productID))
}
