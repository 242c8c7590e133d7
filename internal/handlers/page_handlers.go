package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the server-rendered pages that are not tied to a product:
// the landing page and the post-registration settings page.
type PageHandler struct{}

// NewPageHandler creates a new instance of PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Landing renders the home page.
func (h *PageHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Stock QR Tracker",
	})
}

// Settings renders the newly generated QR codes. The registration redirect
// carries everything as query parameters, so this page reads no state.
func (h *PageHandler) Settings(c *gin.Context) {
	c.HTML(http.StatusOK, "settings.html", gin.H{
		"title":       "Settings Page",
		"productId":   c.Query("productId"),
		"productName": c.Query("productName"),
		"entryQR":     c.Query("entryQR"),
		"exitQR":      c.Query("exitQR"),
	})
}
