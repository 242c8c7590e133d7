package handlers

import (
	"errors"
	"net/http"

	"stockqr_backend/internal/services"
	"stockqr_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SiteHandler manages chantier reference data through the admin API.
type SiteHandler struct {
	siteService services.SiteService
}

// NewSiteHandler creates a new instance of SiteHandler.
func NewSiteHandler(siteService services.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// CreateSite handles creation of a new destination site.
func (h *SiteHandler) CreateSite(c *gin.Context) {
	var req services.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	site, err := h.siteService.CreateSite(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondValidationFailed(c, err.Error())
		case errors.Is(err, services.ErrSiteNameExists):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Site name already exists", ""))
		default:
			utils.LogError(err, "Failed to create site")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create site", ""))
		}
		return
	}
	c.JSON(http.StatusCreated, site)
}

// GetSites handles fetching the full site list.
func (h *SiteHandler) GetSites(c *gin.Context) {
	sites, err := h.siteService.GetSites()
	if err != nil {
		utils.LogError(err, "Failed to list sites")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sites", ""))
		return
	}
	c.JSON(http.StatusOK, sites)
}
