package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"stockqr_backend/internal/models"
	"stockqr_backend/internal/repositories"
)

// --- Custom Service Errors for Sites ---
var (
	ErrSiteNameExists = errors.New("site name already exists")
)

// CreateSiteRequest DTO
type CreateSiteRequest struct {
	Name string `json:"name" binding:"required"`
}

// --- SiteService Interface ---
type SiteService interface {
	CreateSite(req CreateSiteRequest) (*models.Site, error)
	GetSites() ([]models.Site, error)
}

// --- siteService Implementation ---
type siteService struct {
	siteRepo repositories.SiteRepository
	db       *sql.DB
}

// NewSiteService creates a new instance of SiteService.
func NewSiteService(siteRepo repositories.SiteRepository, db *sql.DB) SiteService {
	return &siteService{siteRepo: siteRepo, db: db}
}

func (s *siteService) CreateSite(req CreateSiteRequest) (*models.Site, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: site name cannot be empty", ErrValidation)
	}
	site := &models.Site{Name: strings.TrimSpace(req.Name)}
	if _, err := s.siteRepo.CreateSite(s.db, site); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrSiteNameExists, site.Name)
		}
		return nil, fmt.Errorf("failed to create site: %w", err)
	}
	return site, nil
}

func (s *siteService) GetSites() ([]models.Site, error) {
	sites, err := s.siteRepo.GetSites()
	if err != nil {
		return nil, fmt.Errorf("failed to get sites: %w", err)
	}
	return sites, nil
}
