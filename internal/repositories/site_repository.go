package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"stockqr_backend/internal/models"

	"github.com/lib/pq"
)

// SiteRepository defines the interface for chantier (destination site)
// reference data.
type SiteRepository interface {
	CreateSite(executor SQLExecutor, site *models.Site) (int64, error)
	GetSites() ([]models.Site, error)
}

type siteRepository struct {
	db *sql.DB
}

// NewSiteRepository creates a new instance of SiteRepository.
func NewSiteRepository(db *sql.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) CreateSite(executor SQLExecutor, site *models.Site) (int64, error) {
	query := `INSERT INTO chantier (chantier_nom)
	          VALUES ($1)
	          RETURNING id`
	err := executor.QueryRow(query, site.Name).Scan(&site.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: site name '%s' already exists (constraint: %s)", ErrDuplicateKey, site.Name, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating site: %v", ErrDatabaseError, err)
	}
	return site.ID, nil
}

// GetSites returns the full, unfiltered site list. The exit form enumerates
// every destination, so no pagination here.
func (r *siteRepository) GetSites() ([]models.Site, error) {
	sites := []models.Site{}
	rows, err := r.db.Query(`SELECT id, chantier_nom FROM chantier ORDER BY chantier_nom`)
	if err != nil {
		return nil, fmt.Errorf("%w: getting sites: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var site models.Site
		if err := rows.Scan(&site.ID, &site.Name); err != nil {
			return nil, fmt.Errorf("%w: scanning site: %v", ErrDatabaseError, err)
		}
		sites = append(sites, site)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sites: %v", ErrDatabaseError, err)
	}
	return sites, nil
}
