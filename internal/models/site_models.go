package models

// Site is a destination (chantier) for exit transactions. Reference data,
// enumerated when rendering the exit form.
type Site struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"chantier_nom" binding:"required"`
}
