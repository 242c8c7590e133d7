package models

// Product is a registered product. Name and packaging type are set once at
// registration and never updated by the stock workflows.
type Product struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name" binding:"required"`
	PackagingType string `json:"packaging_type" db:"packaging_type"` // selected options joined with ", "
}

// Stock is the cached stock aggregate for a product, one row per product.
// StockLevel is the running sum of entry quantities minus exit quantities
// since registration; the system trusts it rather than recomputing from the
// transaction log.
type Stock struct {
	ProductID  int64 `json:"product_id" db:"product_id"`
	StockLevel int   `json:"stock_level" db:"stock_level"`
}

// ProductWithStock is the joined Product+Stock view used by the transaction
// form and the product listing.
type ProductWithStock struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	PackagingType string `json:"packaging_type" db:"packaging_type"`
	StockLevel    int    `json:"stock_level" db:"stock_level"`
}
