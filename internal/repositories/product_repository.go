package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"stockqr_backend/internal/models"
)

// ProductRepository defines the interface for product- and stock-related
// database operations.
type ProductRepository interface {
	CreateProduct(executor SQLExecutor, product *models.Product) (int64, error)
	CreateStock(executor SQLExecutor, productID int64, stockLevel int) error
	GetProductWithStock(productID int64) (*models.ProductWithStock, error)
	GetProductsWithStock(page, pageSize int) ([]models.ProductWithStock, int, error)

	// AdjustStock applies a signed delta to the stock level of a product as a
	// single relative UPDATE. The storage engine serializes concurrent deltas
	// against the same row; the application never does read-modify-write here.
	AdjustStock(executor SQLExecutor, productID int64, delta int) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(executor SQLExecutor, product *models.Product) (int64, error) {
	query := `INSERT INTO products (name, packaging_type)
	          VALUES ($1, $2)
	          RETURNING id`
	err := executor.QueryRow(query, product.Name, product.PackagingType).Scan(&product.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating product: %v", ErrDatabaseError, err)
	}
	return product.ID, nil
}

func (r *productRepository) CreateStock(executor SQLExecutor, productID int64, stockLevel int) error {
	query := `INSERT INTO stock (product_id, stock_level) VALUES ($1, $2)`
	_, err := executor.Exec(query, productID, stockLevel)
	if err != nil {
		return fmt.Errorf("%w: creating stock row for product %d: %v", ErrDatabaseError, productID, err)
	}
	return nil
}

func (r *productRepository) GetProductWithStock(productID int64) (*models.ProductWithStock, error) {
	product := &models.ProductWithStock{}
	query := `SELECT p.id, p.name, p.packaging_type, s.stock_level
	          FROM products p
	          JOIN stock s ON p.id = s.product_id
	          WHERE p.id = $1`
	err := r.db.QueryRow(query, productID).Scan(&product.ID, &product.Name, &product.PackagingType, &product.StockLevel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product with stock by ID %d: %v", ErrDatabaseError, productID, err)
	}
	return product, nil
}

func (r *productRepository) GetProductsWithStock(page, pageSize int) ([]models.ProductWithStock, int, error) {
	products := []models.ProductWithStock{}
	totalCount := 0
	query := `SELECT p.id, p.name, p.packaging_type, s.stock_level, COUNT(*) OVER() AS total_count
	          FROM products p
	          JOIN stock s ON p.id = s.product_id
	          ORDER BY p.id
	          LIMIT $1 OFFSET $2`
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting products with stock: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var product models.ProductWithStock
		if err := rows.Scan(&product.ID, &product.Name, &product.PackagingType, &product.StockLevel, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning product with stock: %v", ErrDatabaseError, err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating products with stock: %v", ErrDatabaseError, err)
	}
	return products, totalCount, nil
}

func (r *productRepository) AdjustStock(executor SQLExecutor, productID int64, delta int) error {
	query := `UPDATE stock SET stock_level = stock_level + $1 WHERE product_id = $2`
	result, err := executor.Exec(query, delta, productID)
	if err != nil {
		return fmt.Errorf("%w: adjusting stock for product %d: %v", ErrDatabaseError, productID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
