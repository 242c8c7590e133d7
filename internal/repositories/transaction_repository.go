package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"stockqr_backend/internal/models"
)

// TransactionRepository defines the interface for the append-only stock
// transaction log. Rows are never updated or deleted.
type TransactionRepository interface {
	CreateTransaction(executor SQLExecutor, txn *models.StockTransaction) (int64, error)
	GetTransactions(productID *int64, transactionType *models.TransactionType, page, pageSize int) ([]models.StockTransaction, int, error)
}

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) CreateTransaction(executor SQLExecutor, txn *models.StockTransaction) (int64, error) {
	query := `INSERT INTO transactions (product_id, transaction_type, quantity, chantier_nom, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}

	var site sql.NullString
	if txn.Site != nil {
		site = sql.NullString{String: *txn.Site, Valid: true}
	}

	err := executor.QueryRow(query,
		txn.ProductID, string(txn.TransactionType), txn.Quantity, site, txn.CreatedAt,
	).Scan(&txn.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating stock transaction: %v", ErrDatabaseError, err)
	}
	return txn.ID, nil
}

func (r *transactionRepository) GetTransactions(productID *int64, transactionType *models.TransactionType, page, pageSize int) ([]models.StockTransaction, int, error) {
	transactions := []models.StockTransaction{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT
	    t.id, t.product_id, t.transaction_type, t.quantity, t.chantier_nom, t.created_at,
	    p.name AS product_name, p.packaging_type AS product_packaging_type,
	    COUNT(*) OVER() AS total_count
	  FROM transactions t
	  JOIN products p ON t.product_id = p.id`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if productID != nil {
		conditions = append(conditions, fmt.Sprintf("t.product_id = $%d", argCount))
		args = append(args, *productID)
		argCount++
	}
	if transactionType != nil && *transactionType != "" {
		conditions = append(conditions, fmt.Sprintf("t.transaction_type = $%d", argCount))
		args = append(args, string(*transactionType))
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY t.created_at DESC, t.id DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting stock transactions: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var txn models.StockTransaction
		var product models.Product
		var site sql.NullString
		var rawType string

		if err := rows.Scan(
			&txn.ID, &txn.ProductID, &rawType, &txn.Quantity, &site, &txn.CreatedAt,
			&product.Name, &product.PackagingType,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning stock transaction: %v", ErrDatabaseError, err)
		}

		txn.TransactionType = models.TransactionType(rawType)
		if site.Valid {
			s := site.String
			txn.Site = &s
		}
		product.ID = txn.ProductID
		txn.Product = &product

		transactions = append(transactions, txn)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating stock transactions: %v", ErrDatabaseError, err)
	}
	return transactions, totalCount, nil
}
