package models

import (
	"fmt"
	"time"
)

// TransactionType discriminates stock entries from stock exits. It is a closed
// type: only the two constants below ever reach persistence.
type TransactionType string

const (
	TransactionEntry TransactionType = "entry"
	TransactionExit  TransactionType = "exit"
)

// ParseTransactionType validates a raw string against the closed set of
// transaction types.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionEntry:
		return TransactionEntry, nil
	case TransactionExit:
		return TransactionExit, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// StockTransaction is an immutable record of a single stock increase or
// decrease. Site is set only for exit transactions (the destination chantier).
type StockTransaction struct {
	ID              int64           `json:"id" db:"id"`
	ProductID       int64           `json:"product_id" db:"product_id" binding:"required"`
	TransactionType TransactionType `json:"transaction_type" db:"transaction_type" binding:"required"`
	Quantity        int             `json:"quantity" db:"quantity" binding:"required"`
	Site            *string         `json:"site,omitempty" db:"chantier_nom"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	Product         *Product        `json:"product,omitempty"` // populated by listing joins
}
