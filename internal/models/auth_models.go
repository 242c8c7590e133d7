package models

import "time"

// Operator roles. Admins manage reference data; operators only read.
const (
	RoleAdmin    = "Admin"
	RoleOperator = "Operator"
)

// User is an operator account for the admin API. The public QR-scan surface
// does not require one.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username" binding:"required"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
