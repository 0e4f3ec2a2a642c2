// Package domain contains the invoice model, its validation rules and the
// service/repository contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the invoice lifecycle state. Only these two values are ever
// persisted.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice is the persisted record. Amount is integer cents; Date is stamped
// server-side in the configured fixed timezone on create and update.
type Invoice struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Amount     int64        `gorm:"not null" json:"amount"`
	Status     Status       `gorm:"type:text;not null" json:"status"`
	Date       time.Time    `gorm:"not null;index" json:"date"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// JoinedRow is an invoice row joined with its owning customer, scanned raw
// from the store.
type JoinedRow struct {
	ID            snowflake.ID `gorm:"column:id"`
	Amount        int64        `gorm:"column:amount"`
	Status        Status       `gorm:"column:status"`
	Date          time.Time    `gorm:"column:date"`
	CustomerName  string       `gorm:"column:customer_name"`
	CustomerEmail string       `gorm:"column:customer_email"`
	CustomerImage string       `gorm:"column:customer_image"`
}

// LatestItem is one of the newest invoices shown on the home view, amount
// pre-formatted as currency.
type LatestItem struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// ListItem is one row of the filtered, paginated invoice table.
type ListItem struct {
	ID            string    `json:"id"`
	Amount        string    `json:"amount"`
	Status        Status    `json:"status"`
	Date          time.Time `json:"date"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerImage string    `json:"customer_image"`
}

// Form is the single-invoice lookup used to prefill the edit form. Amount is
// in decimal units, the inverse of the cents conversion done on write.
type Form struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     Status  `json:"status"`
}
