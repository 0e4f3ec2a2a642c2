package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Customer struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Email     string            `gorm:"not null" json:"email"`
	ImageURL  string            `gorm:"column:image_url" json:"image_url"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

// Option is the id+name pair used to populate selection lists.
type Option struct {
	ID   snowflake.ID `gorm:"column:id" json:"id"`
	Name string       `gorm:"column:name" json:"name"`
}

// Summary is a customer row annotated with invoice aggregates. Sums are
// pre-formatted currency; they are zero-valued when the customer has no
// invoices.
type Summary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// SummaryRow is the raw aggregate row scanned from the store before sums
// are formatted.
type SummaryRow struct {
	ID            snowflake.ID `gorm:"column:id"`
	Name          string       `gorm:"column:name"`
	Email         string       `gorm:"column:email"`
	ImageURL      string       `gorm:"column:image_url"`
	TotalInvoices int64        `gorm:"column:total_invoices"`
	TotalPending  int64        `gorm:"column:total_pending"`
	TotalPaid     int64        `gorm:"column:total_paid"`
}
