package domain

import (
	"context"
	"errors"
)

// Point is a precomputed monthly revenue aggregate. It is seeded
// independently, not derived live from invoices.
type Point struct {
	Month   string `gorm:"primaryKey;type:text" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`
}

// TableName sets the database table name.
func (Point) TableName() string { return "revenue" }

// Months fixes the label set and its calendar order.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type Service interface {
	// List returns revenue points in calendar month order.
	List(ctx context.Context) ([]Point, error)
}

var ErrFetchFailed = errors.New("failed to fetch revenue data")
