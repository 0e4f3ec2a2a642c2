package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	ListOptions(ctx context.Context, db *gorm.DB) ([]Option, error)
	FilteredWithTotals(ctx context.Context, db *gorm.DB, query string) ([]SummaryRow, error)
}
