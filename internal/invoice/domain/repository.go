package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	// Update rewrites customer, amount, status and date of an existing row.
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) (int64, error)
	// Delete removes the row and reports how many rows matched, so callers
	// can tell a repeat delete from a successful one.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	Latest(ctx context.Context, db *gorm.DB, limit int) ([]JoinedRow, error)
	Filtered(ctx context.Context, db *gorm.DB, query string, limit, offset int) ([]JoinedRow, error)
	CountFiltered(ctx context.Context, db *gorm.DB, query string) (int64, error)
}
