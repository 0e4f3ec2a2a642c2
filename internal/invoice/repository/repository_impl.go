package repository

import (
	"context"

	"github.com/acmeboard/acmeboard/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// The filter predicate matches the invoice table search box: one query
// string checked against customer name, customer email and invoice status.
// LOWER/LIKE instead of ILIKE so it holds on every dialect.
const filterPredicate = `
	LOWER(customers.name) LIKE LOWER(?) OR
	LOWER(customers.email) LIKE LOWER(?) OR
	LOWER(invoices.status) LIKE LOWER(?)`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) (int64, error) {
	result := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]any{
			"customer_id": invoice.CustomerID,
			"amount":      invoice.Amount,
			"status":      invoice.Status,
			"date":        invoice.Date,
			"updated_at":  invoice.UpdatedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Invoice{})
	return result.RowsAffected, result.Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_id, amount, status, date
		 FROM invoices WHERE id = ?`,
		id,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repo) Latest(ctx context.Context, db *gorm.DB, limit int) ([]domain.JoinedRow, error) {
	var rows []domain.JoinedRow
	err := db.WithContext(ctx).Raw(
		`SELECT
		   invoices.id,
		   invoices.amount,
		   invoices.status,
		   invoices.date,
		   customers.name AS customer_name,
		   customers.email AS customer_email,
		   customers.image_url AS customer_image
		 FROM invoices
		 JOIN customers ON customers.id = invoices.customer_id
		 ORDER BY invoices.date DESC
		 LIMIT ?`,
		limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Filtered(ctx context.Context, db *gorm.DB, query string, limit, offset int) ([]domain.JoinedRow, error) {
	pattern := "%" + query + "%"
	var rows []domain.JoinedRow
	err := db.WithContext(ctx).Raw(
		`SELECT
		   invoices.id,
		   invoices.amount,
		   invoices.status,
		   invoices.date,
		   customers.name AS customer_name,
		   customers.email AS customer_email,
		   customers.image_url AS customer_image
		 FROM invoices
		 JOIN customers ON customers.id = invoices.customer_id
		 WHERE `+filterPredicate+`
		 ORDER BY invoices.date DESC
		 LIMIT ? OFFSET ?`,
		pattern,
		pattern,
		pattern,
		limit,
		offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) CountFiltered(ctx context.Context, db *gorm.DB, query string) (int64, error) {
	pattern := "%" + query + "%"
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*)
		 FROM invoices
		 JOIN customers ON customers.id = invoices.customer_id
		 WHERE `+filterPredicate,
		pattern,
		pattern,
		pattern,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
