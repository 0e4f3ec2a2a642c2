package repository

import (
	"context"

	"github.com/acmeboard/acmeboard/internal/customer/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, image_url, created_at, updated_at
		 FROM customers WHERE id = ?`,
		id,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) ListOptions(ctx context.Context, db *gorm.DB) ([]domain.Option, error) {
	var options []domain.Option
	err := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Select("id, name").
		Order("name asc").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *repo) FilteredWithTotals(ctx context.Context, db *gorm.DB, query string) ([]domain.SummaryRow, error) {
	pattern := "%" + query + "%"
	var rows []domain.SummaryRow
	// LOWER/LIKE instead of ILIKE so the predicate holds on every dialect.
	err := db.WithContext(ctx).Raw(
		`SELECT
		   customers.id,
		   customers.name,
		   customers.email,
		   customers.image_url,
		   COUNT(invoices.id) AS total_invoices,
		   COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		   COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		 FROM customers
		 LEFT JOIN invoices ON customers.id = invoices.customer_id
		 WHERE
		   LOWER(customers.name) LIKE LOWER(?) OR
		   LOWER(customers.email) LIKE LOWER(?)
		 GROUP BY customers.id, customers.name, customers.email, customers.image_url
		 ORDER BY customers.name ASC`,
		pattern,
		pattern,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
