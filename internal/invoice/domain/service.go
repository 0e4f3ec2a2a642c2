package domain

import (
	"context"
	"errors"
)

// ItemsPerPage is the fixed invoice table page size.
const ItemsPerPage = 6

type Service interface {
	// Latest returns the newest invoices by date, joined with customer
	// details, amounts pre-formatted.
	Latest(ctx context.Context) ([]LatestItem, error)
	// Filtered returns one page of invoices whose customer name, customer
	// email or status contains query case-insensitively, newest first.
	// Pages below 1 are treated as page 1.
	Filtered(ctx context.Context, query string, page int) ([]ListItem, error)
	// Pages returns ceil(matchingCount / ItemsPerPage) for the same
	// predicate as Filtered; callers bound page navigation with it.
	Pages(ctx context.Context, query string) (int, error)
	GetByID(ctx context.Context, id string) (Form, error)

	// Create, Update and Delete share the pipeline: validate, transform
	// (decimal to cents, stamp date), persist, then invalidate the list
	// view. Validation failures come back as FieldErrors with nothing
	// persisted; persistence failures come back as sanitized errors.
	Create(ctx context.Context, input Input) (*FieldErrors, error)
	Update(ctx context.Context, id string, input Input) (*FieldErrors, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
	ErrFetchFailed  = errors.New("failed to fetch invoices")
	ErrCreateFailed = errors.New("failed to create invoice")
	ErrUpdateFailed = errors.New("failed to update invoice")
	ErrDeleteFailed = errors.New("failed to delete invoice")
)
