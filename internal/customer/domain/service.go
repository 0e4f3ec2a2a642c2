package domain

import (
	"context"
	"errors"
)

type Service interface {
	// List returns all customers as id+name options, ordered by name.
	List(ctx context.Context) ([]Option, error)
	// Filtered returns customers whose name or email contains query
	// (case-insensitive), annotated with invoice aggregates, ordered by name.
	Filtered(ctx context.Context, query string) ([]Summary, error)
	GetByID(ctx context.Context, id string) (Customer, error)
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")

	// ErrFetchFailed masks lower-level store failures; the cause is logged
	// server-side and never surfaced to the caller.
	ErrFetchFailed = errors.New("failed to fetch customers")
)
