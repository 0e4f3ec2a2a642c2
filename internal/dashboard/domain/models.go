package domain

import (
	"context"
	"errors"
)

// CardData is the aggregate block on the home view. Sums are pre-formatted
// currency strings.
type CardData struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

type Service interface {
	// CardData computes the four aggregates concurrently; there is no
	// ordering dependency between them.
	CardData(ctx context.Context) (CardData, error)
}

var ErrFetchFailed = errors.New("failed to fetch card data")
