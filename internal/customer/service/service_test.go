package service

import (
	"context"
	"testing"
	"time"

	"github.com/acmeboard/acmeboard/internal/customer/domain"
	"github.com/acmeboard/acmeboard/internal/customer/repository"
	invoicedomain "github.com/acmeboard/acmeboard/internal/invoice/domain"
	"github.com/acmeboard/acmeboard/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type fixture struct {
	svc  domain.Service
	db   *gorm.DB
	node *snowflake.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Customer{}, &invoicedomain.Invoice{}))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	svc := New(Params{
		DB:   dbConn,
		Log:  zaptest.NewLogger(t),
		Repo: repository.Provide(),
	})
	return &fixture{svc: svc, db: dbConn, node: node}
}

func (f *fixture) seedCustomer(t *testing.T, name, email string) domain.Customer {
	t.Helper()
	customer := domain.Customer{
		ID:       f.node.Generate(),
		Name:     name,
		Email:    email,
		ImageURL: "/customers/" + name + ".png",
	}
	require.NoError(t, f.db.Create(&customer).Error)
	return customer
}

func (f *fixture) seedInvoice(t *testing.T, customerID snowflake.ID, amount int64, status invoicedomain.Status) {
	t.Helper()
	inv := invoicedomain.Invoice{
		ID:         f.node.Generate(),
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
		Date:       time.Now().UTC(),
	}
	require.NoError(t, f.db.Create(&inv).Error)
}

func TestListOrderedByName(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "Zed Options", "zed-options@example.com")
	f.seedCustomer(t, "Abel Options", "abel-options@example.com")

	options, err := f.svc.List(context.Background())
	require.NoError(t, err)

	var names []string
	for _, o := range options {
		names = append(names, o.Name)
	}
	require.Contains(t, names, "Abel Options")
	require.Contains(t, names, "Zed Options")
	assert.Less(t, indexOf(names, "Abel Options"), indexOf(names, "Zed Options"))
}

func TestFilteredAggregatesByStatus(t *testing.T) {
	f := newFixture(t)
	c := f.seedCustomer(t, "Aggregate Target", "aggregate-target@example.com")
	f.seedInvoice(t, c.ID, 100, invoicedomain.StatusPaid)
	f.seedInvoice(t, c.ID, 200, invoicedomain.StatusPaid)
	f.seedInvoice(t, c.ID, 50, invoicedomain.StatusPending)

	summaries, err := f.svc.Filtered(context.Background(), "aggregate-target")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	got := summaries[0]
	assert.Equal(t, c.ID.String(), got.ID)
	assert.Equal(t, int64(3), got.TotalInvoices)
	assert.Equal(t, "$3.00", got.TotalPaid)
	assert.Equal(t, "$0.50", got.TotalPending)
}

func TestFilteredIncludesCustomerWithoutInvoices(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "No Invoices Yet", "no-invoices-yet@example.com")

	summaries, err := f.svc.Filtered(context.Background(), "no-invoices-yet")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	got := summaries[0]
	assert.Equal(t, int64(0), got.TotalInvoices)
	assert.Equal(t, "$0.00", got.TotalPaid)
	assert.Equal(t, "$0.00", got.TotalPending)
}

func TestFilteredMatchesEmailCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "Case Test", "Case-Filter@Example.com")

	summaries, err := f.svc.Filtered(context.Background(), "case-filter")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Case Test", summaries[0].Name)
}

func TestGetByIDInvalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByID(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func indexOf(names []string, want string) int {
	for i, n := range names {
		if n == want {
			return i
		}
	}
	return -1
}
