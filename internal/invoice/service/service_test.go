package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/acmeboard/acmeboard/internal/clock"
	customerdomain "github.com/acmeboard/acmeboard/internal/customer/domain"
	"github.com/acmeboard/acmeboard/internal/invoice/domain"
	"github.com/acmeboard/acmeboard/internal/invoice/repository"
	"github.com/acmeboard/acmeboard/internal/viewcache"
	"github.com/acmeboard/acmeboard/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type fixture struct {
	svc   *Service
	db    *gorm.DB
	node  *snowflake.Node
	clk   *clock.FakeClock
	views *viewcache.Cache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&customerdomain.Customer{}, &domain.Invoice{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	views := viewcache.New(time.Minute)

	svc := &Service{
		db:    dbConn,
		log:   zaptest.NewLogger(t),
		genID: node,
		clock: clk,
		repo:  repository.Provide(),
		views: views,
	}
	return &fixture{svc: svc, db: dbConn, node: node, clk: clk, views: views}
}

func (f *fixture) seedCustomer(t *testing.T, name, email string) snowflake.ID {
	t.Helper()
	customer := customerdomain.Customer{
		ID:    f.node.Generate(),
		Name:  name,
		Email: email,
	}
	require.NoError(t, f.db.Create(&customer).Error)
	return customer.ID
}

func TestCreatePersistsCentsAndStampsDate(t *testing.T) {
	f := newFixture(t)
	customerID := f.seedCustomer(t, "Create Cents Customer", "create-cents@example.com")

	fieldErrs, err := f.svc.Create(context.Background(), domain.Input{
		CustomerID: customerID.String(),
		Amount:     "15.50",
		Status:     "pending",
	})
	require.NoError(t, err)
	assert.Nil(t, fieldErrs)

	var stored domain.Invoice
	require.NoError(t, f.db.Where("customer_id = ?", customerID).First(&stored).Error)
	assert.Equal(t, int64(1550), stored.Amount)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, f.clk.Now().UTC(), stored.Date.UTC())
	assert.Equal(t, int64(1), f.views.Invalidations())
}

func TestCreateInvalidInputTouchesNothing(t *testing.T) {
	f := newFixture(t)

	var before int64
	require.NoError(t, f.db.Model(&domain.Invoice{}).Count(&before).Error)

	fieldErrs, err := f.svc.Create(context.Background(), domain.Input{
		CustomerID: "",
		Amount:     "-5",
		Status:     "paid",
	})
	require.NoError(t, err)
	require.NotNil(t, fieldErrs)
	assert.Equal(t, []string{"Please select a customer."}, fieldErrs.Errors["customerId"])
	assert.Equal(t, []string{"Please enter a valid amount."}, fieldErrs.Errors["amount"])
	assert.Equal(t, "Missing fields. Failed to create invoice.", fieldErrs.Message)

	var after int64
	require.NoError(t, f.db.Model(&domain.Invoice{}).Count(&after).Error)
	assert.Equal(t, before, after)
	assert.Equal(t, int64(0), f.views.Invalidations())
}

func TestFilteredMatchesJoinedFields(t *testing.T) {
	f := newFixture(t)
	aliceID := f.seedCustomer(t, "Filter Alice", "filter-alice@example.com")
	bobID := f.seedCustomer(t, "Filter Bob", "filter-bob@example.com")

	for _, in := range []domain.Input{
		{CustomerID: aliceID.String(), Amount: "10.00", Status: "paid"},
		{CustomerID: bobID.String(), Amount: "20.00", Status: "pending"},
	} {
		fieldErrs, err := f.svc.Create(context.Background(), in)
		require.NoError(t, err)
		require.Nil(t, fieldErrs)
	}

	items, err := f.svc.Filtered(context.Background(), "filter alice", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Filter Alice", items[0].CustomerName)
	assert.Equal(t, "$10.00", items[0].Amount)

	// Every hit contains the query in name, email or status.
	items, err = f.svc.Filtered(context.Background(), "FILTER-BOB@", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	for _, item := range items {
		match := strings.Contains(strings.ToLower(item.CustomerName), "filter-bob@") ||
			strings.Contains(strings.ToLower(item.CustomerEmail), "filter-bob@") ||
			strings.Contains(string(item.Status), "filter-bob@")
		assert.True(t, match)
	}
}

func TestFilteredMatchesStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customerID := f.seedCustomer(t, "Status Leg Zx", "status-leg-zx@example.com")

	before, err := f.svc.repo.CountFiltered(ctx, f.db, "pend")
	require.NoError(t, err)

	for _, in := range []domain.Input{
		{CustomerID: customerID.String(), Amount: "6.00", Status: "pending"},
		{CustomerID: customerID.String(), Amount: "5.00", Status: "paid"},
	} {
		fieldErrs, err := f.svc.Create(ctx, in)
		require.NoError(t, err)
		require.Nil(t, fieldErrs)
	}

	// Neither the name nor the email contains "pend", so the extra match
	// can only come through the status column; the paid row stays out.
	after, err := f.svc.repo.CountFiltered(ctx, f.db, "pend")
	require.NoError(t, err)
	assert.Equal(t, before+1, after)

	items, err := f.svc.Filtered(ctx, "pend", 1)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		match := strings.Contains(strings.ToLower(item.CustomerName), "pend") ||
			strings.Contains(strings.ToLower(item.CustomerEmail), "pend") ||
			strings.Contains(string(item.Status), "pend")
		assert.True(t, match)
	}

	pages, err := f.svc.Pages(ctx, "pend")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int64(pages)*int64(domain.ItemsPerPage), after)
}

func TestFilteredPaginationAndOrder(t *testing.T) {
	f := newFixture(t)
	customerID := f.seedCustomer(t, "Pagination Customer Zq", "pagination-zq@example.com")

	// Seven invoices, one per day, newest last.
	for i := 0; i < 7; i++ {
		f.clk.Advance(24 * time.Hour)
		fieldErrs, err := f.svc.Create(context.Background(), domain.Input{
			CustomerID: customerID.String(),
			Amount:     "1.00",
			Status:     "pending",
		})
		require.NoError(t, err)
		require.Nil(t, fieldErrs)
	}

	page1, err := f.svc.Filtered(context.Background(), "pagination-zq", 1)
	require.NoError(t, err)
	assert.Len(t, page1, domain.ItemsPerPage)

	page2, err := f.svc.Filtered(context.Background(), "pagination-zq", 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)

	// Newest first across the page boundary.
	require.True(t, page1[0].Date.After(page1[len(page1)-1].Date))
	require.True(t, page1[len(page1)-1].Date.After(page2[0].Date))

	pages, err := f.svc.Pages(context.Background(), "pagination-zq")
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	// pages * pageSize bounds the match count.
	assert.GreaterOrEqual(t, pages*domain.ItemsPerPage, 7)
}

func TestPagesEmptyResult(t *testing.T) {
	f := newFixture(t)

	pages, err := f.svc.Pages(context.Background(), "no-such-query-zzz")
	require.NoError(t, err)
	assert.Equal(t, 0, pages)
}

func TestGetByIDReturnsDecimalAmount(t *testing.T) {
	f := newFixture(t)
	customerID := f.seedCustomer(t, "Decimal Customer", "decimal@example.com")

	fieldErrs, err := f.svc.Create(context.Background(), domain.Input{
		CustomerID: customerID.String(),
		Amount:     "15.50",
		Status:     "paid",
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	var stored domain.Invoice
	require.NoError(t, f.db.Where("customer_id = ?", customerID).First(&stored).Error)

	form, err := f.svc.GetByID(context.Background(), stored.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 15.5, form.Amount)
	assert.Equal(t, domain.StatusPaid, form.Status)
	assert.Equal(t, customerID.String(), form.CustomerID)
}

func TestUpdateRestampsDate(t *testing.T) {
	f := newFixture(t)
	customerID := f.seedCustomer(t, "Restamp Customer", "restamp@example.com")

	fieldErrs, err := f.svc.Create(context.Background(), domain.Input{
		CustomerID: customerID.String(),
		Amount:     "10.00",
		Status:     "pending",
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	var stored domain.Invoice
	require.NoError(t, f.db.Where("customer_id = ?", customerID).First(&stored).Error)
	createdDate := stored.Date

	f.clk.Advance(48 * time.Hour)
	fieldErrs, err = f.svc.Update(context.Background(), stored.ID.String(), domain.Input{
		CustomerID: customerID.String(),
		Amount:     "22.00",
		Status:     "paid",
	})
	require.NoError(t, err)
	assert.Nil(t, fieldErrs)

	require.NoError(t, f.db.Where("id = ?", stored.ID).First(&stored).Error)
	assert.Equal(t, int64(2200), stored.Amount)
	assert.Equal(t, domain.StatusPaid, stored.Status)
	assert.True(t, stored.Date.After(createdDate))
}

func TestUpdateMissingInvoice(t *testing.T) {
	f := newFixture(t)
	customerID := f.seedCustomer(t, "Update Missing Customer", "update-missing@example.com")

	_, err := f.svc.Update(context.Background(), f.node.Generate().String(), domain.Input{
		CustomerID: customerID.String(),
		Amount:     "1.00",
		Status:     "paid",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteTwiceFails(t *testing.T) {
	f := newFixture(t)
	customerID := f.seedCustomer(t, "Delete Twice Customer", "delete-twice@example.com")

	fieldErrs, err := f.svc.Create(context.Background(), domain.Input{
		CustomerID: customerID.String(),
		Amount:     "5.00",
		Status:     "pending",
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	var stored domain.Invoice
	require.NoError(t, f.db.Where("customer_id = ?", customerID).First(&stored).Error)

	require.NoError(t, f.svc.Delete(context.Background(), stored.ID.String()))
	assert.ErrorIs(t, f.svc.Delete(context.Background(), stored.ID.String()), domain.ErrNotFound)
}
