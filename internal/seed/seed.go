// Package seed loads the placeholder dataset used for local development
// and demos.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/acmeboard/acmeboard/internal/auth/domain"
	"github.com/acmeboard/acmeboard/internal/auth/password"
	customerdomain "github.com/acmeboard/acmeboard/internal/customer/domain"
	invoicedomain "github.com/acmeboard/acmeboard/internal/invoice/domain"
	revenuedomain "github.com/acmeboard/acmeboard/internal/revenue/domain"
	"gorm.io/gorm"
)

const (
	defaultUserName     = "Acme Admin"
	defaultUserEmail    = "user@acme.com"
	defaultUserPassword = "123456"
)

type customerSeed struct {
	name     string
	email    string
	imageURL string
}

type invoiceSeed struct {
	customer string
	amount   int64
	status   invoicedomain.Status
	date     string
}

var customerSeeds = []customerSeed{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var invoiceSeeds = []invoiceSeed{
	{"Evil Rabbit", 15795, invoicedomain.StatusPending, "2022-12-06"},
	{"Delba de Oliveira", 20348, invoicedomain.StatusPending, "2022-11-14"},
	{"Amy Burns", 3040, invoicedomain.StatusPaid, "2022-10-29"},
	{"Michael Novotny", 44800, invoicedomain.StatusPaid, "2023-09-10"},
	{"Balazs Orban", 34577, invoicedomain.StatusPending, "2023-08-05"},
	{"Lee Robinson", 54246, invoicedomain.StatusPending, "2023-07-16"},
	{"Evil Rabbit", 666, invoicedomain.StatusPending, "2023-06-27"},
	{"Michael Novotny", 32545, invoicedomain.StatusPaid, "2023-06-09"},
	{"Amy Burns", 1250, invoicedomain.StatusPaid, "2023-06-17"},
	{"Balazs Orban", 8546, invoicedomain.StatusPaid, "2023-06-07"},
	{"Delba de Oliveira", 500, invoicedomain.StatusPaid, "2023-08-19"},
	{"Amy Burns", 8945, invoicedomain.StatusPaid, "2023-06-03"},
	{"Lee Robinson", 1000, invoicedomain.StatusPaid, "2022-06-05"},
}

var revenueSeeds = []revenuedomain.Point{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

// Run loads the placeholder user, customers, invoices and revenue points in
// a single transaction. Re-running against an already seeded database is a
// no-op.
func Run(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing authdomain.User
		err := tx.Where("email = ?", defaultUserEmail).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(defaultUserPassword)
		if err != nil {
			return err
		}
		user := authdomain.User{
			ID:           node.Generate(),
			Name:         defaultUserName,
			Email:        defaultUserEmail,
			PasswordHash: hashed,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		customerIDs := make(map[string]snowflake.ID, len(customerSeeds))
		for _, c := range customerSeeds {
			customer := customerdomain.Customer{
				ID:       node.Generate(),
				Name:     c.name,
				Email:    c.email,
				ImageURL: c.imageURL,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
			customerIDs[c.name] = customer.ID
		}

		for _, i := range invoiceSeeds {
			date, err := time.Parse("2006-01-02", i.date)
			if err != nil {
				return err
			}
			invoice := invoicedomain.Invoice{
				ID:         node.Generate(),
				CustomerID: customerIDs[i.customer],
				Amount:     i.amount,
				Status:     i.status,
				Date:       date,
			}
			if err := tx.Create(&invoice).Error; err != nil {
				return err
			}
		}

		for _, point := range revenueSeeds {
			if err := tx.Create(&point).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
