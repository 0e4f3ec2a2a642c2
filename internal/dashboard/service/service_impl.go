package service

import (
	"context"

	customerdomain "github.com/acmeboard/acmeboard/internal/customer/domain"
	"github.com/acmeboard/acmeboard/internal/dashboard/domain"
	invoicedomain "github.com/acmeboard/acmeboard/internal/invoice/domain"
	"github.com/acmeboard/acmeboard/internal/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("dashboard.service"),
	}
}

func (s *Service) CardData(ctx context.Context) (domain.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paidCents     int64
		pendingCents  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&invoicedomain.Invoice{}).Count(&invoiceCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&customerdomain.Customer{}).Count(&customerCount).Error
	})
	g.Go(func() error {
		return s.sumByStatus(gctx, invoicedomain.StatusPaid, &paidCents)
	})
	g.Go(func() error {
		return s.sumByStatus(gctx, invoicedomain.StatusPending, &pendingCents)
	})

	if err := g.Wait(); err != nil {
		s.log.Error("failed to fetch card data", zap.Error(err))
		return domain.CardData{}, domain.ErrFetchFailed
	}

	return domain.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    money.FormatCents(paidCents),
		TotalPendingInvoices: money.FormatCents(pendingCents),
	}, nil
}

func (s *Service) sumByStatus(ctx context.Context, status invoicedomain.Status, out *int64) error {
	return s.db.WithContext(ctx).
		Model(&invoicedomain.Invoice{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(out).Error
}
