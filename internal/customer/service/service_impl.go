package service

import (
	"context"
	"strings"

	"github.com/acmeboard/acmeboard/internal/customer/domain"
	"github.com/acmeboard/acmeboard/internal/money"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Option, error) {
	options, err := s.repo.ListOptions(ctx, s.db)
	if err != nil {
		s.log.Error("failed to list customers", zap.Error(err))
		return nil, domain.ErrFetchFailed
	}
	return options, nil
}

func (s *Service) Filtered(ctx context.Context, query string) ([]domain.Summary, error) {
	rows, err := s.repo.FilteredWithTotals(ctx, s.db, strings.TrimSpace(query))
	if err != nil {
		s.log.Error("failed to fetch customer table", zap.Error(err))
		return nil, domain.ErrFetchFailed
	}

	summaries := make([]domain.Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.Summary{
			ID:            row.ID.String(),
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  money.FormatCents(row.TotalPending),
			TotalPaid:     money.FormatCents(row.TotalPaid),
		})
	}
	return summaries, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.Customer{}, domain.ErrInvalidID
	}

	customer, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		s.log.Error("failed to fetch customer", zap.Error(err))
		return domain.Customer{}, domain.ErrFetchFailed
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *customer, nil
}
