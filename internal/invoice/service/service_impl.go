package service

import (
	"context"
	"math"
	"strings"

	"github.com/acmeboard/acmeboard/internal/clock"
	"github.com/acmeboard/acmeboard/internal/invoice/domain"
	"github.com/acmeboard/acmeboard/internal/money"
	"github.com/acmeboard/acmeboard/internal/viewcache"
	"github.com/acmeboard/acmeboard/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const latestLimit = 5

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
	Views *viewcache.Cache
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
	views *viewcache.Cache
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
		views: p.Views,
	}
}

func (s *Service) Latest(ctx context.Context) ([]domain.LatestItem, error) {
	rows, err := s.repo.Latest(ctx, s.db, latestLimit)
	if err != nil {
		s.log.Error("failed to fetch the latest invoices", zap.Error(err))
		return nil, domain.ErrFetchFailed
	}

	items := make([]domain.LatestItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.LatestItem{
			ID:       row.ID.String(),
			Amount:   money.FormatCents(row.Amount),
			Name:     row.CustomerName,
			Email:    row.CustomerEmail,
			ImageURL: row.CustomerImage,
		})
	}
	return items, nil
}

func (s *Service) Filtered(ctx context.Context, query string, page int) ([]domain.ListItem, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * domain.ItemsPerPage

	rows, err := s.repo.Filtered(ctx, s.db, strings.TrimSpace(query), domain.ItemsPerPage, offset)
	if err != nil {
		s.log.Error("failed to fetch invoices", zap.Error(err))
		return nil, domain.ErrFetchFailed
	}

	items := make([]domain.ListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ListItem{
			ID:            row.ID.String(),
			Amount:        money.FormatCents(row.Amount),
			Status:        row.Status,
			Date:          row.Date,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			CustomerImage: row.CustomerImage,
		})
	}
	return items, nil
}

func (s *Service) Pages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, s.db, strings.TrimSpace(query))
	if err != nil {
		s.log.Error("failed to fetch total number of invoices", zap.Error(err))
		return 0, domain.ErrFetchFailed
	}
	return int(math.Ceil(float64(count) / float64(domain.ItemsPerPage))), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Form, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Form{}, err
	}

	invoice, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		s.log.Error("failed to fetch invoice", zap.Error(err))
		return domain.Form{}, domain.ErrFetchFailed
	}
	if invoice == nil {
		return domain.Form{}, domain.ErrNotFound
	}

	return domain.Form{
		ID:         invoice.ID.String(),
		CustomerID: invoice.CustomerID.String(),
		Amount:     money.Decimal(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

func (s *Service) Create(ctx context.Context, input domain.Input) (*domain.FieldErrors, error) {
	validated, fieldErrs := domain.Validate(input)
	if fieldErrs != nil {
		fieldErrs.Message = "Missing fields. Failed to create invoice."
		return fieldErrs, nil
	}

	now := s.clock.Now()
	invoice := &domain.Invoice{
		ID:         s.genID.Generate(),
		CustomerID: validated.CustomerID,
		Amount:     validated.AmountCents,
		Status:     validated.Status,
		Date:       now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, invoice); err != nil {
		if db.IsForeignKeyErr(err) {
			// The customer disappeared between validation and persist.
			return &domain.FieldErrors{
				Errors:  map[string][]string{"customerId": {"Please select a customer."}},
				Message: "Missing fields. Failed to create invoice.",
			}, nil
		}
		s.log.Error("failed to create invoice", zap.Error(err))
		return nil, domain.ErrCreateFailed
	}

	// Only after a successful persist.
	s.views.Invalidate(viewcache.InvoiceListPath)
	return nil, nil
}

func (s *Service) Update(ctx context.Context, id string, input domain.Input) (*domain.FieldErrors, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	validated, fieldErrs := domain.Validate(input)
	if fieldErrs != nil {
		fieldErrs.Message = "Missing fields. Failed to update invoice."
		return fieldErrs, nil
	}

	// Date is re-stamped on every update, not preserved.
	now := s.clock.Now()
	invoice := &domain.Invoice{
		ID:         parsed,
		CustomerID: validated.CustomerID,
		Amount:     validated.AmountCents,
		Status:     validated.Status,
		Date:       now,
		UpdatedAt:  now,
	}

	affected, err := s.repo.Update(ctx, s.db, invoice)
	if err != nil {
		s.log.Error("failed to update invoice", zap.Error(err))
		return nil, domain.ErrUpdateFailed
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	s.views.Invalidate(viewcache.InvoiceListPath)
	return nil, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, parsed)
	if err != nil {
		s.log.Error("failed to delete invoice", zap.Error(err))
		return domain.ErrDeleteFailed
	}
	if affected == 0 {
		// A repeat delete is an error, not a silent success.
		return domain.ErrNotFound
	}

	s.views.Invalidate(viewcache.InvoiceListPath)
	return nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
