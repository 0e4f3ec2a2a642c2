package service

import (
	"context"
	"sort"
	"time"

	"github.com/acmeboard/acmeboard/internal/config"
	"github.com/acmeboard/acmeboard/internal/revenue/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
	Cfg config.Config
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	delay time.Duration
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("revenue.service"),
		delay: p.Cfg.RevenueFetchDelay,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Point, error) {
	if s.delay > 0 {
		// Latency injection for demoing loading states; off by default.
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	var points []domain.Point
	err := s.db.WithContext(ctx).
		Model(&domain.Point{}).
		Find(&points).Error
	if err != nil {
		s.log.Error("failed to fetch revenue data", zap.Error(err))
		return nil, domain.ErrFetchFailed
	}

	order := make(map[string]int, len(domain.Months))
	for i, m := range domain.Months {
		order[m] = i
	}
	sort.SliceStable(points, func(i, j int) bool {
		return order[points[i].Month] < order[points[j].Month]
	})
	return points, nil
}
