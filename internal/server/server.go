// Package server wires the gin engine, middleware and route handlers.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/acmeboard/acmeboard/internal/auth"
	authdomain "github.com/acmeboard/acmeboard/internal/auth/domain"
	authlocal "github.com/acmeboard/acmeboard/internal/auth/local"
	"github.com/acmeboard/acmeboard/internal/auth/session"
	"github.com/acmeboard/acmeboard/internal/config"
	"github.com/acmeboard/acmeboard/internal/customer"
	customerdomain "github.com/acmeboard/acmeboard/internal/customer/domain"
	"github.com/acmeboard/acmeboard/internal/dashboard"
	dashboarddomain "github.com/acmeboard/acmeboard/internal/dashboard/domain"
	"github.com/acmeboard/acmeboard/internal/invoice"
	invoicedomain "github.com/acmeboard/acmeboard/internal/invoice/domain"
	"github.com/acmeboard/acmeboard/internal/revenue"
	revenuedomain "github.com/acmeboard/acmeboard/internal/revenue/domain"
	"github.com/acmeboard/acmeboard/internal/viewcache"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	customer.Module,
	dashboard.Module,
	invoice.Module,
	revenue.Module,
	viewcache.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger) *gin.Engine {
	return NewEngine(cfg, log)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	log          *zap.Logger
	authsvc      authdomain.Service
	authHandler  *authlocal.Handler
	sessions     *session.Manager
	invoiceSvc   invoicedomain.Service
	customerSvc  customerdomain.Service
	dashboardSvc dashboarddomain.Service
	revenueSvc   revenuedomain.Service
	views        *viewcache.Cache
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	Log          *zap.Logger
	Authsvc      authdomain.Service
	AuthHandler  *authlocal.Handler
	Sessions     *session.Manager
	InvoiceSvc   invoicedomain.Service
	CustomerSvc  customerdomain.Service
	DashboardSvc dashboarddomain.Service
	RevenueSvc   revenuedomain.Service
	Views        *viewcache.Cache
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		log:          p.Log.Named("http.server"),
		authsvc:      p.Authsvc,
		authHandler:  p.AuthHandler,
		sessions:     p.Sessions,
		invoiceSvc:   p.InvoiceSvc,
		customerSvc:  p.CustomerSvc,
		dashboardSvc: p.DashboardSvc,
		revenueSvc:   p.RevenueSvc,
		views:        p.Views,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerSeedRoute()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	authlocal.RegisterRoutes(s.engine, s.authHandler)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.AuthRequired())

	dash := api.Group("/dashboard")
	{
		dash.GET("/cards", s.GetDashboardCards)
		dash.GET("/revenue", s.GetRevenue)
		dash.GET("/latest-invoices", s.GetLatestInvoices)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", s.ListInvoices)
		invoices.GET("/pages", s.GetInvoicePages)
		invoices.GET("/:id", s.GetInvoiceByID)
		invoices.POST("", s.CreateInvoice)
		invoices.PUT("/:id", s.UpdateInvoice)
		invoices.DELETE("/:id", s.DeleteInvoice)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", s.ListCustomers)
		customers.GET("/filtered", s.ListFilteredCustomers)
	}
}
