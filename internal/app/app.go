package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/coffeetab/coffeetab/internal/config"
	"github.com/coffeetab/coffeetab/internal/domain"
	"github.com/coffeetab/coffeetab/internal/loader"
	"github.com/coffeetab/coffeetab/internal/report"
	"github.com/coffeetab/coffeetab/internal/service"
	"github.com/coffeetab/coffeetab/pkg/clients"
	"github.com/coffeetab/coffeetab/pkg/logger"
)

// Loader produces the three input datasets. Implemented by loader.FileLoader.
type Loader interface {
	Payments(ctx context.Context) ([]domain.Payment, error)
	Products(ctx context.Context) ([]domain.Product, error)
	Orders(ctx context.Context) ([]domain.Order, error)
}

type Application struct {
	cfg *config.Config
	ldr Loader
	srv *service.Services
	out io.Writer
}

func New() *Application {
	return &Application{
		out: os.Stdout,
	}
}

// Run executes one full aggregation run: parse config, init the logger,
// then drive the pipeline.
func (a *Application) Run(ctx context.Context) error {
	cfg := config.New()

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	a.cfg = cfg
	if cfg.SourceURL != "" {
		a.ldr = loader.NewHTTP(cfg.SourceURL, clients.NewHTTPClient())
	} else {
		a.ldr = loader.New(cfg.PaymentsFile, cfg.ProductsFile, cfg.OrdersFile)
	}

	zap.L().Info("starting aggregation run",
		zap.String("payments", cfg.PaymentsFile),
		zap.String("products", cfg.ProductsFile),
		zap.String("orders", cfg.OrdersFile),
		zap.String("source", cfg.SourceURL),
	)

	return a.run(ctx)
}

// run is the pipeline proper: load everything, fold payments, then products,
// then orders, then write the report. Any failure halts before the report,
// so a partial run produces no output at all.
func (a *Application) run(ctx context.Context) error {
	payments, err := a.ldr.Payments(ctx)
	if err != nil {
		zap.L().Error("can't load payments", zap.Error(err))
		return fmt.Errorf("can't load payments: %w", err)
	}
	products, err := a.ldr.Products(ctx)
	if err != nil {
		zap.L().Error("can't load products", zap.Error(err))
		return fmt.Errorf("can't load products: %w", err)
	}
	orders, err := a.ldr.Orders(ctx)
	if err != nil {
		zap.L().Error("can't load orders", zap.Error(err))
		return fmt.Errorf("can't load orders: %w", err)
	}

	a.srv = service.New()

	for _, p := range payments {
		a.srv.LedgerService.RecordPayment(p.User, p.Amount)
	}
	for _, p := range products {
		a.srv.PricingService.RecordProduct(p.DrinkName, p.Prices)
	}
	// Orders fold last: every price lookup must see the full price table.
	for _, o := range orders {
		if err := a.srv.LedgerService.RecordOrder(o.User, o.Drink, o.Size); err != nil {
			return fmt.Errorf("can't record order for %s: %w", o.User, err)
		}
	}

	if err := report.Write(a.out, a.srv.LedgerService); err != nil {
		return err
	}

	zap.L().Info("aggregation run complete", zap.Int("users", len(a.srv.LedgerService.Users())))
	return nil
}
