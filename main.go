// Demo service exposing a paginated "products" table with the tablekit footer
// control. It wires together the config loader, logger, tracer, PostgreSQL
// store and HTTP server packages of this module.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"

	"github.com/rise-and-shine/tablekit/cfgloader"
	"github.com/rise-and-shine/tablekit/http/server"
	"github.com/rise-and-shine/tablekit/http/server/middleware"
	"github.com/rise-and-shine/tablekit/http/tableapi"
	"github.com/rise-and-shine/tablekit/logger"
	"github.com/rise-and-shine/tablekit/pg"
	"github.com/rise-and-shine/tablekit/tablestore"
	"github.com/rise-and-shine/tablekit/tracing"
)

const (
	serviceName    = "tablekit-demo"
	serviceVersion = "0.1.0"
)

// Config is the demo service configuration, loaded from config/${ENVIRONMENT}.yaml.
type Config struct {
	Logger  logger.Config  `yaml:"logger"`
	HTTP    server.Config  `yaml:"http"`
	PG      pg.Config      `yaml:"pg"`
	Tracing tracing.Config `yaml:"tracing"`
}

// Product is a sample table row, stored in the "products" table.
type Product struct {
	pg.BaseModel

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Name     string `bun:"name,notnull"        json:"name"`
	Category string `bun:"category,notnull"    json:"category"`
	Price    int64  `bun:"price,notnull"       json:"price"`
}

func main() {
	cfg := cfgloader.MustLoad[Config]()

	logger.SetGlobal(cfg.Logger)
	log := logger.Named("main")

	shutdownTracer, err := tracing.InitGlobalTracer(cfg.Tracing, serviceName, serviceVersion)
	if err != nil {
		log.Fatalx(err)
	}
	defer func() { _ = shutdownTracer() }()

	db, err := pg.NewBunDB(cfg.PG)
	if err != nil {
		log.Fatalx(err)
	}
	defer func() { _ = db.Close() }()

	if err := seedProducts(context.Background(), db); err != nil {
		log.Fatalx(err)
	}

	products := tablestore.New[Product](db)

	srv := server.NewHTTPServer(cfg.HTTP, []server.Middleware{
		middleware.NewRecoveryMW(log),
		middleware.NewTimeoutMW(cfg.HTTP.HandleTimeout),
		middleware.NewMetaInjectMW(serviceName, serviceVersion),
		middleware.NewLoggerMW(log),
		middleware.NewErrorHandlerMW(cfg.HTTP.HideErrorDetails),
	})

	srv.RegisterRouter(func(r fiber.Router) {
		r.Get("/tables/products/rows", tableapi.NewListHandler(products, "name", "category", "price", "created_at"))
		r.Get("/tables/products/footer", tableapi.NewFooterHandler(products))
	})

	go func() {
		log.Infof("listening on %s", cfg.HTTP.Address())
		if err := srv.Start(); err != nil {
			log.Fatalx(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := srv.Stop(); err != nil {
		log.Errorx(err)
	}
	_ = logger.Sync()
}

// seedProducts creates the products table and fills it with sample rows so the
// demo endpoints have data to serve. Inserts go through bun, so the
// pg.BaseModel hook stamps created_at/updated_at on every seeded row.
func seedProducts(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*Product)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return errx.Wrap(err)
	}

	count, err := db.NewSelect().Model((*Product)(nil)).Count(ctx)
	if err != nil {
		return errx.Wrap(err)
	}
	if count > 0 {
		return nil
	}

	samples := []Product{
		{Name: "Espresso Machine", Category: "kitchen", Price: 24900},
		{Name: "Pour-Over Kettle", Category: "kitchen", Price: 5900},
		{Name: "Standing Desk", Category: "office", Price: 49900},
		{Name: "Task Chair", Category: "office", Price: 21900},
		{Name: "Mechanical Keyboard", Category: "office", Price: 10900},
		{Name: "Trail Backpack", Category: "outdoor", Price: 13900},
		{Name: "Camping Stove", Category: "outdoor", Price: 8900},
	}

	_, err = db.NewInsert().Model(&samples).Exec(ctx)
	return errx.Wrap(err)
}
