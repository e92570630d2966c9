package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/niksmo/inventory-pos/config"
	"github.com/niksmo/inventory-pos/internal/adapter"
	"github.com/niksmo/inventory-pos/internal/adapter/httphandler"
	"github.com/niksmo/inventory-pos/internal/adapter/kafka"
	"github.com/niksmo/inventory-pos/internal/adapter/memory"
	"github.com/niksmo/inventory-pos/internal/adapter/notify"
	"github.com/niksmo/inventory-pos/internal/adapter/seed"
	"github.com/niksmo/inventory-pos/internal/adapter/telemetry"
	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
	"github.com/niksmo/inventory-pos/internal/core/service"
	"github.com/niksmo/inventory-pos/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	sale     schema.Serde
	lowStock schema.Serde
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	loc        *time.Location
	seed       domain.Snapshot
	serdes     serdes
	kafka      *kafka.Notifier
	notifier   port.Notifier
	tracing    *telemetry.Provider
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSeed()
	app.initNotifier()
	app.initTelemetry()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSeed() {
	const op = "App.initSeed"

	loc, err := app.cfg.Location()
	if err != nil {
		app.fallDown(op, err)
	}
	app.loc = loc

	snap, err := seed.Load(app.cfg.SeedFile)
	if err != nil {
		app.fallDown(op, err)
	}
	app.seed = snap

	slog.Info(
		"seed data loaded",
		"op", op,
		"products", len(snap.Products),
		"sales", len(snap.Sales),
	)
}

func (app *App) initNotifier() {
	switch app.cfg.Notify.Kind {
	case config.NotifyLog:
		app.notifier = notify.NewLogNotifier(slog.Default())
	case config.NotifyKafka:
		app.initSerdes()
		app.initProducers()
		app.notifier = app.kafka
	default:
		slog.Info("notifications are disabled")
	}
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	saleSS := app.cfg.Broker.Topics.Sales + "-value"
	saleSerde, err := schema.NewSerdeSaleV1(
		ctx,
		schema.SubjectOpt(saleSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	lowStockSS := app.cfg.Broker.Topics.LowStock + "-value"
	lowStockSerde, err := schema.NewSerdeLowStockAlertV1(
		ctx,
		schema.SubjectOpt(lowStockSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.sale = saleSerde
	app.serdes.lowStock = lowStockSerde
}

func (app *App) initProducers() {
	const op = "App.initProducers"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	topics := app.cfg.Broker.Topics

	var tlsConfig *tls.Config
	if t := app.cfg.Broker.TLS; t.Enabled() {
		c, err := adapter.MakeTLSConfig(t.CA, t.Cert, t.Key)
		if err != nil {
			app.fallDown(op, err)
		}
		tlsConfig = c
	}

	salesProducer, err := kafka.NewSalesProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.Sales, tlsConfig),
		kafka.ProducerEncoderOpt(app.serdes.sale),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	lowStockProducer, err := kafka.NewLowStockProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.LowStock, tlsConfig),
		kafka.ProducerEncoderOpt(app.serdes.lowStock),
	)
	if err != nil {
		salesProducer.Close()
		app.fallDown(op, err)
	}

	n := kafka.NewNotifier(salesProducer, lowStockProducer)
	app.kafka = &n
}

func (app *App) initTelemetry() {
	const op = "App.initTelemetry"

	tc := app.cfg.Telemetry
	p, err := telemetry.Setup(app.ctx, telemetry.Config{
		Enabled:     tc.Enabled,
		Exporter:    tc.Exporter,
		Endpoint:    tc.Endpoint,
		ServiceName: tc.ServiceName,
	}, os.Stdout)
	if err != nil {
		app.fallDown(op, err)
	}
	app.tracing = p
}

func (app *App) initCoreService() {
	opts := []service.Opt{
		service.LocationOpt(app.loc),
		service.StockPolicyOpt(app.cfg.StockPolicy()),
		service.DecrementStockOpt(app.cfg.Checkout.DecrementStock),
		service.NotifyTimeoutOpt(app.cfg.Notify.Timeout),
	}
	if app.notifier != nil {
		opts = append(opts, service.NotifierOpt(app.notifier))
	}
	app.service = service.New(memory.Factory{}, app.seed, opts...)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterInventory(mux, app.service, app.loc)

	allowContentTypes := httphandler.AllowContentTypes(
		"application/json",
		"application/avro",
		"application/octet-stream",
	)
	handler := app.tracing.Middleware(allowContentTypes(mux))
	app.httpServer = httphandler.NewHTTPServer(
		addr, handler, app.cfg.HTTP.RequestTimeout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if err := app.service.Wait(ctx); err != nil {
		slog.Error("pending notifications are dropped", "err", err)
	}
	if app.kafka != nil {
		app.kafka.Close()
	}
	if err := app.tracing.Shutdown(ctx); err != nil {
		slog.Error("failed to flush traces", "err", err)
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
