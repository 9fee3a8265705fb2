package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/fulfillment-service/docs"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/app"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/audit"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/auth"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/postgres"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/repo"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/cache"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Fulfillment Service API
// @version         1.0
// @description     Учет заказов: статусы, разделение, оплата и хранение в офисе
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(ctx, db))

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelRepeatableRead))
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	reauth := auth.NewReauthenticator(pgRepo, conf.Auth.ReauthSecret, conf.Auth.ReauthTTL)

	sinks := []audit.Sink{pgRepo}
	if conf.Kafka.AuditTopic != "" {
		writer := audit.NewKafkaWriter(conf.Kafka)
		defer writer.Close()
		sinks = append(sinks, audit.NewKafkaSink(writer))
	}

	rates := entities.ShippingRates{Fast: conf.Shipping.FastRate, Normal: conf.Shipping.NormalRate}
	engine := service.NewStatusEngine(logger, txManager, pgRepo, pgRepo, audit.Fanout(sinks...), reauth, orderCache, rates)
	orderService := service.NewOrderService(logger, pgRepo, pgRepo, orderCache)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, engine)
	httpHandler := handler.NewHTTPHandler(logger, orderService, engine, reauth)

	service.RegisterMetrics()
	handler.RegisterMetrics()
	prometheus.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "fulfillment_service",
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Number of orders held in the cache",
		}, func() float64 { return float64(orderCache.Size()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "fulfillment_service",
			Subsystem: "cache",
			Name:      "hit_ratio",
			Help:      "Share of cache lookups that found the order",
		}, orderCache.Ratio),
	)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.WarmUp})

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case <-app.Done():
		logger.Error("background process failed, shutting down")
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	if a.count == 0 {
		return nil
	}
	return a.svc.WarmUpCache(ctx, a.count)
}
