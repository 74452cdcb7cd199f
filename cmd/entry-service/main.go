package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	ehttp "github.com/radieske/lotto-bet-platform-poc/internal/entry-service/http"
	kpub "github.com/radieske/lotto-bet-platform-poc/internal/entry-service/producer"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/repo"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/settings"
	sharedcache "github.com/radieske/lotto-bet-platform-poc/internal/shared/cache"
	"github.com/radieske/lotto-bet-platform-poc/internal/shared/config"
	"github.com/radieske/lotto-bet-platform-poc/internal/shared/db"
	skafka "github.com/radieske/lotto-bet-platform-poc/internal/shared/kafka"
	"github.com/radieske/lotto-bet-platform-poc/internal/shared/logger"
	"github.com/radieske/lotto-bet-platform-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	// Redis (snapshot de taxas por dealer)
	rdb, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writer (topic bill_submitted)
	writer := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBillSubmitted)
	defer writer.Close()

	// deps
	repository := repo.NewPostgres(pg)
	store := settings.NewStore(rdb)
	publ := kpub.NewKafkaPublisher(writer, cfg.TopicBillSubmitted)

	// Métricas Prometheus do fluxo de compilação
	wagersCreated := prometheus.NewCounter(prometheus.CounterOpts{Name: "entry_wagers_created_total", Help: "apostas canônicas persistidas"})
	entriesRejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "entry_rejected_total", Help: "entradas rejeitadas na validação"})
	prometheus.MustRegister(wagersCreated, entriesRejected)

	// HTTP público
	api := ehttp.NewServer(log, repository, store, publ)
	api.OnCompiled = func(n int) { wagersCreated.Add(float64(n)) }
	api.OnRejected = func() { entriesRejected.Inc() }

	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	log.Info("entry-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
