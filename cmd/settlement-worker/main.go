package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/repo"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/settings"
	"github.com/radieske/lotto-bet-platform-poc/internal/settlement/consumer"
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

	// Inicializa dependências: Postgres e Redis
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	rdb, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	repository := repo.NewPostgres(pg)
	store := settings.NewStore(rdb)

	// Configura o consumer Kafka (consumer group settlement)
	reader := skafka.NewReader(cfg.KafkaBrokers, cfg.TopicDrawResults, "settlement")
	defer reader.Close()

	var dlqWriter *kafka.Writer
	if cfg.TopicDrawResultsDLQ != "" {
		dlqWriter = skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicDrawResultsDLQ)
		defer dlqWriter.Close()
	}

	// Métricas Prometheus para monitoramento da liquidação
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_draws_consumed_total", Help: "resultados de sorteio consumidos"})
	winners := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_winners_total", Help: "apostas marcadas como vencedoras"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "settlement_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, winners, errorsBy)

	proc := &consumer.Processor{
		Log:        log,
		Reader:     reader,
		Repo:       repository,
		Settings:   store,
		DLQ:        dlqWriter,
		OnConsumed: func() { consumed.Inc() },
		OnWinner:   func() { winners.Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	// Servidor HTTP para métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("settlement-worker started", zap.String("consume", cfg.TopicDrawResults))
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor", zap.Error(err))
	}
	log.Info("settlement-worker stopped")
}
