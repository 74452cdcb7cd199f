package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/lotto-bet-platform-poc/internal/shared/config"
	skafka "github.com/radieske/lotto-bet-platform-poc/internal/shared/kafka"
	"github.com/radieske/lotto-bet-platform-poc/internal/shared/logger"
	"github.com/radieske/lotto-bet-platform-poc/internal/shared/metrics"
	"github.com/radieske/lotto-bet-platform-poc/pkg/contracts/events"
)

// Catálogo fixo de categorias simuladas para geração de sorteios
var categories = []string{"thai", "lao", "hanoi"}

var drawsPublished = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "simulator_draws_published_total",
	Help: "Total de resultados de sorteio publicados",
})

// gera uma string com n dígitos aleatórios
func randDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rand.Intn(10))
	}
	return string(b)
}

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	prometheus.MustRegister(drawsPublished)

	writer := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicDrawResults)
	defer writer.Close()

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error { return nil })
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	// Gera e publica um resultado de sorteio por categoria a cada 30 segundos
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	log.Info("draw-simulator started", zap.String("topic", cfg.TopicDrawResults))
	for range ticker.C {
		for _, cat := range categories {
			first := randDigits(6)
			ev := events.DrawResult{
				Category:   cat,
				DrawDate:   time.Now().Format("2006-01-02"),
				TopThree:   first[3:],
				BottomTwo:  randDigits(2),
				FirstPrize: first,
				Source:     cfg.ServiceName,
				UpdatedAt:  time.Now().UTC(),
			}
			b, _ := json.Marshal(ev)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := skafka.WriteJSON(ctx, writer, fmt.Sprintf("%s:%s", ev.Category, ev.DrawDate), b)
			cancel()
			if err != nil {
				log.Warn("publish draw failed", zap.String("category", cat), zap.Error(err))
				continue
			}
			drawsPublished.Inc()
			log.Info("draw published",
				zap.String("category", cat),
				zap.String("top_three", ev.TopThree),
				zap.String("bottom_two", ev.BottomTwo),
			)
		}
	}
}
