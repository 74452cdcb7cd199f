package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/rates"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/repo"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/settings"
	"github.com/radieske/lotto-bet-platform-poc/internal/settlement/settle"
	"github.com/radieske/lotto-bet-platform-poc/pkg/contracts/events"
)

// Processor consome resultados de sorteio do Kafka, casa as apostas abertas
// da categoria e grava vencedor + prêmio esperado no banco.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa
type Processor struct {
	Log      *zap.Logger
	Reader   *kafka.Reader
	Repo     *repo.Postgres
	Settings *settings.Store
	DLQ      *kafka.Writer // opcional; recebe mensagens inválidas

	OnConsumed func()       // métricas (counter++)
	OnWinner   func()       // métricas
	OnError    func(string) // métricas por fase
}

// Run inicia o loop principal de consumo e liquidação
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var ev events.DrawResult
		if err := json.Unmarshal(m.Value, &ev); err != nil || ev.Category == "" || ev.TopThree == "" {
			p.Log.Warn("invalid draw message", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			p.toDLQ(ctx, m.Value)
			continue
		}

		if err := p.settleDraw(ctx, ev); err != nil {
			p.Log.Warn("settle draw failed", zap.String("category", ev.Category), zap.Error(err))
			if p.OnError != nil {
				p.OnError("settle")
			}
		}
	}
}

func (p *Processor) settleDraw(ctx context.Context, ev events.DrawResult) error {
	// snapshot global de liquidação; ausente → tabelas padrão
	snap, err := p.Settings.Snapshot(ctx, settings.SettlementKey)
	if err != nil {
		p.Log.Warn("settings snapshot failed, using defaults", zap.Error(err))
		snap = rates.Settings{}
	}

	open, err := p.Repo.ListOpenByCategory(ctx, ev.Category)
	if err != nil {
		return err
	}

	winners := 0
	for _, w := range open {
		if !settle.Match(w, ev) {
			continue
		}
		prize, err := settle.Prize(w, snap)
		if err != nil {
			p.Log.Warn("prize resolve failed",
				zap.String("wager_id", w.ID), zap.String("bet_type", w.BetType), zap.Error(err))
			if p.OnError != nil {
				p.OnError("prize")
			}
			continue
		}
		if err := p.Repo.MarkWinner(ctx, w.ID, prize); err != nil {
			p.Log.Warn("mark winner failed", zap.String("wager_id", w.ID), zap.Error(err))
			if p.OnError != nil {
				p.OnError("db_update")
			}
			continue
		}
		winners++
		if p.OnWinner != nil {
			p.OnWinner()
		}
	}

	p.Log.Info("draw settled",
		zap.String("category", ev.Category),
		zap.String("top_three", ev.TopThree),
		zap.Int("open", len(open)),
		zap.Int("winners", winners),
	)
	return nil
}

func (p *Processor) toDLQ(ctx context.Context, payload []byte) {
	if p.DLQ == nil {
		return
	}
	wctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := p.DLQ.WriteMessages(wctx, kafka.Message{Value: payload, Time: time.Now()}); err != nil {
		p.Log.Warn("dlq write failed", zap.Error(err))
	}
}
