// Package settings guarda e recupera o snapshot de taxas de um dealer no
// Redis. O snapshot é escrito pela superfície administrativa e é somente
// leitura para o núcleo de compilação.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/rates"
)

// SettlementKey é o snapshot global usado pelo settlement-worker para
// resolver prêmios quando não há override por dealer.
const SettlementKey = "settlement"

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store { return &Store{rdb: rdb} }

func key(dealerID string) string { return "rates:" + dealerID }

// Snapshot retorna o snapshot de taxas do dealer. Chave ausente devolve um
// snapshot vazio (as tabelas padrão se aplicam), nunca erro.
func (s *Store) Snapshot(ctx context.Context, dealerID string) (rates.Settings, error) {
	raw, err := s.rdb.Get(ctx, key(dealerID)).Result()
	if errors.Is(err, redis.Nil) {
		return rates.Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings get: %w", err)
	}
	var out rates.Settings
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("settings decode: %w", err)
	}
	return out, nil
}

// Save substitui o snapshot do dealer
func (s *Store) Save(ctx context.Context, dealerID string, set rates.Settings) error {
	b, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("settings encode: %w", err)
	}
	if err := s.rdb.Set(ctx, key(dealerID), b, 0).Err(); err != nil {
		return fmt.Errorf("settings set: %w", err)
	}
	return nil
}
