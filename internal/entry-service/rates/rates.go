// Package rates resolve comissão e prêmio para (categoria, tipo de aposta,
// snapshot de configurações), seguindo a precedência de overrides documentada.
package rates

import (
	"fmt"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
)

// Spec é o resultado fechado da resolução: percentual (IsFixed=false) ou
// valor fixo por unidade (IsFixed=true).
type Spec struct {
	Rate    float64
	IsFixed bool
}

// TypeRates são as taxas configuradas para um tipo de aposta dentro de uma
// categoria. Ponteiros distinguem "não configurado" de zero.
type TypeRates struct {
	Commission *float64           `json:"commission,omitempty"`
	Payout     *float64           `json:"payout,omitempty"`
	IsFixed    bool               `json:"is_fixed,omitempty"`
	SetPrice   float64            `json:"set_price,omitempty"`
	Prizes     map[string]float64 `json:"prizes,omitempty"`
}

// Settings é o snapshot categoria → chave de tipo → taxas, fornecido pela
// camada de persistência externa. Somente leitura para o núcleo.
type Settings map[string]map[string]TypeRates

// settingsKey mapeia o tipo de aposta para a chave usada no snapshot.
// lao/hanoi renomeiam alguns tipos historicamente.
func settingsKey(category, betType string) string {
	if category == "lao" || category == "hanoi" {
		switch betType {
		case "3_top":
			return "3_straight"
		case "3_tod":
			return "3_tod_single"
		case "4_top":
			return "4_set"
		}
	}
	return betType
}

func lookup(category, betType string, s Settings) (TypeRates, bool) {
	byType, ok := s[category]
	if !ok {
		return TypeRates{}, false
	}
	tr, ok := byType[settingsKey(category, betType)]
	return tr, ok
}

func isSetBased(betType string) bool { return betType == "4_set" }

// ResolveCommission resolve a comissão seguindo a precedência:
// override do snapshot > fallback por conjunto (lao/hanoi) > tabela padrão.
func ResolveCommission(category, betType string, s Settings) (Spec, error) {
	if tr, ok := lookup(category, betType, s); ok && tr.Commission != nil {
		return Spec{Rate: *tr.Commission, IsFixed: tr.IsFixed}, nil
	}
	if (category == "lao" || category == "hanoi") && isSetBased(betType) {
		return Spec{Rate: defaultSetCommission, IsFixed: true}, nil
	}
	if r, ok := defaultCommission[betType]; ok {
		return Spec{Rate: r}, nil
	}
	return Spec{}, fmt.Errorf("%w: commission for %s/%s", bet.ErrUnresolvableRate, category, betType)
}

// ResolvePayout resolve o multiplicador de prêmio com a mesma precedência.
func ResolvePayout(category, betType string, s Settings) (Spec, error) {
	if tr, ok := lookup(category, betType, s); ok && tr.Payout != nil {
		return Spec{Rate: *tr.Payout, IsFixed: tr.IsFixed}, nil
	}
	if r, ok := defaultPayout[betType]; ok {
		return Spec{Rate: r}, nil
	}
	return Spec{}, fmt.Errorf("%w: payout for %s/%s", bet.ErrUnresolvableRate, category, betType)
}

// CommissionAmount calcula a comissão de uma aposta no momento da compilação.
// Apostas de conjunto pagam sempre por unidade (setCount * taxa),
// independentemente do flag fixo/percentual genérico.
func CommissionAmount(spec Spec, kind bet.Kind, amount float64, setCount int) float64 {
	if kind == bet.KindSetBased {
		return float64(setCount) * spec.Rate
	}
	if spec.IsFixed {
		return spec.Rate
	}
	return amount * spec.Rate / 100
}

// SetPrice resolve o preço de um conjunto: snapshot > rodada > padrão.
func SetPrice(category string, s Settings, round bet.RoundContext) float64 {
	if tr, ok := lookup(category, "4_set", s); ok && tr.SetPrice > 0 {
		return tr.SetPrice
	}
	if p, ok := round.SetPrices[category]; ok && p > 0 {
		return p
	}
	return DefaultSetPrice
}

// SetPrize resolve o valor do prêmio da faixa para apostas de conjunto.
func SetPrize(category, tier string, s Settings) float64 {
	if tr, ok := lookup(category, "4_set", s); ok {
		if v, ok := tr.Prizes[tier]; ok {
			return v
		}
	}
	return defaultSetPrizes[tier]
}
