// Package settle contém a lógica pura de liquidação: casar apostas
// canônicas com um resultado de sorteio e calcular o prêmio esperado.
// Nenhum valor histórico da aposta é recalculado aqui.
package settle

import (
	"strings"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/amount"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/numex"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/rates"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/report"
	"github.com/radieske/lotto-bet-platform-poc/pkg/contracts/events"
)

// Match verifica se a aposta ganhou no sorteio. O casamento usa a forma
// canônica de `numbers` (ordenada para tod e float).
func Match(w bet.CanonicalWager, d events.DrawResult) bool {
	switch w.BetType {
	case "3_top":
		return w.Numbers == d.TopThree
	case "3_tod":
		return w.Numbers == numex.SortDigits(d.TopThree)
	case "2_top":
		return len(d.TopThree) == 3 && w.Numbers == d.TopThree[1:]
	case "2_bottom":
		return w.Numbers == d.BottomTwo
	case "run_top":
		return strings.Contains(d.TopThree, w.Numbers)
	case "run_bottom":
		return strings.Contains(d.BottomTwo, w.Numbers)
	case "4_float":
		return floatMatch(w.Numbers, d.FirstPrize)
	case "5_float":
		return floatMatch(w.Numbers, d.FirstPrize)
	case "4_set":
		return len(d.FirstPrize) >= 4 && w.Numbers == d.FirstPrize[len(d.FirstPrize)-4:]
	}
	return false
}

// floatMatch verifica se os dígitos da aposta (já ordenados) formam um
// sub-multiconjunto dos dígitos do prêmio.
func floatMatch(canonical, prize string) bool {
	if prize == "" {
		return false
	}
	var counts [10]int
	for _, r := range prize {
		if r >= '0' && r <= '9' {
			counts[r-'0']++
		}
	}
	for _, r := range canonical {
		if r < '0' || r > '9' {
			return false
		}
		counts[r-'0']--
		if counts[r-'0'] < 0 {
			return false
		}
	}
	return true
}

// Prize calcula o prêmio esperado de uma aposta vencedora. Apostas de
// conjunto pagam por unidade na faixa do primeiro prêmio; a contagem de
// conjuntos é recuperada do displayAmount, único lugar onde ela sobrevive.
func Prize(w bet.CanonicalWager, s rates.Settings) (float64, error) {
	if w.BetType == "4_set" {
		// displayAmount pode carregar o token de conjunto multiplicado
		setCount := int(amount.Parse(report.StripSuffix(w.DisplayAmount)).Total)
		if setCount < 1 {
			setCount = 1
		}
		return float64(setCount) * rates.SetPrize(w.Category, "first", s), nil
	}
	spec, err := rates.ResolvePayout(w.Category, w.BetType, s)
	if err != nil {
		return 0, err
	}
	if spec.IsFixed {
		return spec.Rate, nil
	}
	return w.Amount * spec.Rate, nil
}
