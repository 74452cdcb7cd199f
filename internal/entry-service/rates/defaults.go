package rates

// Tabelas padrão, usadas quando o snapshot de configurações do dealer não
// define a taxa. Valores canônicos corrigidos: a comissão de 3_top é 15%
// (o valor 30% que existiu em versões antigas da tabela era um bug e não
// deve voltar).
var defaultCommission = map[string]float64{
	"run_top":         15,
	"run_bottom":      15,
	"2_top":           15,
	"2_bottom":        15,
	"2_top_rev":       15,
	"2_bottom_rev":    15,
	"3_top":           15,
	"3_tod":           15,
	"3_straight_tod":  15,
	"3_straight_perm": 15,
	"3_perm_from_3":   15,
	"3_perm_from_4":   15,
	"3_perm_from_5":   15,
	"4_float":         15,
	"5_float":         15,
}

// Multiplicadores de prêmio padrão (payout é multiplicador direto, não
// percentual).
var defaultPayout = map[string]float64{
	"run_top":         3,
	"run_bottom":      4,
	"2_top":           65,
	"2_bottom":        65,
	"2_top_rev":       65,
	"2_bottom_rev":    65,
	"3_top":           550,
	"3_tod":           95,
	"3_straight_tod":  550,
	"3_straight_perm": 550,
	"3_perm_from_3":   550,
	"3_perm_from_4":   550,
	"3_perm_from_5":   550,
	"4_float":         20,
	"5_float":         10,
}

const (
	// comissão fixa por conjunto para apostas 4_set em lao/hanoi
	defaultSetCommission = 25
	// preço padrão de um conjunto quando nem settings nem rodada definem
	DefaultSetPrice = 120
)

// Prêmios padrão por faixa para apostas de conjunto.
var defaultSetPrizes = map[string]float64{
	"first":  120000,
	"second": 12000,
	"third":  1200,
}
