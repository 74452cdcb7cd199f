package bet

import "time"

// Kind classifica como um tipo de aposta expande em apostas canônicas.
// Enum fechado: o compilador faz dispatch exaustivo sobre esses valores.
type Kind int

const (
	KindSimple Kind = iota
	KindReversedPair
	KindPermFromSelf
	KindPermFromLarger
	KindStraightTod
	KindStraightPerm
	KindSetBased
	KindFloat
)

// TypeDef descreve um tipo de aposta do catálogo. Imutável, carregado uma vez.
type TypeDef struct {
	ID         string
	Label      string // rótulo em tailandês exibido ao usuário
	DigitCount int
	Kind       Kind
	Categories []string // vazio = todas as categorias; ex: 4_set só lao/hanoi
}

// RawEntry é uma linha de entrada crua vinda da UI, consumida uma única vez.
type RawEntry struct {
	Numbers    string // ex: "123"
	AmountExpr string // ex: "100" ou "100*50"
	BetType    string // id do catálogo, ex: "3_top"
}

// RoundContext é o contexto da rodada fornecido pela camada externa.
type RoundContext struct {
	Category       string // "thai" | "lao" | "hanoi"
	SetPrices      map[string]float64
	CurrencySymbol string
}

// CanonicalWager é uma aposta canônica individualmente precificada.
// CommissionAmount é calculado uma única vez na compilação e nunca
// recalculado: é fato histórico, imutável mesmo que a tabela de taxas mude.
type CanonicalWager struct {
	ID                string
	EntryID           string // compartilhado por todas as apostas da mesma entrada
	BillID            string
	Category          string
	BetType           string
	Numbers           string // forma canônica usada na liquidação (ordenada p/ tod e float)
	Amount            float64
	CommissionRate    float64
	CommissionAmount  float64
	IsFixedCommission bool
	DisplayNumbers    string // preserva a digitação original do usuário
	DisplayAmount     string
	DisplayBetType    string
	CreatedAt         time.Time
	IsDeleted         bool
	IsWinner          bool
	PrizeAmount       float64
}
