// Package compiler transforma uma entrada crua (números, expressão de valor,
// tipo de aposta) em uma ou mais apostas canônicas individualmente
// precificadas, todas compartilhando o mesmo entryId.
package compiler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/amount"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/catalog"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/numex"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/rates"
)

// Token anexado à linha de exibição de apostas de conjunto multiplicadas;
// o formatador de relatórios o reconhece como classificação "koon_chud".
const MultipliedSetToken = "คูณชุด"

// Compile compila uma entrada crua em apostas canônicas. Em caso de falha de
// validação nenhuma aposta é emitida. O CreatedAt é o mesmo para todo o
// grupo; o repositório aplica offsets de 1ms por item ao persistir o lote.
func Compile(in bet.RawEntry, s rates.Settings, round bet.RoundContext) ([]bet.CanonicalWager, error) {
	numbers := strings.TrimSpace(in.Numbers)
	if numbers == "" {
		return nil, fmt.Errorf("%w: empty numbers", bet.ErrInvalidInput)
	}

	def, err := catalog.Lookup(in.BetType)
	if err != nil {
		return nil, err
	}
	if !catalog.AvailableIn(def, round.Category) {
		return nil, fmt.Errorf("%w: %s not available in category %s", bet.ErrUnknownBetType, def.ID, round.Category)
	}
	if err := validateNumbers(numbers, def); err != nil {
		return nil, err
	}

	parsed := amount.Parse(in.AmountExpr)

	c := &compilation{
		in:      in,
		def:     def,
		numbers: numbers,
		parsed:  parsed,
		s:       s,
		round:   round,
		entryID: uuid.NewString(),
		now:     time.Now(),
	}

	switch def.Kind {
	case bet.KindSimple:
		return c.simple()
	case bet.KindReversedPair:
		return c.reversedPair()
	case bet.KindStraightTod:
		return c.straightTod()
	case bet.KindStraightPerm:
		return c.straightPerm()
	case bet.KindPermFromSelf:
		return c.permFromSelf()
	case bet.KindPermFromLarger:
		return c.permFromLarger()
	case bet.KindSetBased:
		return c.setBased()
	case bet.KindFloat:
		return c.float()
	}
	return nil, fmt.Errorf("%w: kind of %s", bet.ErrUnknownBetType, def.ID)
}

func validateNumbers(numbers string, def bet.TypeDef) error {
	for _, r := range numbers {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", bet.ErrInvalidInput, numbers)
		}
	}
	if len(numbers) != def.DigitCount {
		return fmt.Errorf("%w: %s expects %d digits, got %d", bet.ErrDigitCountMismatch, def.ID, def.DigitCount, len(numbers))
	}
	return nil
}

type compilation struct {
	in      bet.RawEntry
	def     bet.TypeDef
	numbers string
	parsed  amount.Parsed
	s       rates.Settings
	round   bet.RoundContext
	entryID string
	now     time.Time
}

// newWager monta uma aposta do grupo, resolvendo e congelando a comissão no
// ato (nunca recalculada depois).
func (c *compilation) newWager(betType, canonical string, amt float64, setCount int, displayAmount, displayBetType string) (bet.CanonicalWager, error) {
	spec, err := rates.ResolveCommission(c.round.Category, betType, c.s)
	if err != nil {
		return bet.CanonicalWager{}, err
	}
	return bet.CanonicalWager{
		EntryID:           c.entryID,
		Category:          c.round.Category,
		BetType:           betType,
		Numbers:           canonical,
		Amount:            amt,
		CommissionRate:    spec.Rate,
		CommissionAmount:  rates.CommissionAmount(spec, c.def.Kind, amt, setCount),
		IsFixedCommission: spec.IsFixed,
		DisplayNumbers:    c.numbers,
		DisplayAmount:     displayAmount,
		DisplayBetType:    displayBetType,
		CreatedAt:         c.now,
	}, nil
}

// twoParts devolve (parte1, parte2): com exatamente duas partes usa cada uma;
// com uma só, ambas recebem o total.
func (c *compilation) twoParts() (float64, float64) {
	if len(c.parsed.Parts) == 2 {
		return c.parsed.Parts[0], c.parsed.Parts[1]
	}
	return c.parsed.Total, c.parsed.Total
}

func (c *compilation) displayAmount() string {
	return strings.TrimSpace(c.in.AmountExpr)
}

func (c *compilation) simple() ([]bet.CanonicalWager, error) {
	if c.parsed.Total <= 0 {
		return nil, bet.ErrZeroOrNegativeAmount
	}
	canonical := c.numbers
	if c.def.ID == "3_tod" {
		canonical = numex.SortDigits(c.numbers)
	}
	w, err := c.newWager(c.def.ID, canonical, c.parsed.Total, 0, c.displayAmount(), c.def.Label)
	if err != nil {
		return nil, err
	}
	return []bet.CanonicalWager{w}, nil
}

func (c *compilation) reversedPair() ([]bet.CanonicalWager, error) {
	rev, err := numex.Reverse2(c.numbers)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(c.def.ID, "_rev")

	// palíndromo: a aposta invertida seria idêntica, então os valores são
	// somados em uma única aposta
	if rev == c.numbers {
		if c.parsed.Total <= 0 {
			return nil, bet.ErrZeroOrNegativeAmount
		}
		w, err := c.newWager(base, c.numbers, c.parsed.Total, 0, c.displayAmount(), c.def.Label)
		if err != nil {
			return nil, err
		}
		return []bet.CanonicalWager{w}, nil
	}

	a1, a2 := c.twoParts()
	if a1 <= 0 && a2 <= 0 {
		return nil, bet.ErrZeroOrNegativeAmount
	}
	var out []bet.CanonicalWager
	if a1 > 0 {
		w, err := c.newWager(base, c.numbers, a1, 0, c.displayAmount(), c.def.Label)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if a2 > 0 {
		w, err := c.newWager(base, rev, a2, 0, c.displayAmount(), c.def.Label)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (c *compilation) straightTod() ([]bet.CanonicalWager, error) {
	a1, a2 := c.twoParts()
	if a1 <= 0 && a2 <= 0 {
		return nil, bet.ErrZeroOrNegativeAmount
	}
	var out []bet.CanonicalWager
	if a1 > 0 {
		w, err := c.newWager("3_top", c.numbers, a1, 0, c.displayAmount(), c.def.Label)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if a2 > 0 {
		w, err := c.newWager("3_tod", numex.SortDigits(c.numbers), a2, 0, c.displayAmount(), c.def.Label)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (c *compilation) straightPerm() ([]bet.CanonicalWager, error) {
	a1, a2 := c.twoParts()
	if a1 <= 0 && a2 <= 0 {
		return nil, bet.ErrZeroOrNegativeAmount
	}
	var out []bet.CanonicalWager
	if a1 > 0 {
		w, err := c.newWager("3_top", c.numbers, a1, 0, c.displayAmount(), c.def.Label)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if a2 > 0 {
		perms, err := numex.Permutations(c.numbers)
		if err != nil {
			return nil, err
		}
		for _, p := range perms {
			if p == c.numbers {
				continue
			}
			w, err := c.newWager("3_top", p, a2, 0, c.displayAmount(), c.def.Label)
			if err != nil {
				return nil, err
			}
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, bet.ErrZeroOrNegativeAmount
	}
	return out, nil
}

func (c *compilation) permWagers(perms []string) ([]bet.CanonicalWager, error) {
	if c.parsed.Total <= 0 {
		return nil, bet.ErrZeroOrNegativeAmount
	}
	// o rótulo exibe a contagem de linhas geradas, ex: "3 X 6"
	label := fmt.Sprintf("3 X %d", len(perms))
	out := make([]bet.CanonicalWager, 0, len(perms))
	for _, p := range perms {
		w, err := c.newWager("3_top", p, c.parsed.Total, 0, c.displayAmount(), label)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (c *compilation) permFromSelf() ([]bet.CanonicalWager, error) {
	perms, err := numex.Permutations(c.numbers)
	if err != nil {
		return nil, err
	}
	return c.permWagers(perms)
}

func (c *compilation) permFromLarger() ([]bet.CanonicalWager, error) {
	perms, err := numex.ThreeDigitSubsets(c.numbers)
	if err != nil {
		return nil, err
	}
	return c.permWagers(perms)
}

func (c *compilation) setBased() ([]bet.CanonicalWager, error) {
	// o "valor" digitado é reinterpretado como contagem inteira de conjuntos
	setCount := 1
	display := "1"
	if c.displayAmount() != "" {
		setCount = int(c.parsed.Total)
		display = c.displayAmount()
	}
	if setCount < 1 {
		return nil, bet.ErrZeroOrNegativeAmount
	}
	if setCount > 1 {
		display += MultipliedSetToken
	}
	price := rates.SetPrice(c.round.Category, c.s, c.round)
	w, err := c.newWager(c.def.ID, c.numbers, float64(setCount)*price, setCount, display, c.def.Label)
	if err != nil {
		return nil, err
	}
	return []bet.CanonicalWager{w}, nil
}

func (c *compilation) float() ([]bet.CanonicalWager, error) {
	if c.parsed.Total <= 0 {
		return nil, bet.ErrZeroOrNegativeAmount
	}
	w, err := c.newWager(c.def.ID, numex.SortDigits(c.numbers), c.parsed.Total, 0, c.displayAmount(), c.def.Label)
	if err != nil {
		return nil, err
	}
	return []bet.CanonicalWager{w}, nil
}
