package settle

import (
	"testing"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/rates"
	"github.com/radieske/lotto-bet-platform-poc/pkg/contracts/events"
)

var draw = events.DrawResult{
	Category:   "thai",
	TopThree:   "231",
	BottomTwo:  "45",
	FirstPrize: "987231",
}

func w(betType, numbers string, amt float64) bet.CanonicalWager {
	return bet.CanonicalWager{Category: "thai", BetType: betType, Numbers: numbers, Amount: amt}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		name  string
		wager bet.CanonicalWager
		want  bool
	}{
		{"3_top exact", w("3_top", "231", 100), true},
		{"3_top miss", w("3_top", "123", 100), false},
		{"3_tod canonical", w("3_tod", "123", 100), true}, // 231 ordenado = 123
		{"2_top tail of top three", w("2_top", "31", 100), true},
		{"2_top miss", w("2_top", "23", 100), false},
		{"2_bottom", w("2_bottom", "45", 100), true},
		{"run_top digit present", w("run_top", "3", 10), true},
		{"run_top digit absent", w("run_top", "9", 10), false},
		{"run_bottom", w("run_bottom", "5", 10), true},
		{"4_float sub-multiset", w("4_float", "1239", 100), true}, // dígitos de 987231
		{"4_float miss", w("4_float", "1111", 100), false},
		{"5_float", w("5_float", "12389", 100), true},
		{"4_set last four", w("4_set", "7231", 240), true},
		{"4_set miss", w("4_set", "9872", 240), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Match(c.wager, draw); got != c.want {
				t.Errorf("Match(%s %s) = %v, want %v", c.wager.BetType, c.wager.Numbers, got, c.want)
			}
		})
	}
}

func TestPrize_Multiplier(t *testing.T) {
	got, err := Prize(w("3_top", "231", 100), rates.Settings{})
	if err != nil {
		t.Fatal(err)
	}
	// multiplicador direto: 100 x 550
	if got != 55000 {
		t.Errorf("prize = %v, want 55000", got)
	}
}

func TestPrize_PayoutOverride(t *testing.T) {
	p := 70.0
	s := rates.Settings{"thai": {"2_top": {Payout: &p}}}
	got, err := Prize(w("2_top", "31", 50), s)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3500 {
		t.Errorf("prize = %v, want 3500", got)
	}
}

func TestPrize_SetRecoversCountFromDisplay(t *testing.T) {
	wg := bet.CanonicalWager{
		Category:      "lao",
		BetType:       "4_set",
		Numbers:       "7231",
		Amount:        360,          // 3 conjuntos x 120, valor histórico congelado
		DisplayAmount: "3คูณชุด", // única fonte da contagem crua
	}
	got, err := Prize(wg, rates.Settings{})
	if err != nil {
		t.Fatal(err)
	}
	// 3 conjuntos x prêmio padrão da primeira faixa
	if got != 3*120000 {
		t.Errorf("set prize = %v, want 360000", got)
	}
}

func TestPrize_SetBlankDisplayDefaultsToOne(t *testing.T) {
	wg := bet.CanonicalWager{Category: "lao", BetType: "4_set", Numbers: "7231", DisplayAmount: ""}
	got, err := Prize(wg, rates.Settings{})
	if err != nil {
		t.Fatal(err)
	}
	if got != 120000 {
		t.Errorf("set prize = %v, want 120000", got)
	}
}
