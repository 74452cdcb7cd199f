package rates

import (
	"errors"
	"testing"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
)

func f(v float64) *float64 { return &v }

func TestResolveCommission_Defaults(t *testing.T) {
	spec, err := ResolveCommission("thai", "3_top", Settings{})
	if err != nil {
		t.Fatal(err)
	}
	// valor canônico corrigido: 15, nunca o antigo 30 bugado
	if spec.Rate != 15 || spec.IsFixed {
		t.Errorf("3_top default = %+v, want {15 false}", spec)
	}
}

func TestResolveCommission_Override(t *testing.T) {
	s := Settings{"thai": {"2_top": {Commission: f(20)}}}
	spec, err := ResolveCommission("thai", "2_top", s)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Rate != 20 {
		t.Errorf("override ignored: %+v", spec)
	}

	// override de outra categoria não vaza
	spec, _ = ResolveCommission("lao", "2_top", s)
	if spec.Rate != 15 {
		t.Errorf("lao must fall back to default, got %+v", spec)
	}
}

func TestResolveCommission_LaoRenaming(t *testing.T) {
	// em lao o snapshot usa a chave histórica "3_straight" para 3_top
	s := Settings{"lao": {"3_straight": {Commission: f(12)}}}
	spec, err := ResolveCommission("lao", "3_top", s)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Rate != 12 {
		t.Errorf("renamed key not applied: %+v", spec)
	}

	// em thai a mesma chave não se aplica
	spec, _ = ResolveCommission("thai", "3_top", s)
	if spec.Rate != 15 {
		t.Errorf("thai must ignore lao key, got %+v", spec)
	}
}

func TestResolveCommission_SetFallback(t *testing.T) {
	spec, err := ResolveCommission("lao", "4_set", Settings{})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Rate != 25 || !spec.IsFixed {
		t.Errorf("set fallback = %+v, want {25 true}", spec)
	}
}

func TestResolveCommission_Unresolvable(t *testing.T) {
	if _, err := ResolveCommission("thai", "no_such_type", Settings{}); !errors.Is(err, bet.ErrUnresolvableRate) {
		t.Errorf("expected ErrUnresolvableRate, got %v", err)
	}
}

func TestResolvePayout(t *testing.T) {
	spec, err := ResolvePayout("thai", "3_top", Settings{})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Rate != 550 {
		t.Errorf("3_top payout = %v, want 550", spec.Rate)
	}

	s := Settings{"hanoi": {"3_tod_single": {Payout: f(100)}}}
	spec, _ = ResolvePayout("hanoi", "3_tod", s)
	if spec.Rate != 100 {
		t.Errorf("hanoi renamed payout override ignored: %+v", spec)
	}
}

func TestCommissionAmount(t *testing.T) {
	// percentual: amount * rate / 100
	if got := CommissionAmount(Spec{Rate: 15}, bet.KindSimple, 200, 0); got != 30 {
		t.Errorf("percentage commission = %v, want 30", got)
	}
	// fixo: a própria taxa
	if got := CommissionAmount(Spec{Rate: 10, IsFixed: true}, bet.KindSimple, 200, 0); got != 10 {
		t.Errorf("fixed commission = %v, want 10", got)
	}
	// conjunto: sempre por unidade, mesmo sem IsFixed
	if got := CommissionAmount(Spec{Rate: 25}, bet.KindSetBased, 360, 3); got != 75 {
		t.Errorf("set commission = %v, want 75", got)
	}
}

func TestSetPrice(t *testing.T) {
	round := bet.RoundContext{Category: "lao", SetPrices: map[string]float64{"lao": 100}}

	// snapshot vence a rodada
	s := Settings{"lao": {"4_set": {SetPrice: 150}}}
	if got := SetPrice("lao", s, round); got != 150 {
		t.Errorf("settings set price = %v, want 150", got)
	}
	// rodada vence o padrão
	if got := SetPrice("lao", Settings{}, round); got != 100 {
		t.Errorf("round set price = %v, want 100", got)
	}
	// padrão
	if got := SetPrice("lao", Settings{}, bet.RoundContext{}); got != DefaultSetPrice {
		t.Errorf("default set price = %v, want %v", got, DefaultSetPrice)
	}
}

func TestSetPrize(t *testing.T) {
	s := Settings{"lao": {"4_set": {Prizes: map[string]float64{"first": 90000}}}}
	if got := SetPrize("lao", "first", s); got != 90000 {
		t.Errorf("prize override = %v, want 90000", got)
	}
	if got := SetPrize("lao", "first", Settings{}); got != 120000 {
		t.Errorf("default first prize = %v, want 120000", got)
	}
}
