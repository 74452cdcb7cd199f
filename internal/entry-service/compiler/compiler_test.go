package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/rates"
)

var thai = bet.RoundContext{Category: "thai"}
var lao = bet.RoundContext{Category: "lao"}

func compile(t *testing.T, numbers, amountExpr, betType string, s rates.Settings, round bet.RoundContext) []bet.CanonicalWager {
	t.Helper()
	ws, err := Compile(bet.RawEntry{Numbers: numbers, AmountExpr: amountExpr, BetType: betType}, s, round)
	if err != nil {
		t.Fatalf("Compile(%s/%s/%s): %v", numbers, amountExpr, betType, err)
	}
	return ws
}

func sameEntryID(t *testing.T, ws []bet.CanonicalWager) {
	t.Helper()
	for _, w := range ws {
		if w.EntryID == "" || w.EntryID != ws[0].EntryID {
			t.Fatalf("wagers do not share one entryId: %+v", ws)
		}
	}
}

func TestCompile_Simple(t *testing.T) {
	ws := compile(t, "45", "100", "2_top", rates.Settings{}, thai)
	if len(ws) != 1 {
		t.Fatalf("expected 1 wager, got %d", len(ws))
	}
	w := ws[0]
	if w.BetType != "2_top" || w.Numbers != "45" || w.Amount != 100 {
		t.Errorf("unexpected wager: %+v", w)
	}
	if w.CommissionRate != 15 || w.CommissionAmount != 15 {
		t.Errorf("commission: rate=%v amount=%v, want 15/15", w.CommissionRate, w.CommissionAmount)
	}
}

func TestCompile_TodCanonicalizes(t *testing.T) {
	ws := compile(t, "231", "50", "3_tod", rates.Settings{}, thai)
	if ws[0].Numbers != "123" {
		t.Errorf("3_tod numbers = %q, want digit-sorted 123", ws[0].Numbers)
	}
	if ws[0].DisplayNumbers != "231" {
		t.Errorf("displayNumbers = %q, must preserve typed order", ws[0].DisplayNumbers)
	}
}

func TestCompile_ReversedPair(t *testing.T) {
	ws := compile(t, "12", "100*50", "2_top_rev", rates.Settings{}, thai)
	if len(ws) != 2 {
		t.Fatalf("expected 2 wagers, got %d", len(ws))
	}
	sameEntryID(t, ws)
	if ws[0].Numbers != "12" || ws[0].Amount != 100 {
		t.Errorf("wager 1 = %s@%v, want 12@100", ws[0].Numbers, ws[0].Amount)
	}
	if ws[1].Numbers != "21" || ws[1].Amount != 50 {
		t.Errorf("wager 2 = %s@%v, want 21@50", ws[1].Numbers, ws[1].Amount)
	}
	// a aposta invertida persiste o tipo base
	if ws[1].BetType != "2_top" {
		t.Errorf("reversed wager betType = %q, want 2_top", ws[1].BetType)
	}
}

func TestCompile_ReversedPair_SinglePart(t *testing.T) {
	ws := compile(t, "12", "100", "2_top_rev", rates.Settings{}, thai)
	if len(ws) != 2 {
		t.Fatalf("expected 2 wagers, got %d", len(ws))
	}
	// com uma parte só, ambas recebem o total
	if ws[0].Amount != 100 || ws[1].Amount != 100 {
		t.Errorf("amounts = %v/%v, want 100/100", ws[0].Amount, ws[1].Amount)
	}
}

func TestCompile_ReversedPair_PalindromeFolds(t *testing.T) {
	ws := compile(t, "11", "100*50", "2_top_rev", rates.Settings{}, thai)
	if len(ws) != 1 {
		t.Fatalf("palindrome must fold into 1 wager, got %d", len(ws))
	}
	if ws[0].Numbers != "11" || ws[0].Amount != 150 {
		t.Errorf("folded wager = %s@%v, want 11@150", ws[0].Numbers, ws[0].Amount)
	}
}

func TestCompile_PermFromSelf(t *testing.T) {
	ws := compile(t, "123", "10", "3_perm_from_3", rates.Settings{}, thai)
	if len(ws) != 6 {
		t.Fatalf("expected 6 wagers (3!), got %d", len(ws))
	}
	sameEntryID(t, ws)
	for _, w := range ws {
		if w.BetType != "3_top" {
			t.Errorf("perm wager betType = %q, want 3_top", w.BetType)
		}
		if w.Amount != 10 {
			t.Errorf("perm wager amount = %v, want 10", w.Amount)
		}
		if w.DisplayBetType != "3 X 6" {
			t.Errorf("displayBetType = %q, want 3 X 6", w.DisplayBetType)
		}
	}
}

func TestCompile_PermFromLarger(t *testing.T) {
	ws := compile(t, "1234", "5", "3_perm_from_4", rates.Settings{}, thai)
	if len(ws) != 24 {
		t.Fatalf("expected 24 wagers, got %d", len(ws))
	}
	if ws[0].DisplayBetType != "3 X 24" {
		t.Errorf("displayBetType = %q, want 3 X 24", ws[0].DisplayBetType)
	}
}

func TestCompile_StraightTod(t *testing.T) {
	ws := compile(t, "231", "100", "3_straight_tod", rates.Settings{}, thai)
	if len(ws) != 2 {
		t.Fatalf("expected 2 wagers, got %d", len(ws))
	}
	if ws[0].BetType != "3_top" || ws[0].Numbers != "231" || ws[0].Amount != 100 {
		t.Errorf("top wager = %+v", ws[0])
	}
	if ws[1].BetType != "3_tod" || ws[1].Numbers != "123" || ws[1].Amount != 100 {
		t.Errorf("tod wager = %+v", ws[1])
	}
}

func TestCompile_StraightTod_ZeroPartOmitted(t *testing.T) {
	ws := compile(t, "231", "100*0", "3_straight_tod", rates.Settings{}, thai)
	if len(ws) != 1 || ws[0].BetType != "3_top" {
		t.Fatalf("expected only the 3_top wager, got %+v", ws)
	}
}

func TestCompile_StraightPerm(t *testing.T) {
	ws := compile(t, "123", "100*10", "3_straight_perm", rates.Settings{}, thai)
	// 1 aposta no número original + 5 permutações restantes
	if len(ws) != 6 {
		t.Fatalf("expected 6 wagers, got %d", len(ws))
	}
	if ws[0].Numbers != "123" || ws[0].Amount != 100 {
		t.Errorf("original wager = %s@%v, want 123@100", ws[0].Numbers, ws[0].Amount)
	}
	for _, w := range ws[1:] {
		if w.Numbers == "123" {
			t.Error("original number must not repeat among permutations")
		}
		if w.Amount != 10 {
			t.Errorf("perm amount = %v, want 10", w.Amount)
		}
	}
}

func TestCompile_SetBased(t *testing.T) {
	ws := compile(t, "1234", "3", "4_set", rates.Settings{}, lao)
	if len(ws) != 1 {
		t.Fatalf("expected 1 wager, got %d", len(ws))
	}
	w := ws[0]
	// amount é moeda: 3 conjuntos x preço padrão 120
	if w.Amount != 360 {
		t.Errorf("amount = %v, want 360", w.Amount)
	}
	// comissão por conjunto: 3 x 25
	if w.CommissionAmount != 75 {
		t.Errorf("commission = %v, want 75", w.CommissionAmount)
	}
	// contagem crua recuperável só pelo displayAmount
	if !strings.HasPrefix(w.DisplayAmount, "3") {
		t.Errorf("displayAmount = %q, must start with raw set count", w.DisplayAmount)
	}
	if !strings.HasSuffix(w.DisplayAmount, MultipliedSetToken) {
		t.Errorf("displayAmount = %q, must carry the multiplied-set token", w.DisplayAmount)
	}
}

func TestCompile_SetBased_BlankCountDefaultsToOne(t *testing.T) {
	ws := compile(t, "1234", "", "4_set", rates.Settings{}, lao)
	if ws[0].Amount != 120 || ws[0].DisplayAmount != "1" {
		t.Errorf("blank count: amount=%v display=%q, want 120/1", ws[0].Amount, ws[0].DisplayAmount)
	}
}

func TestCompile_SetBased_NotInThai(t *testing.T) {
	_, err := Compile(bet.RawEntry{Numbers: "1234", AmountExpr: "1", BetType: "4_set"}, rates.Settings{}, thai)
	if !errors.Is(err, bet.ErrUnknownBetType) {
		t.Errorf("expected ErrUnknownBetType for 4_set in thai, got %v", err)
	}
}

func TestCompile_Float(t *testing.T) {
	ws := compile(t, "4213", "100", "4_float", rates.Settings{}, thai)
	if ws[0].Numbers != "1234" {
		t.Errorf("float numbers = %q, want digit-sorted 1234", ws[0].Numbers)
	}
	if ws[0].DisplayNumbers != "4213" {
		t.Errorf("displayNumbers = %q, must preserve typed order", ws[0].DisplayNumbers)
	}
}

func TestCompile_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		entry   bet.RawEntry
		wantErr error
	}{
		{"empty numbers", bet.RawEntry{Numbers: "", AmountExpr: "100", BetType: "3_top"}, bet.ErrInvalidInput},
		{"non digit", bet.RawEntry{Numbers: "12a", AmountExpr: "100", BetType: "3_top"}, bet.ErrInvalidInput},
		{"wrong digit count", bet.RawEntry{Numbers: "12", AmountExpr: "100", BetType: "3_top"}, bet.ErrDigitCountMismatch},
		{"zero amount", bet.RawEntry{Numbers: "123", AmountExpr: "0", BetType: "3_top"}, bet.ErrZeroOrNegativeAmount},
		{"garbage amount", bet.RawEntry{Numbers: "123", AmountExpr: "x", BetType: "3_top"}, bet.ErrZeroOrNegativeAmount},
		{"unknown type", bet.RawEntry{Numbers: "123", AmountExpr: "100", BetType: "7_up"}, bet.ErrUnknownBetType},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ws, err := Compile(c.entry, rates.Settings{}, thai)
			if !errors.Is(err, c.wantErr) {
				t.Errorf("expected %v, got %v", c.wantErr, err)
			}
			// nenhuma aposta parcial em caso de falha
			if len(ws) != 0 {
				t.Errorf("rejected entry emitted %d wagers", len(ws))
			}
		})
	}
}

// A comissão é congelada na compilação: mutar o snapshot depois não pode
// alterar valores já calculados.
func TestCompile_CommissionImmutable(t *testing.T) {
	c := 10.0
	s := rates.Settings{"thai": {"2_top": {Commission: &c}}}
	ws := compile(t, "45", "200", "2_top", s, thai)
	if ws[0].CommissionAmount != 20 {
		t.Fatalf("commission = %v, want 20", ws[0].CommissionAmount)
	}

	c = 99
	s["thai"]["2_top"] = rates.TypeRates{Commission: &c}

	if ws[0].CommissionAmount != 20 || ws[0].CommissionRate != 10 {
		t.Errorf("compiled commission changed after settings mutation: %+v", ws[0])
	}
}
