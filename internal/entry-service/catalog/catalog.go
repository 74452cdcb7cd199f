package catalog

import (
	"fmt"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
)

// Registro estático dos tipos de aposta. Sem efeitos colaterais; a ordem do
// slice é a ordem de exibição usada pelos relatórios.
var defs = []bet.TypeDef{
	{ID: "run_top", Label: "วิ่งบน", DigitCount: 1, Kind: bet.KindSimple},
	{ID: "run_bottom", Label: "วิ่งล่าง", DigitCount: 1, Kind: bet.KindSimple},
	{ID: "2_top", Label: "2 ตัวบน", DigitCount: 2, Kind: bet.KindSimple},
	{ID: "2_bottom", Label: "2 ตัวล่าง", DigitCount: 2, Kind: bet.KindSimple},
	{ID: "2_top_rev", Label: "2 ตัวบนกลับ", DigitCount: 2, Kind: bet.KindReversedPair},
	{ID: "2_bottom_rev", Label: "2 ตัวล่างกลับ", DigitCount: 2, Kind: bet.KindReversedPair},
	{ID: "3_top", Label: "3 ตัวบน", DigitCount: 3, Kind: bet.KindSimple},
	{ID: "3_tod", Label: "3 ตัวโต๊ด", DigitCount: 3, Kind: bet.KindSimple},
	{ID: "3_straight_tod", Label: "เต็งโต๊ด", DigitCount: 3, Kind: bet.KindStraightTod},
	{ID: "3_straight_perm", Label: "เต็งกลับ", DigitCount: 3, Kind: bet.KindStraightPerm},
	{ID: "3_perm_from_3", Label: "3 กลับ", DigitCount: 3, Kind: bet.KindPermFromSelf},
	{ID: "3_perm_from_4", Label: "3 X 4", DigitCount: 4, Kind: bet.KindPermFromLarger},
	{ID: "3_perm_from_5", Label: "3 X 5", DigitCount: 5, Kind: bet.KindPermFromLarger},
	{ID: "4_float", Label: "4 ตัวลอย", DigitCount: 4, Kind: bet.KindFloat},
	{ID: "5_float", Label: "5 ตัวลอย", DigitCount: 5, Kind: bet.KindFloat},
	{ID: "4_set", Label: "4 ตัวชุด", DigitCount: 4, Kind: bet.KindSetBased, Categories: []string{"lao", "hanoi"}},
}

var byID = func() map[string]bet.TypeDef {
	m := make(map[string]bet.TypeDef, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return m
}()

// Lookup retorna a definição do tipo de aposta ou ErrUnknownBetType.
func Lookup(id string) (bet.TypeDef, error) {
	d, ok := byID[id]
	if !ok {
		return bet.TypeDef{}, fmt.Errorf("%w: %q", bet.ErrUnknownBetType, id)
	}
	return d, nil
}

// AvailableIn informa se o tipo pode ser apostado na categoria da rodada.
func AvailableIn(d bet.TypeDef, category string) bool {
	if len(d.Categories) == 0 {
		return true
	}
	for _, c := range d.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// All retorna as definições na ordem de exibição do catálogo.
func All() []bet.TypeDef {
	out := make([]bet.TypeDef, len(defs))
	copy(out, defs)
	return out
}
