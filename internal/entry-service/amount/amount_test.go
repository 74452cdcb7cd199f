package amount

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		expr  string
		parts []float64
		total float64
	}{
		{"100", []float64{100}, 100},
		{"100*50", []float64{100, 50}, 150},
		{"10*20*30", []float64{10, 20, 30}, 60},
		{"abc*50", []float64{0, 50}, 50}, // segmento inválido vale 0
		{"*50", []float64{0, 50}, 50},
		{"100*", []float64{100, 0}, 100},
		{"", []float64{0}, 0},
		{"-5", []float64{0}, 0}, // negativo vale 0
		{" 100 * 50 ", []float64{100, 50}, 150},
		{"2.5", []float64{2.5}, 2.5},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			got := Parse(c.expr)
			if !reflect.DeepEqual(got.Parts, c.parts) {
				t.Errorf("Parse(%q).Parts = %v, want %v", c.expr, got.Parts, c.parts)
			}
			if got.Total != c.total {
				t.Errorf("Parse(%q).Total = %v, want %v", c.expr, got.Total, c.total)
			}
		})
	}
}
