// Package amount interpreta expressões de valor no formato "N" ou "N*M".
package amount

import (
	"strconv"
	"strings"
)

// Parsed é o resultado de uma expressão de valor: as partes na ordem digitada
// e o total somado.
type Parsed struct {
	Parts []float64
	Total float64
}

// Parse divide a expressão em "*", interpretando cada segmento como número
// não negativo. Segmento vazio ou inválido vale 0; nunca falha.
// Um número sem "*" produz uma única parte.
func Parse(expr string) Parsed {
	segs := strings.Split(strings.TrimSpace(expr), "*")
	p := Parsed{Parts: make([]float64, 0, len(segs))}
	for _, seg := range segs {
		v, err := strconv.ParseFloat(strings.TrimSpace(seg), 64)
		if err != nil || v < 0 {
			v = 0
		}
		p.Parts = append(p.Parts, v)
		p.Total += v
	}
	return p
}
