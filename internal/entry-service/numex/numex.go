// Package numex implementa as funções combinatórias puras do compilador:
// permutações de strings de dígitos, sub-permutações de 3 dígitos extraídas
// de entradas maiores e reversão de pares.
package numex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
)

func validateDigits(s string, wantLen int) error {
	if len(s) != wantLen {
		return fmt.Errorf("%w: %q must have %d digits", bet.ErrInvalidInput, s, wantLen)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q is not a digit string", bet.ErrInvalidInput, s)
		}
	}
	return nil
}

// Permutations retorna todas as ordenações distintas dos caracteres de s,
// em ordem lexicográfica (dígitos repetidos são deduplicados).
func Permutations(s string) ([]string, error) {
	if err := validateDigits(s, len(s)); err != nil {
		return nil, err
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty digit string", bet.ErrInvalidInput)
	}
	seen := map[string]struct{}{}
	var out []string
	chars := []byte(s)
	var rec func(prefix []byte, rest []byte)
	rec = func(prefix []byte, rest []byte) {
		if len(rest) == 0 {
			p := string(prefix)
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				out = append(out, p)
			}
			return
		}
		for i := range rest {
			next := make([]byte, 0, len(rest)-1)
			next = append(next, rest[:i]...)
			next = append(next, rest[i+1:]...)
			rec(append(prefix, rest[i]), next)
		}
	}
	rec(make([]byte, 0, len(chars)), chars)
	sort.Strings(out)
	return out, nil
}

// ThreeDigitSubsets retorna todas as permutações distintas de 3 dígitos
// obtidas descartando dígitos de uma entrada de 4 ou 5 dígitos.
func ThreeDigitSubsets(s string) ([]string, error) {
	if len(s) != 4 && len(s) != 5 {
		return nil, fmt.Errorf("%w: %q must have 4 or 5 digits", bet.ErrInvalidInput, s)
	}
	if err := validateDigits(s, len(s)); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var out []string
	n := len(s)
	// escolhe 3 posições, permuta cada trio e deduplica
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				trio := string([]byte{s[i], s[j], s[k]})
				perms, err := Permutations(trio)
				if err != nil {
					return nil, err
				}
				for _, p := range perms {
					if _, ok := seen[p]; !ok {
						seen[p] = struct{}{}
						out = append(out, p)
					}
				}
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// Reverse2 devolve os 2 caracteres em ordem invertida.
func Reverse2(s string) (string, error) {
	if err := validateDigits(s, 2); err != nil {
		return "", err
	}
	return string([]byte{s[1], s[0]}), nil
}

// SortDigits retorna os dígitos em ordem ascendente (forma canônica de
// apostas tod e float).
func SortDigits(s string) string {
	b := strings.Split(s, "")
	sort.Strings(b)
	return strings.Join(b, "")
}
