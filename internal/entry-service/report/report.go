// Package report reagrupa apostas canônicas por entryId, classifica o tipo
// "virtual" de cada grupo e renderiza o relatório de texto determinístico
// usado para exibição, edição e exportação via clipboard.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/catalog"
)

// Tipos virtuais reconstruídos na renderização; não são persistidos em
// nenhuma aposta individual.
const (
	VirtualTengTod  = "teng_tod"
	VirtualKoonChud = "koon_chud"
)

// Tokens de classificação tailandeses reconhecidos no fim de uma linha de
// exibição, do mais longo para o mais curto (match guloso).
var suffixTokens = []string{
	"คูณชุด",
	"เต็งโต๊ด",
	"เต็งกลับ",
	"โต๊ด",
	"กลับ",
	"ชุด",
}

// labels de seção para tipos virtuais
var virtualLabels = map[string]string{
	VirtualTengTod:  "เต็งโต๊ด",
	VirtualKoonChud: "คูณชุด",
}

// Ordem fixa das seções do relatório. Tipos virtuais entram junto dos tipos
// de 3 dígitos e de conjunto que os originam.
var displayOrder = []string{
	"run_top", "run_bottom",
	"2_top", "2_bottom",
	"3_top", "3_tod", VirtualTengTod,
	"3_perm_from_3", "3_perm_from_4", "3_perm_from_5",
	"4_set", VirtualKoonChud,
	"4_float", "5_float",
}

// Line reconstrói a linha compacta "números=valor" de uma aposta, como
// digitada pelo usuário (pode carregar token de classificação no fim).
func Line(w bet.CanonicalWager) string {
	return w.DisplayNumbers + "=" + w.DisplayAmount
}

// StripSuffix remove tokens de classificação do fim da linha, devolvendo a
// forma limpa "números=valor[*valor]". Idempotente: não altera uma linha já
// limpa. Só remove tokens que fecham a linha logo após a expressão de valor
// (precedidos por dígito, com ou sem espaço); nunca corta palavras maiores.
func StripSuffix(line string) string {
	line = strings.TrimSpace(line)
	rest := line
	for {
		matched := false
		for _, tok := range suffixTokens {
			if strings.HasSuffix(rest, tok) {
				rest = strings.TrimRight(rest[:len(rest)-len(tok)], " ")
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	// só aceita o corte se o que sobrou ainda fecha em dígito; senão os
	// tokens faziam parte do conteúdo e a linha volta intacta
	if rest == "" {
		return line
	}
	if r := rest[len(rest)-1]; r < '0' || r > '9' {
		return line
	}
	return rest
}

// GroupByEntry agrupa apostas por entryId preservando a ordem de inserção
// dos grupos e das apostas dentro de cada grupo.
func GroupByEntry(ws []bet.CanonicalWager) (map[string][]bet.CanonicalWager, []string) {
	groups := make(map[string][]bet.CanonicalWager, len(ws))
	var order []string
	for _, w := range ws {
		if _, ok := groups[w.EntryID]; !ok {
			order = append(order, w.EntryID)
		}
		groups[w.EntryID] = append(groups[w.EntryID], w)
	}
	return groups, order
}

// VirtualType classifica o tipo de aposta "virtual" de um grupo:
// {3_top, 3_tod} exatos → teng_tod; linha terminada no token de conjunto
// multiplicado → koon_chud; senão o tipo único subjacente.
func VirtualType(group []bet.CanonicalWager) string {
	if len(group) == 0 {
		return ""
	}
	types := map[string]struct{}{}
	for _, w := range group {
		types[w.BetType] = struct{}{}
	}
	if len(types) == 2 {
		_, hasTop := types["3_top"]
		_, hasTod := types["3_tod"]
		if hasTop && hasTod {
			return VirtualTengTod
		}
	}
	if strings.HasSuffix(strings.TrimSpace(Line(group[0])), "คูณชุด") {
		return VirtualKoonChud
	}
	return group[0].BetType
}

// Header é o bloco de cabeçalho do relatório.
type Header struct {
	Title     string
	BillLabel string
	Cutoff    time.Time
	Submitter string
}

// Render produz o relatório de texto: cabeçalho, depois as linhas agrupadas
// por tipo virtual na ordem fixa do catálogo, ordenadas pelo valor numérico
// do número inicial. Determinístico e idempotente sobre o mesmo conjunto.
func Render(h Header, ws []bet.CanonicalWager) string {
	groups, order := GroupByEntry(ws)

	lines := map[string][]string{}
	var total float64
	for _, id := range order {
		g := groups[id]
		vt := VirtualType(g)
		lines[vt] = append(lines[vt], StripSuffix(Line(g[0])))
		for _, w := range g {
			total += w.Amount
		}
	}
	for _, ls := range lines {
		sort.SliceStable(ls, func(i, j int) bool { return lineLess(ls[i], ls[j]) })
	}

	var b strings.Builder
	b.WriteString(h.Title)
	b.WriteString("\n")
	if h.BillLabel != "" {
		b.WriteString("บิล: " + h.BillLabel + "\n")
	}
	b.WriteString("ปิดรับ: " + h.Cutoff.Format("02/01/2006 15:04") + "\n")
	if h.Submitter != "" {
		b.WriteString("ผู้ส่ง: " + h.Submitter + "\n")
	}
	b.WriteString(fmt.Sprintf("รายการ: %d  รวม: %s\n", len(order), formatAmount(total)))
	b.WriteString("----------------\n")

	for _, vt := range sectionOrder(lines) {
		ls, ok := lines[vt]
		if !ok {
			continue
		}
		b.WriteString(labelFor(vt) + "\n")
		for _, l := range ls {
			b.WriteString(l + "\n")
		}
	}
	return b.String()
}

// sectionOrder devolve as seções presentes na ordem fixa de exibição;
// tipos fora da ordem conhecida vão para o fim, em ordem alfabética.
func sectionOrder(lines map[string][]string) []string {
	known := map[string]struct{}{}
	var out []string
	for _, vt := range displayOrder {
		known[vt] = struct{}{}
		if _, ok := lines[vt]; ok {
			out = append(out, vt)
		}
	}
	var extra []string
	for vt := range lines {
		if _, ok := known[vt]; !ok {
			extra = append(extra, vt)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func labelFor(vt string) string {
	if l, ok := virtualLabels[vt]; ok {
		return l
	}
	if d, err := catalog.Lookup(vt); err == nil {
		return d.Label
	}
	return vt
}

// lineLess compara linhas pelo valor numérico do número inicial (comparação
// numérica consciente, ascendente), desempatando pela string.
func lineLess(a, b string) bool {
	na, nb := leadingNumber(a), leadingNumber(b)
	if na != nb {
		return na < nb
	}
	return a < b
}

func leadingNumber(line string) int64 {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1
	}
	n, err := strconv.ParseInt(line[:i], 10, 64)
	if err != nil {
		return -1
	}
	return n
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
