// Package catalogsvc - Motor de classificação e alocação de SKU do catálogo.
//
// Este arquivo contém o classificador global de keywords: a tabela estática de
// vocabulário de material de construção, consultada apenas quando nenhuma regra
// do vendedor casa com o texto. A ordem dos grupos é curada (grupos mais
// específicos vêm antes) e funciona como desempate entre termos do mesmo
// comprimento.
package catalogsvc

import (
	"sort"
	"strings"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/utility"
)

// KeywordGroup associa um conjunto de termos a uma categoria/prefix
type KeywordGroup struct {
	Prefix   string
	Category string
	Terms    []string
}

// keywordTable é a tabela global de fallback. Imutável depois do init.
// Termos compostos ("tinta acrilica", "cabo de aco") vêm listados junto dos
// simples; o ordenamento por comprimento no índice garante que o composto
// ganha do simples quando ambos casam.
var keywordTable = []KeywordGroup{
	{Prefix: "TIN", Category: "tintas", Terms: []string{
		"tinta acrilica", "tinta latex", "tinta esmalte", "esmalte sintetico",
		"massa corrida", "tinta", "latex", "acrilica", "verniz", "selador", "textura",
	}},
	{Prefix: "ELE", Category: "eletrica", Terms: []string{
		"fio eletrico", "cabo flexivel", "lampada led", "fita isolante",
		"disjuntor", "tomada", "interruptor", "lampada", "luminaria", "eletroduto",
	}},
	{Prefix: "HID", Category: "hidraulica", Terms: []string{
		"registro de gaveta", "valvula de descarga", "caixa dagua", "veda rosca",
		"tubo pvc", "cano pvc", "torneira", "sifao", "joelho", "conexao", "mangueira",
	}},
	{Prefix: "FER", Category: "ferragens", Terms: []string{
		"cabo de aco", "parafuso", "porca", "arruela", "prego", "bucha",
		"dobradica", "fechadura", "cadeado", "corrente", "trinco",
	}},
	{Prefix: "FRT", Category: "ferramentas", Terms: []string{
		"chave de fenda", "serra marmore", "nivel a laser",
		"furadeira", "parafusadeira", "martelo", "alicate", "trena", "esmerilhadeira", "serrote",
	}},
	{Prefix: "CIM", Category: "cimento-e-argamassa", Terms: []string{
		"cal hidratada", "cimento", "argamassa", "concreto", "rejunte", "areia", "brita",
	}},
	{Prefix: "CER", Category: "pisos-e-revestimentos", Terms: []string{
		"piso vinilico", "porcelanato", "ceramica", "azulejo", "pastilha", "piso",
	}},
	{Prefix: "MAD", Category: "madeiras", Terms: []string{
		"compensado", "madeira", "tabua", "ripa", "caibro", "sarrafo", "mdf",
	}},
	{Prefix: "EPI", Category: "seguranca", Terms: []string{
		"oculos de protecao", "protetor auricular", "capacete", "luva", "bota", "mascara",
	}},
}

// keywordEntry é uma linha do índice achatado da tabela
type keywordEntry struct {
	term     string // termo já normalizado
	prefix   string
	category string
	order    int // posição na tabela original, desempate de prioridade
}

// keywordIndex é o índice achatado e ordenado, montado uma vez no init
var keywordIndex = buildKeywordIndex(keywordTable)

// buildKeywordIndex achata a tabela em (termo normalizado, prefix, categoria) e
// ordena por comprimento do termo desc, com a ordem da tabela como desempate.
func buildKeywordIndex(table []KeywordGroup) []keywordEntry {
	entries := make([]keywordEntry, 0, 64)
	order := 0
	for _, group := range table {
		for _, term := range group.Terms {
			normalized := utility.NormalizeText(term)
			if normalized == "" {
				continue
			}
			entries = append(entries, keywordEntry{
				term:     normalized,
				prefix:   group.Prefix,
				category: group.Category,
				order:    order,
			})
			order++
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if len(entries[i].term) != len(entries[j].term) {
			return len(entries[i].term) > len(entries[j].term)
		}
		return entries[i].order < entries[j].order
	})

	return entries
}

// Classification é o resultado de um casamento de termo (regra ou keyword)
type Classification struct {
	Category    string
	Prefix      string
	Confidence  float64
	MatchedTerm string
}

// ClassifyByKeyword casa o texto contra a tabela global de keywords.
// Devolve nil quando não há correspondência ou o texto é vazio.
func ClassifyByKeyword(text string) *Classification {
	normalized := utility.NormalizeText(text)
	if normalized == "" {
		return nil
	}

	for _, entry := range keywordIndex {
		if strings.Contains(normalized, entry.term) {
			return &Classification{
				Category:    entry.category,
				Prefix:      entry.prefix,
				Confidence:  models.ConfidenceKeyword,
				MatchedTerm: entry.term,
			}
		}
	}

	return nil
}

// GlobalPrefixes devolve o mapa prefix → categoria da tabela global.
// Usado pelo orquestrador na detecção de prefix quando não há owner.
func GlobalPrefixes() map[string]string {
	prefixes := make(map[string]string, len(keywordTable))
	for _, group := range keywordTable {
		if _, exists := prefixes[group.Prefix]; !exists {
			prefixes[group.Prefix] = group.Category
		}
	}
	return prefixes
}
