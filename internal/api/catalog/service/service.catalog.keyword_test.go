// Package catalogsvc - Testes do classificador global de keywords.
package catalogsvc

import (
	"testing"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
)

func TestClassifyByKeyword_TermoComposto(t *testing.T) {
	got := ClassifyByKeyword("Tinta Acrílica Suvinil 18L Branco Neve")
	if got == nil {
		t.Fatal("ClassifyByKeyword devolveu nil para um nome de tinta")
	}
	if got.Category != "tintas" || got.Prefix != "TIN" {
		t.Errorf("classificou como %s/%s, esperava tintas/TIN", got.Category, got.Prefix)
	}
	// O composto "tinta acrilica" deve ganhar do simples "tinta"
	if got.MatchedTerm != "tinta acrilica" {
		t.Errorf("matched term = %q, esperava o termo composto 'tinta acrilica'", got.MatchedTerm)
	}
	if got.Confidence != models.ConfidenceKeyword {
		t.Errorf("confidence = %v, esperava %v", got.Confidence, models.ConfidenceKeyword)
	}
}

func TestClassifyByKeyword_AcentosNaoAtrapalham(t *testing.T) {
	got := ClassifyByKeyword("CABO DE AÇO 1/4 galvanizado")
	if got == nil {
		t.Fatal("ClassifyByKeyword devolveu nil para cabo de aço")
	}
	if got.Category != "ferragens" || got.MatchedTerm != "cabo de aco" {
		t.Errorf("classificou como %s via %q, esperava ferragens via 'cabo de aco'", got.Category, got.MatchedTerm)
	}
}

func TestClassifyByKeyword_SubstringNaoCasaPalavraMaisLonga(t *testing.T) {
	// "parafusadeira" contém "parafuso"? Não, e a tabela tem os dois termos.
	// O termo mais longo (parafusadeira, ferramentas) tem que ganhar.
	got := ClassifyByKeyword("Parafusadeira de Impacto 12V")
	if got == nil {
		t.Fatal("ClassifyByKeyword devolveu nil para parafusadeira")
	}
	if got.Category != "ferramentas" {
		t.Errorf("classificou como %s, esperava ferramentas", got.Category)
	}
}

func TestClassifyByKeyword_SemMatch(t *testing.T) {
	if got := ClassifyByKeyword("produto generico qualquer"); got != nil {
		t.Errorf("esperava nil sem vocabulário conhecido, veio %+v", got)
	}
	if got := ClassifyByKeyword(""); got != nil {
		t.Errorf("esperava nil para texto vazio, veio %+v", got)
	}
}

func TestGlobalPrefixes_CobreTodaATabela(t *testing.T) {
	prefixes := GlobalPrefixes()
	for _, group := range keywordTable {
		if _, ok := prefixes[group.Prefix]; !ok {
			t.Errorf("GlobalPrefixes não contém o prefixo %s", group.Prefix)
		}
	}
	if cat := prefixes["TIN"]; cat != "tintas" {
		t.Errorf("prefixes[TIN] = %q, esperava tintas", cat)
	}
}
