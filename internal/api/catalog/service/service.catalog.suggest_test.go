// Package catalogsvc - Testes da detecção de prefix e da montagem da sugestão.
package catalogsvc

import (
	"testing"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
)

func TestDetectPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"TIN-0001", "TIN"},
		{"tin_0042.jpg", "TIN"},
		{"ELE123 fio 2.5mm", "ELE"},
		{"  HID-9 ", "HID"},
		{"T-0001", ""},          // 1 letra: curto demais
		{"TINTAS-01", ""},       // 6 letras: longo demais
		{"Tinta Acrílica", ""},  // sem separador nem dígito depois das letras
		{"0001-TIN", ""},        // prefixo tem que vir no início
		{"", ""},
	}
	for _, c := range cases {
		got := DetectPrefix(c.in)
		if got != c.want {
			t.Errorf("DetectPrefix(%q) = %q, esperava %q", c.in, got, c.want)
		}
	}
}

func TestSuggestText_Precedencia(t *testing.T) {
	cases := []struct {
		input dto.SuggestInput
		want  string
	}{
		{dto.SuggestInput{Name: "Tinta", Filename: "foto.jpg", SKU: "TIN-1"}, "Tinta"},
		{dto.SuggestInput{Filename: "foto.jpg", SKU: "TIN-1"}, "foto.jpg"},
		{dto.SuggestInput{SKU: "TIN-1"}, "TIN-1"},
		{dto.SuggestInput{Name: "   ", Filename: "", SKU: ""}, ""},
	}
	for _, c := range cases {
		got := suggestText(&c.input)
		if got != c.want {
			t.Errorf("suggestText(%+v) = %q, esperava %q", c.input, got, c.want)
		}
	}
}

func TestSuggestionToResponse_CaminhoNone(t *testing.T) {
	sg := &Suggestion{Source: models.SourceNone, Confidence: models.ConfidenceNone}
	resp := sg.ToResponse()
	if resp.Category != nil || resp.Prefix != nil {
		t.Errorf("no caminho none category/prefix têm que ser nil: %+v", resp)
	}
	if resp.Source != models.SourceNone || resp.Confidence != 0 {
		t.Errorf("resposta none errada: %+v", resp)
	}
}

func TestSuggestionToResponse_CaminhoKeyword(t *testing.T) {
	sg := &Suggestion{
		Category:    "tintas",
		Prefix:      "TIN",
		Source:      models.SourceKeyword,
		Confidence:  models.ConfidenceKeyword,
		MatchedTerm: "tinta acrilica",
	}
	resp := sg.ToResponse()
	if resp.Category == nil || *resp.Category != "tintas" {
		t.Errorf("category na resposta = %v, esperava tintas", resp.Category)
	}
	if resp.Prefix == nil || *resp.Prefix != "TIN" {
		t.Errorf("prefix na resposta = %v, esperava TIN", resp.Prefix)
	}
	if resp.Confidence != models.ConfidenceKeyword || resp.MatchedTerm != "tinta acrilica" {
		t.Errorf("resposta keyword errada: %+v", resp)
	}
}
