// Package utility - Testes da normalização de texto do catálogo.
package utility

import "testing"

func TestNormalizeText_RemoveAcentosEPontuacao(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tinta Acrílica Premium 18L", "tinta acrilica premium 18l"},
		{"CABO DE AÇO 1/4\"", "cabo de aco 1 4"},
		{"  Furadeira   de   Impacto  ", "furadeira de impacto"},
		{"Válvula-Esfera (PVC)", "valvula esfera pvc"},
		{"", ""},
	}
	for _, c := range cases {
		got := NormalizeText(c.in)
		if got != c.want {
			t.Errorf("NormalizeText(%q) = %q, esperava %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeText_Idempotente(t *testing.T) {
	in := "Chapa Galvanizada Nº 26 — açabamento"
	once := NormalizeText(in)
	twice := NormalizeText(once)
	if once != twice {
		t.Errorf("NormalizeText não é idempotente: %q != %q", once, twice)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tintas & Vernizes", "tintas-vernizes"},
		{"Elétrica", "eletrica"},
		{"Pisos e Revestimentos", "pisos-e-revestimentos"},
		{"   ", ""},
	}
	for _, c := range cases {
		got := Slugify(c.in)
		if got != c.want {
			t.Errorf("Slugify(%q) = %q, esperava %q", c.in, got, c.want)
		}
	}
}

func TestAlphaPrefix(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"tintas-vernizes", 5, "TINTA"},
		{"Elétrica", 3, "ELE"},
		{"f2", 5, "F"},
		{"123", 5, ""},
		{"hidraulica", 0, ""},
	}
	for _, c := range cases {
		got := AlphaPrefix(c.in, c.maxLen)
		if got != c.want {
			t.Errorf("AlphaPrefix(%q, %d) = %q, esperava %q", c.in, c.maxLen, got, c.want)
		}
	}
}
