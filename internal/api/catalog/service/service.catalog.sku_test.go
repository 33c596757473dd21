// Package catalogsvc - Testes da formatação e chaveamento de SKU.
package catalogsvc

import (
	"testing"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
)

func TestFormatSku_ZeroPadding(t *testing.T) {
	cases := []struct {
		prefix   string
		sequence int64
		want     string
	}{
		{"TIN", 1, "TIN-0001"},
		{"TIN", 42, "TIN-0042"},
		{"ELE", 9999, "ELE-9999"},
		{"ELE", 10000, "ELE-10000"}, // acima de 4 dígitos imprime na largura natural
		{"PRD", 7, "PRD-0007"},
	}
	for _, c := range cases {
		got := FormatSku(c.prefix, c.sequence)
		if got != c.want {
			t.Errorf("FormatSku(%q, %d) = %q, esperava %q", c.prefix, c.sequence, got, c.want)
		}
	}
}

func TestCounterKey_EscopoGlobal(t *testing.T) {
	key, err := CounterKey(models.ScopeGlobal, "", "TIN")
	if err != nil {
		t.Fatalf("CounterKey global falhou: %v", err)
	}
	if key != "TIN" {
		t.Errorf("chave global = %q, esperava TIN", key)
	}

	// No escopo global o ownerId é ignorado: dois vendedores compartilham a chave
	keyComOwner, err := CounterKey(models.ScopeGlobal, "vendedor-1", "TIN")
	if err != nil {
		t.Fatalf("CounterKey global com owner falhou: %v", err)
	}
	if keyComOwner != key {
		t.Errorf("chave global mudou com ownerId: %q != %q", keyComOwner, key)
	}
}

func TestCounterKey_EscopoOwner(t *testing.T) {
	key, err := CounterKey(models.ScopeOwner, "vendedor-1", "TIN")
	if err != nil {
		t.Fatalf("CounterKey owner falhou: %v", err)
	}
	if key != "vendedor-1:TIN" {
		t.Errorf("chave owner = %q, esperava vendedor-1:TIN", key)
	}

	// Mesmo prefix em vendedores diferentes tem que dar chaves diferentes
	outra, _ := CounterKey(models.ScopeOwner, "vendedor-2", "TIN")
	if outra == key {
		t.Errorf("vendedores diferentes compartilharam a chave %q", key)
	}
}

func TestCounterKey_Invalido(t *testing.T) {
	if _, err := CounterKey(models.ScopeOwner, "", "TIN"); err == nil {
		t.Error("escopo owner sem ownerId tinha que falhar")
	}
	if _, err := CounterKey("regional", "vendedor-1", "TIN"); err == nil {
		t.Error("escopo desconhecido tinha que falhar")
	}
}
