// Package dto - Inputs e responses da sugestão de categoria e da emissão de SKU.
package dto

// SuggestInput é o body do endpoint de sugestão.
// Pelo menos um dos campos precisa vir preenchido; o orquestrador usa o
// primeiro não vazio na ordem name, filename, sku.
type SuggestInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Filename string `json:"filename,omitempty" validate:"omitempty,no_xss"`
	SKU      string `json:"sku,omitempty" validate:"omitempty,no_xss"`
}

// SuggestResponse é a tupla de sugestão devolvida ao cliente.
// Category e Prefix são nil quando source == "none".
type SuggestResponse struct {
	Category    *string `json:"category"`
	Prefix      *string `json:"prefix"`
	Source      string  `json:"source"` // rule | prefix | keyword | none
	Confidence  float64 `json:"confidence"`
	MatchedTerm string  `json:"matchedTerm,omitempty"`

	// SkuPreview é o próximo SKU provável do prefix sugerido (leitura sem
	// incremento; não reserva o número).
	SkuPreview string `json:"skuPreview,omitempty"`
}

// NextSkuInput é o body do endpoint de emissão de SKU
type NextSkuInput struct {
	Prefix string `json:"prefix" validate:"required,sku_prefix"`
	Scope  string `json:"scope,omitempty" validate:"omitempty,sku_scope"` // owner (padrão) | global
}

// NextSkuResponse devolve o SKU emitido e a sequência
type NextSkuResponse struct {
	SKU      string `json:"sku"`
	Prefix   string `json:"prefix"`
	Sequence int64  `json:"sequence"`
	Scope    string `json:"scope"`
}
