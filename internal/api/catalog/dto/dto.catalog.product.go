// Package dto - Inputs dos endpoints de produto.
package dto

// ProductCreateInput é o body do cadastro de produto.
// Campos ausentes são resolvidos pelo motor: categoria via sugestão,
// SKU via alocação no contador do prefix resolvido.
type ProductCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
	PriceCents  int64  `json:"priceCents,omitempty" validate:"omitempty,gte=0"`
	Unit        string `json:"unit,omitempty" validate:"omitempty,no_xss"`

	// SKU explícito; quando ausente o motor aloca o próximo do prefix
	SKU string `json:"sku,omitempty" validate:"omitempty,sku"`

	// Categoria explícita (slug); quando ausente o motor sugere
	CategorySlug string `json:"categorySlug,omitempty" validate:"omitempty,no_xss"`

	// CategoryConfirmed indica que o vendedor aceitou a categoria (sugerida ou
	// escolhida) e dispara o aprendizado de termos do nome do produto.
	CategoryConfirmed bool `json:"categoryConfirmed,omitempty"`

	// AllocationMode escolhe o escopo do contador de SKU: owner (padrão) | global
	AllocationMode string `json:"allocationMode,omitempty" validate:"omitempty,sku_scope"`

	ImagePath string `json:"imagePath,omitempty" validate:"omitempty,no_xss"`
	Filename  string `json:"filename,omitempty" validate:"omitempty,no_xss"` // nome do arquivo de imagem, usado como texto de sugestão
}

// ProductUpdateInput é o body de atualização parcial de produto
type ProductUpdateInput struct {
	Name         string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description  string `json:"description,omitempty" validate:"omitempty,no_xss"`
	PriceCents   int64  `json:"priceCents,omitempty" validate:"omitempty,gte=0"`
	Unit         string `json:"unit,omitempty" validate:"omitempty,no_xss"`
	CategorySlug string `json:"categorySlug,omitempty" validate:"omitempty,no_xss"`
	ImagePath    string `json:"imagePath,omitempty" validate:"omitempty,no_xss"`
}
