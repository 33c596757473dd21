// Package dto - Inputs e responses dos endpoints de categoria.
package dto

import (
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
)

// CategoryCreateInput é o body de criação de categoria.
// Slug e Prefix são opcionais: quando ausentes, são derivados do label.
type CategoryCreateInput struct {
	Label  string `json:"label" validate:"required,no_xss"`
	Slug   string `json:"slug,omitempty" validate:"omitempty,no_xss"`
	Prefix string `json:"prefix,omitempty" validate:"omitempty,sku_prefix"`
}

// CategoryUpdateInput é o body de atualização de categoria
type CategoryUpdateInput struct {
	Label  string `json:"label,omitempty" validate:"omitempty,no_xss"`
	Prefix string `json:"prefix,omitempty" validate:"omitempty,sku_prefix"`
}

// CategoryResponse devolve a categoria com a flag de reuso.
// Reused=true indica que a criação caiu no merge de uma categoria com o mesmo slug.
type CategoryResponse struct {
	models.Category
	Reused bool `json:"reused"`
}
