// Package models - Produto do vendedor (catalog_products).
// Consumidor do motor de classificação: guarda o SKU emitido, a categoria
// atribuída e a origem da atribuição.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product é um item do catálogo do vendedor.
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Escopo de dados
	OwnerID string `json:"ownerId" bson:"ownerId"`

	// SKU no formato PREFIX-NNNN, único por owner
	SKU string `json:"sku" bson:"sku"`

	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Preço em centavos para evitar float em dinheiro
	PriceCents int64  `json:"priceCents" bson:"priceCents"`
	Unit       string `json:"unit,omitempty" bson:"unit,omitempty"`

	// Categoria atribuída (slug) e a origem da atribuição:
	// rule | prefix | keyword | none | manual
	CategorySlug   string `json:"categorySlug,omitempty" bson:"categorySlug,omitempty"`
	CategorySource string `json:"categorySource" bson:"categorySource" default:"none"`

	ImagePath string `json:"imagePath,omitempty" bson:"imagePath,omitempty"`
	Active    bool   `json:"active" bson:"active" default:"true"`

	// Metadata (Unix ms)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
