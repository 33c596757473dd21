// Package models - Categoria de produto do catálogo (catalog_categories).
// Cada vendedor (owner) mantém o próprio conjunto de categorias; o prefix é o
// namespace de SKU da categoria e é único dentro do conjunto do owner.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category é uma categoria de produto do vendedor.
type Category struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Escopo de dados
	OwnerID string `json:"ownerId" bson:"ownerId"`

	// Label é o nome legível, texto livre, não vazio.
	Label string `json:"label" bson:"label"`

	// Slug é a chave semântica estável, derivada do label quando não informada.
	Slug string `json:"slug" bson:"slug"`

	// Prefix é o código de 2 a 5 letras maiúsculas usado como namespace de SKU.
	// Único dentro do conjunto de categorias do owner.
	Prefix string `json:"prefix" bson:"prefix"`

	Active bool `json:"active" bson:"active" default:"true"`

	// Metadata (Unix ms)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
