// Package models - Contador sequencial de SKU (catalog_counters).
// Um documento por chave de escopo; o campo next é monotônico e o documento
// nunca é removido; números emitidos não são reutilizados.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SkuCounter guarda o próximo número sequencial de um namespace de SKU.
type SkuCounter struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Key é a chave do escopo: "PREFIX" (global) ou "ownerId:PREFIX" (por vendedor).
	Key string `json:"key" bson:"key"`

	// Componentes da chave, desnormalizados para consulta
	OwnerID string `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
	Prefix  string `json:"prefix" bson:"prefix"`

	// Next é o último número emitido. Incrementado atomicamente via $inc.
	Next int64 `json:"next" bson:"next"`

	// Metadata (Unix ms)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
