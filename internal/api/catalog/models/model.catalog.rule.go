// Package models - Regra de classificação do vendedor (catalog_rules).
//
// Existem duas variantes no mesmo documento:
//   - regra aprendida (auto=true): um único termo, chaveada por (ownerId, normalizedTerm),
//     criada implicitamente quando o vendedor aceita uma classificação sugerida;
//   - regra explícita (auto=false): lista de termos, chaveada por (ownerId, category),
//     criada pelo endpoint de gestão de regras.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rule mapeia termos de texto para uma categoria/prefix do vendedor.
// Tem precedência sobre a tabela global de keywords na classificação.
type Rule struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Escopo de dados
	OwnerID string `json:"ownerId" bson:"ownerId"`

	// Associação de destino
	Category string `json:"category" bson:"category"` // slug da categoria
	Prefix   string `json:"prefix,omitempty" bson:"prefix,omitempty"`

	// Variante aprendida (auto=true): termo único
	Term           string `json:"term,omitempty" bson:"term,omitempty"`
	NormalizedTerm string `json:"normalizedTerm,omitempty" bson:"normalizedTerm,omitempty"`

	// Variante explícita (auto=false): lista de termos
	Terms           []string `json:"terms,omitempty" bson:"terms,omitempty"`
	NormalizedTerms []string `json:"normalizedTerms,omitempty" bson:"normalizedTerms,omitempty"`

	// Hits conta quantas vezes o termo foi reaprendido (aceito de novo)
	Hits     int64 `json:"hits" bson:"hits"`
	Priority int   `json:"priority" bson:"priority"`
	Active   bool  `json:"active" bson:"active" default:"true"`
	Auto     bool  `json:"auto" bson:"auto"`

	// Metadata (Unix ms)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
