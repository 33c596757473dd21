// Package dto - Inputs dos endpoints de regras de classificação.
package dto

// RuleUpsertInput é o body de criação/merge de regra explícita de categoria.
// A regra é chaveada por (owner, category): repetir a mesma categoria faz merge.
type RuleUpsertInput struct {
	Category string   `json:"category" validate:"required,no_xss"`
	Prefix   string   `json:"prefix,omitempty" validate:"omitempty,sku_prefix"`
	Terms    []string `json:"terms" validate:"required,min=1,dive,no_xss"`
	Priority int      `json:"priority,omitempty"`
	Active   *bool    `json:"active,omitempty"`
}
