// Package models contém os tipos compartilhados do layer base (paginação).
package models

// PaginateResult representa um resultado paginado
type PaginateResult[T any] struct {
	// Página atual
	Page int64 `json:"page" bson:"page"`
	// Quantidade de itens por página
	Limit int64 `json:"limit" bson:"limit"`
	// Quantidade de itens na página atual
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Itens da página
	Items []T `json:"items" bson:"items"`
	// Total de itens
	Total int64 `json:"total" bson:"total"`
	// Total de páginas
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
