// Package database - Índices do catálogo (unicidade e compound) que sustentam
// as garantias de escrita atômica do subsistema de classificação.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
)

// CreateCatalogIndexes cria os índices das collections do catálogo.
// Deve ser chamada na inicialização (INITMODE) antes de atender requisições:
// os índices únicos fecham as janelas de corrida entre verificação e escrita.
func CreateCatalogIndexes(ctx context.Context, db *mongo.Database) error {
	// catalog_categories: (ownerId, slug) único; o slug identifica a categoria
	// dentro do vendedor; criação com slug repetido vira merge no service
	categories := db.Collection(global.CatalogColNames.Categories)
	if _, err := categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "slug", Value: 1},
		},
		Options: options.Index().SetName("catalog_category_owner_slug").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_categories: (ownerId, prefix) único; um prefixo de SKU não pode
	// pertencer a duas categorias do mesmo vendedor
	if _, err := categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "prefix", Value: 1},
		},
		Options: options.Index().SetName("catalog_category_owner_prefix").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_rules: (ownerId, normalizedTerm) único parcial para regras
	// aprendidas: garante um documento por termo mesmo sob upsert concorrente
	rules := db.Collection(global.CatalogColNames.Rules)
	if _, err := rules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "normalizedTerm", Value: 1},
		},
		Options: options.Index().
			SetName("catalog_rule_owner_term").
			SetUnique(true).
			SetPartialFilterExpression(bson.D{{Key: "auto", Value: true}}),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_rules: (ownerId, normalizedTerms) multikey; busca de regras
	// explícitas por termo normalizado
	if _, err := rules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "normalizedTerms", Value: 1},
		},
		Options: options.Index().SetName("catalog_rule_owner_terms"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_rules: (ownerId, category); listagem e upsert de regras explícitas
	if _, err := rules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "category", Value: 1},
		},
		Options: options.Index().SetName("catalog_rule_owner_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_counters: key único; um documento de contador por escopo+prefixo
	counters := db.Collection(global.CatalogColNames.Counters)
	if _, err := counters.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "key", Value: 1},
		},
		Options: options.Index().SetName("catalog_counter_key").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_products: (ownerId, sku) único; SKU não se repete dentro do vendedor
	products := db.Collection(global.CatalogColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "sku", Value: 1},
		},
		Options: options.Index().SetName("catalog_product_owner_sku").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_products: (ownerId, categorySlug); listagem por categoria
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "categorySlug", Value: 1},
		},
		Options: options.Index().SetName("catalog_product_owner_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
