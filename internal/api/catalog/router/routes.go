// Package router registra as rotas do domínio catálogo: categorias, regras,
// sugestão, SKU e produtos.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/handler"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/middleware"
	apirouter "github.com/anderleilucio/orcasmart-web-sub000/internal/api/router"
)

// Register registra todas as rotas do catálogo em v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("criar CategoryHandler: %w", err)
	}
	ruleHandler, err := cataloghdl.NewRuleHandler()
	if err != nil {
		return fmt.Errorf("criar RuleHandler: %w", err)
	}
	suggestHandler, err := cataloghdl.NewSuggestHandler()
	if err != nil {
		return fmt.Errorf("criar SuggestHandler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("criar ProductHandler: %w", err)
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}

	// POST /catalog/categories: cria ou reaproveita categoria (slug repetido não é erro)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/categories", auth, categoryHandler.HandleCreateCategory)
	// GET /catalog/categories
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/categories", auth, categoryHandler.HandleListCategories)
	// PUT /catalog/categories/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "PUT", "/categories/:id", auth, categoryHandler.HandleUpdateCategory)
	// DELETE /catalog/categories/:id: idempotente; não apaga produtos da categoria
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "DELETE", "/categories/:id", auth, categoryHandler.HandleDeleteCategory)

	// POST /catalog/rules: upsert da regra explícita da categoria (substitui os termos)
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/rules", auth, ruleHandler.HandleUpsertRule)
	// GET /catalog/rules
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "GET", "/rules", auth, ruleHandler.HandleListRules)
	// DELETE /catalog/rules/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "DELETE", "/rules/:id", auth, ruleHandler.HandleDeleteRule)

	// POST /catalog/suggest: regra > prefix de SKU > keyword > none
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/suggest", auth, suggestHandler.HandleSuggest)
	// POST /catalog/sku/next: incrementa o contador e devolve PREFIX-NNNN
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/sku/next", auth, suggestHandler.HandleNextSku)

	// POST /catalog/products/create: cadastro orquestrado pelo motor
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog", "POST", "/products/create", auth, productHandler.HandleCreateProduct)
	// CRUD genérico de produtos
	r.RegisterCRUDRoutes(v1, "/catalog/products", productHandler, apirouter.ReadWriteConfig)

	return nil
}
