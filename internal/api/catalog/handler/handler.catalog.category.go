// Package cataloghdl - Handlers HTTP do catálogo: categorias, regras,
// sugestão, SKU e produtos. Todos exigem o owner autenticado no contexto.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/handler"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	catalogsvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/service"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
)

// CategoryHandler trata as rotas de categoria do catálogo.
type CategoryHandler struct {
	CategorySvc *catalogsvc.CategoryService
}

// NewCategoryHandler cria um CategoryHandler novo.
func NewCategoryHandler() (*CategoryHandler, error) {
	svc, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("criar CategoryService: %w", err)
	}
	return &CategoryHandler{CategorySvc: svc}, nil
}

// parseObjectIDParam converte o :id da rota em ObjectID.
func parseObjectIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	raw := c.Params("id")
	if raw == "" {
		return primitive.NilObjectID, common.NewValidationError("id é obrigatório na rota")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewValidationError(fmt.Sprintf("id '%s' não é um ObjectID válido", raw))
	}
	return id, nil
}

// parseBody decodifica e valida o corpo JSON da request.
func parseBody(c fiber.Ctx, out interface{}) error {
	if err := c.Bind().Body(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Corpo da request não é JSON válido", common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(out); err != nil {
		return common.NewValidationError(err.Error())
	}
	return nil
}

// HandleCreateCategory trata POST /catalog/categories.
// Slug repetido não é erro: a categoria existente é reaproveitada e a
// resposta marca reused=true.
func (h *CategoryHandler) HandleCreateCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		var input dto.CategoryCreateInput
		if err := parseBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		category, reused, err := h.CategorySvc.CreateCategory(c.Context(), ownerID, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, dto.CategoryResponse{Category: *category, Reused: reused}, nil)
		return nil
	})
}

// HandleListCategories trata GET /catalog/categories.
func (h *CategoryHandler) HandleListCategories(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		categories, err := h.CategorySvc.ListCategories(c.Context(), ownerID)
		basehdl.HandleResponse(c, categories, err)
		return nil
	})
}

// HandleUpdateCategory trata PUT /catalog/categories/:id.
func (h *CategoryHandler) HandleUpdateCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		id, err := parseObjectIDParam(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		var input dto.CategoryUpdateInput
		if err := parseBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		category, err := h.CategorySvc.UpdateCategory(c.Context(), ownerID, id, &input)
		basehdl.HandleResponse(c, category, err)
		return nil
	})
}

// HandleDeleteCategory trata DELETE /catalog/categories/:id.
// Idempotente: deletar categoria inexistente responde sucesso.
func (h *CategoryHandler) HandleDeleteCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		id, err := parseObjectIDParam(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		err = h.CategorySvc.DeleteCategory(c.Context(), ownerID, id)
		basehdl.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}
