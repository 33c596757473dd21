package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/handler"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	catalogsvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/service"
)

// RuleHandler trata as rotas de regras de classificação do vendedor.
type RuleHandler struct {
	RuleSvc *catalogsvc.RuleService
}

// NewRuleHandler cria um RuleHandler novo.
func NewRuleHandler() (*RuleHandler, error) {
	svc, err := catalogsvc.NewRuleService()
	if err != nil {
		return nil, fmt.Errorf("criar RuleService: %w", err)
	}
	return &RuleHandler{RuleSvc: svc}, nil
}

// HandleUpsertRule trata POST /catalog/rules.
// Uma chamada por categoria: repetir a mesma categoria substitui os termos.
func (h *RuleHandler) HandleUpsertRule(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		var input dto.RuleUpsertInput
		if err := parseBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		rule, err := h.RuleSvc.UpsertCategoryRule(c.Context(), ownerID, &input)
		basehdl.HandleResponse(c, rule, err)
		return nil
	})
}

// HandleListRules trata GET /catalog/rules.
func (h *RuleHandler) HandleListRules(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		rules, err := h.RuleSvc.GetRulesForOwner(c.Context(), ownerID)
		basehdl.HandleResponse(c, rules, err)
		return nil
	})
}

// HandleDeleteRule trata DELETE /catalog/rules/:id.
func (h *RuleHandler) HandleDeleteRule(c fiber.Ctx) error {
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
		err = h.RuleSvc.DeleteRule(c.Context(), ownerID, id)
		basehdl.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
		return nil
	})
}
