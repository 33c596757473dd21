package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/handler"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
	catalogsvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/service"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/logger"
)

// SuggestHandler trata a sugestão de categoria e a alocação de SKU.
type SuggestHandler struct {
	SuggestSvc *catalogsvc.SuggestService
	SkuSvc     *catalogsvc.SkuService
}

// NewSuggestHandler cria um SuggestHandler novo.
func NewSuggestHandler() (*SuggestHandler, error) {
	suggestSvc, err := catalogsvc.NewSuggestService()
	if err != nil {
		return nil, fmt.Errorf("criar SuggestService: %w", err)
	}
	skuSvc, err := catalogsvc.NewSkuService()
	if err != nil {
		return nil, fmt.Errorf("criar SkuService: %w", err)
	}
	return &SuggestHandler{SuggestSvc: suggestSvc, SkuSvc: skuSvc}, nil
}

// HandleSuggest trata POST /catalog/suggest.
// Nunca devolve erro por falta de match: source=none com confidence 0 é uma
// resposta válida. Quando a sugestão traz prefix, a resposta inclui um
// preview do próximo SKU (leitura do contador, sem reservar número).
func (h *SuggestHandler) HandleSuggest(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		var input dto.SuggestInput
		if err := parseBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		suggestion, err := h.SuggestSvc.Suggest(c.Context(), ownerID, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		resp := suggestion.ToResponse()
		if suggestion.Prefix != "" {
			preview, err := h.SkuSvc.PeekNextSku(c.Context(), models.ScopeOwner, ownerID, suggestion.Prefix)
			if err != nil {
				// Preview é cosmético: falha no contador não derruba a sugestão
				logger.WithModuleAndCollection("catalog", "catalog_counters").
					WithError(err).
					Warn("Preview de SKU indisponível na sugestão")
			} else {
				resp.SkuPreview = preview
			}
		}
		basehdl.HandleResponse(c, resp, nil)
		return nil
	})
}

// HandleNextSku trata POST /catalog/sku/next.
// Incrementa o contador do prefix e devolve o SKU formatado. Escopo padrão
// é por owner; scope=global compartilha a numeração entre vendedores.
func (h *SuggestHandler) HandleNextSku(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		var input dto.NextSkuInput
		if err := parseBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		scope := input.Scope
		if scope == "" {
			scope = models.ScopeOwner
		}
		sku, sequence, err := h.SkuSvc.NextSku(c.Context(), scope, ownerID, input.Prefix)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, dto.NextSkuResponse{
			SKU:      sku,
			Prefix:   input.Prefix,
			Sequence: sequence,
			Scope:    scope,
		}, nil)
		return nil
	})
}
