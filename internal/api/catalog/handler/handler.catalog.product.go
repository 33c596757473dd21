package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/handler"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
	catalogsvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/service"
)

// ProductHandler expõe o CRUD genérico de produtos mais a rota de cadastro
// orquestrado (sugestão de categoria + alocação de SKU + aprendizado).
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput]
	ProductSvc *catalogsvc.ProductService
}

// NewProductHandler cria um ProductHandler novo.
func NewProductHandler() (*ProductHandler, error) {
	svc, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("criar ProductService: %w", err)
	}
	return &ProductHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput](svc),
		ProductSvc:  svc,
	}, nil
}

// HandleCreateProduct trata POST /catalog/products/create.
// Diferente do insert-one genérico, esta rota passa pelo motor: categoria
// sugerida quando ausente, SKU alocado quando ausente e aprendizado de
// termos quando o vendedor confirma a categoria sugerida.
func (h *ProductHandler) HandleCreateProduct(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ownerID, err := basehdl.OwnerIDFromContext(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		var input dto.ProductCreateInput
		if err := parseBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.ProductSvc.CreateProduct(c.Context(), ownerID, &input)
		basehdl.HandleResponse(c, product, err)
		return nil
	})
}
