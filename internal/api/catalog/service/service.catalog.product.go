// Package catalogsvc - Produtos do vendedor (catalog_products).
// Consumidor do motor: no cadastro resolve categoria via sugestão quando o
// vendedor não informou, aloca SKU no contador quando não veio explícito e
// dispara o aprendizado de termos quando a categoria foi confirmada.
package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/service"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/logger"
)

// ProductService trata o cadastro de produtos do catálogo.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	Sku     *SkuService
	Suggest *SuggestService
}

// NewProductService cria um ProductService novo.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.CatalogColNames.Products)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.CatalogColNames.Products, common.ErrNotFound)
	}
	skuSvc, err := NewSkuService()
	if err != nil {
		return nil, fmt.Errorf("criar SkuService: %w", err)
	}
	suggestSvc, err := NewSuggestService()
	if err != nil {
		return nil, fmt.Errorf("criar SuggestService: %w", err)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](coll),
		Sku:                  skuSvc,
		Suggest:              suggestSvc,
	}, nil
}

// CreateProduct cadastra um produto resolvendo categoria e SKU pelo motor.
func (s *ProductService) CreateProduct(ctx context.Context, ownerID string, input *dto.ProductCreateInput) (*models.Product, error) {
	if ownerID == "" {
		return nil, common.NewValidationError("ownerId é obrigatório")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, common.NewValidationError("name não pode ser vazio")
	}

	// Categoria: explícita do vendedor ou sugerida pelo motor
	categorySlug := strings.TrimSpace(input.CategorySlug)
	categorySource := models.SourceManual
	categoryPrefix := ""

	if categorySlug == "" {
		suggestion, err := s.Suggest.Suggest(ctx, ownerID, &dto.SuggestInput{
			Name:     name,
			Filename: input.Filename,
			SKU:      input.SKU,
		})
		if err != nil {
			return nil, err
		}
		categorySlug = suggestion.Category
		categorySource = suggestion.Source
		categoryPrefix = suggestion.Prefix
	} else {
		// Categoria explícita: o prefix dela vira o namespace do SKU
		category, err := s.Suggest.Categories.FindOne(ctx, bson.M{"ownerId": ownerID, "slug": categorySlug}, nil)
		if err == nil {
			categoryPrefix = category.Prefix
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}

	// SKU: explícito (checando duplicidade por owner) ou alocado no contador
	sku := strings.ToUpper(strings.TrimSpace(input.SKU))
	allocated := false
	if sku != "" {
		taken, err := s.DocumentExists(ctx, bson.M{"ownerId": ownerID, "sku": sku})
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, common.NewConflictError(fmt.Sprintf("SKU '%s' já existe neste catálogo", sku))
		}
	} else {
		prefix := categoryPrefix
		if prefix == "" {
			prefix = models.DefaultPrefix
		}
		scope := input.AllocationMode
		if scope == "" {
			scope = models.ScopeOwner
		}
		var err error
		sku, _, err = s.Sku.NextSku(ctx, scope, ownerID, prefix)
		if err != nil {
			return nil, err
		}
		allocated = true
	}

	product, err := s.InsertOne(ctx, models.Product{
		OwnerID:        ownerID,
		SKU:            sku,
		Name:           name,
		Description:    input.Description,
		PriceCents:     input.PriceCents,
		Unit:           input.Unit,
		CategorySlug:   categorySlug,
		CategorySource: categorySource,
		ImagePath:      input.ImagePath,
		Active:         true,
	})
	if err != nil {
		if allocated && errors.Is(err, common.ErrDuplicate) {
			// SKU alocado colidiu com um importado manualmente no mesmo número:
			// o contador é monotônico, então a próxima chamada passa do buraco.
			return nil, common.NewConflictError(
				fmt.Sprintf("SKU alocado '%s' colidiu com um SKU importado; repita a operação", sku))
		}
		return nil, err
	}

	// Aprendizado: categoria confirmada pelo vendedor alimenta as regras dele
	if input.CategoryConfirmed && categorySlug != "" {
		s.learnFromAccepted(ctx, ownerID, name, categorySlug, categoryPrefix)
	}

	return &product, nil
}

// learnFromAccepted aprende até 2 termos do nome quando o vendedor confirma a
// categoria. Falha de aprendizado não derruba o cadastro, só loga.
func (s *ProductService) learnFromAccepted(ctx context.Context, ownerID, name, category, prefix string) {
	for _, term := range s.Suggest.Rules.ExtractLearnableTerms(name) {
		if _, err := s.Suggest.Rules.LearnTerm(ctx, ownerID, term, category, prefix); err != nil {
			logger.WithModuleAndCollection("catalog", global.CatalogColNames.Rules).
				WithField("term", term).
				WithError(err).
				Warn("Aprendizado de termo falhou após cadastro de produto")
		}
	}
}
