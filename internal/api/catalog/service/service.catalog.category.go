// Package catalogsvc - Registro de categorias do vendedor (catalog_categories).
//
// Semântica de criação: mesmo slug para o mesmo owner degenera em merge da
// categoria existente (Reused=true); mesmo prefix em categoria de id diferente
// é conflito. A checagem de prefix é read-then-write; a janela de corrida
// restante é fechada pelo índice único (ownerId, prefix) criado no bootstrap,
// cujo duplicate key também vira ConflictError.
package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/service"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/utility"
)

// prefixPattern valida o prefix de categoria: 2 a 5 letras maiúsculas
var prefixPattern = regexp.MustCompile(`^[A-Z]{2,5}$`)

// CategoryService trata as categorias de produto do vendedor.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService cria um CategoryService novo.
func NewCategoryService() (*CategoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.CatalogColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.CatalogColNames.Categories, common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](coll),
	}, nil
}

// DerivePrefix deriva o prefix das primeiras letras do slug, maiúsculas,
// truncado em 5. Não valida o tamanho mínimo; isso é papel do caller.
func DerivePrefix(slug string) string {
	return utility.AlphaPrefix(slug, models.PrefixMaxLen)
}

// CreateCategory cria uma categoria para o vendedor.
// Retorna (categoria, reused, erro); reused=true quando a criação caiu no
// merge de uma categoria existente com o mesmo slug.
func (s *CategoryService) CreateCategory(ctx context.Context, ownerID string, input *dto.CategoryCreateInput) (*models.Category, bool, error) {
	if ownerID == "" {
		return nil, false, common.NewValidationError("ownerId é obrigatório")
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, false, common.NewValidationError("label não pode ser vazio")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = utility.Slugify(label)
	}
	if slug == "" {
		return nil, false, common.NewValidationError("label não gera um slug válido")
	}

	prefix := strings.ToUpper(strings.TrimSpace(input.Prefix))
	if prefix == "" {
		prefix = DerivePrefix(slug)
	}
	if len(prefix) < models.PrefixMinLen {
		return nil, false, common.NewValidationError(
			fmt.Sprintf("prefix '%s' precisa ter pelo menos %d letras", prefix, models.PrefixMinLen))
	}
	if !prefixPattern.MatchString(prefix) {
		return nil, false, common.NewValidationError(
			fmt.Sprintf("prefix '%s' precisa ter de %d a %d letras maiúsculas", prefix, models.PrefixMinLen, models.PrefixMaxLen))
	}

	// Mesmo slug → merge da categoria existente, não duplica
	existing, err := s.FindOne(ctx, bson.M{"ownerId": ownerID, "slug": slug}, nil)
	if err == nil {
		updated, err := s.mergeCategory(ctx, ownerID, &existing, label, prefix)
		if err != nil {
			return nil, false, err
		}
		return updated, true, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, false, err
	}

	// Prefix já em uso por outra categoria do owner → conflito
	if err := s.checkPrefixConflict(ctx, ownerID, prefix, primitive.NilObjectID); err != nil {
		return nil, false, err
	}

	category, err := s.InsertOne(ctx, models.Category{
		OwnerID: ownerID,
		Label:   label,
		Slug:    slug,
		Prefix:  prefix,
		Active:  true,
	})
	if err != nil {
		// O índice único fecha a janela entre a checagem e o insert
		if errors.Is(err, common.ErrDuplicate) {
			return nil, false, common.NewConflictError(
				fmt.Sprintf("prefix '%s' ou slug '%s' já em uso em outra categoria", prefix, slug))
		}
		return nil, false, err
	}

	return &category, false, nil
}

// mergeCategory atualiza label/prefix de uma categoria existente no caminho de
// reuso por slug, revalidando a unicidade do prefix contra as demais.
func (s *CategoryService) mergeCategory(ctx context.Context, ownerID string, existing *models.Category, label, prefix string) (*models.Category, error) {
	if prefix != existing.Prefix {
		if err := s.checkPrefixConflict(ctx, ownerID, prefix, existing.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.UpdateById(ctx, existing.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"label":  label,
			"prefix": prefix,
			"active": true,
		},
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.NewConflictError(
				fmt.Sprintf("prefix '%s' já em uso em outra categoria", prefix))
		}
		return nil, err
	}
	return &updated, nil
}

// checkPrefixConflict falha com ConflictError quando o prefix já pertence a
// outra categoria do owner (id diferente de excludeID).
func (s *CategoryService) checkPrefixConflict(ctx context.Context, ownerID, prefix string, excludeID primitive.ObjectID) error {
	filter := bson.M{"ownerId": ownerID, "prefix": prefix}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if exists {
		return common.NewConflictError(
			fmt.Sprintf("prefix '%s' já em uso em outra categoria deste vendedor", prefix))
	}
	return nil
}

// UpdateCategory atualiza label/prefix de uma categoria do vendedor.
// Id inexistente é erro (diferente do delete); categoria de outro owner é Forbidden.
func (s *CategoryService) UpdateCategory(ctx context.Context, ownerID string, id primitive.ObjectID, input *dto.CategoryUpdateInput) (*models.Category, error) {
	category, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.OwnerID != ownerID {
		return nil, common.ErrForbidden
	}

	set := make(map[string]interface{})

	if label := strings.TrimSpace(input.Label); label != "" {
		set["label"] = label
	}

	if input.Prefix != "" {
		prefix := strings.ToUpper(strings.TrimSpace(input.Prefix))
		if !prefixPattern.MatchString(prefix) {
			return nil, common.NewValidationError(
				fmt.Sprintf("prefix '%s' precisa ter de %d a %d letras maiúsculas", prefix, models.PrefixMinLen, models.PrefixMaxLen))
		}
		if prefix != category.Prefix {
			if err := s.checkPrefixConflict(ctx, ownerID, prefix, id); err != nil {
				return nil, err
			}
		}
		set["prefix"] = prefix
	}

	if len(set) == 0 {
		return &category, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.NewConflictError("prefix já em uso em outra categoria deste vendedor")
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory remove uma categoria do vendedor.
// Idempotente em id inexistente; não cascateia para produtos; eles mantêm a
// referência antiga de categoria, tradeoff aceito do modelo.
func (s *CategoryService) DeleteCategory(ctx context.Context, ownerID string, id primitive.ObjectID) error {
	category, err := s.FindOneById(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	if category.OwnerID != ownerID {
		return common.ErrForbidden
	}

	err = s.DeleteById(ctx, id)
	if err != nil && errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return err
}

// ListCategories devolve as categorias do vendedor ordenadas por label
func (s *CategoryService) ListCategories(ctx context.Context, ownerID string) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "label", Value: 1}})
	return s.Find(ctx, bson.M{"ownerId": ownerID}, opts)
}

// PrefixMap devolve o mapa prefix → slug das categorias ativas do vendedor.
// Usado pelo orquestrador na detecção de prefix.
func (s *CategoryService) PrefixMap(ctx context.Context, ownerID string) (map[string]string, error) {
	categories, err := s.Find(ctx, bson.M{"ownerId": ownerID, "active": true}, nil)
	if err != nil {
		return nil, err
	}

	prefixes := make(map[string]string, len(categories))
	for _, category := range categories {
		if category.Prefix != "" {
			prefixes[category.Prefix] = category.Slug
		}
	}
	return prefixes, nil
}
