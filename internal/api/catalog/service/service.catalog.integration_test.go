// Package catalogsvc - Testes de integração contra um MongoDB real.
// Rodam apenas com ORCASMART_TEST_MONGODB_URI setada; sem ela são pulados.
package catalogsvc

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/database"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
)

const testDBName = "orcasmart_catalog_test"

var setupOnce sync.Once

// setupTestDB conecta no Mongo de teste, registra as collections do catálogo
// no registry global e cria os índices. Pula o teste sem a URI no ambiente.
func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("ORCASMART_TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("ORCASMART_TEST_MONGODB_URI não setada, pulando teste de integração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("conectar no Mongo de teste: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping no Mongo de teste: %v", err)
	}

	db := client.Database(testDBName)

	setupOnce.Do(func() {
		for _, name := range []string{
			global.CatalogColNames.Categories,
			global.CatalogColNames.Rules,
			global.CatalogColNames.Counters,
			global.CatalogColNames.Products,
		} {
			if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
				t.Fatalf("registrar collection %s: %v", name, err)
			}
		}
		if err := database.CreateCatalogIndexes(ctx, db); err != nil {
			t.Fatalf("criar índices do catálogo: %v", err)
		}
	})

	return db
}

func TestCreateCategory_ReaproveitaSlug(t *testing.T) {
	setupTestDB(t)
	svc, err := NewCategoryService()
	if err != nil {
		t.Fatalf("criar CategoryService: %v", err)
	}

	ctx := context.Background()
	owner := fmt.Sprintf("owner-cat-%d", time.Now().UnixNano())

	first, reused, err := svc.CreateCategory(ctx, owner, &dto.CategoryCreateInput{Label: "Tintas"})
	if err != nil {
		t.Fatalf("primeira criação falhou: %v", err)
	}
	if reused {
		t.Error("primeira criação não podia marcar reused")
	}
	if first.Slug != "tintas" || first.Prefix == "" {
		t.Errorf("categoria criada errada: slug=%q prefix=%q", first.Slug, first.Prefix)
	}

	second, reused, err := svc.CreateCategory(ctx, owner, &dto.CategoryCreateInput{Label: "Tintas"})
	if err != nil {
		t.Fatalf("segunda criação falhou: %v", err)
	}
	if !reused {
		t.Error("slug repetido tinha que marcar reused")
	}
	if second.ID != first.ID {
		t.Errorf("slug repetido criou documento novo: %s != %s", second.ID.Hex(), first.ID.Hex())
	}
}

func TestCreateCategory_PrefixConflitante(t *testing.T) {
	setupTestDB(t)
	svc, err := NewCategoryService()
	if err != nil {
		t.Fatalf("criar CategoryService: %v", err)
	}

	ctx := context.Background()
	owner := fmt.Sprintf("owner-pfx-%d", time.Now().UnixNano())

	if _, _, err := svc.CreateCategory(ctx, owner, &dto.CategoryCreateInput{Label: "Ferragens", Prefix: "FER"}); err != nil {
		t.Fatalf("criação inicial falhou: %v", err)
	}
	// Mesmo prefix em outra categoria do mesmo vendedor tem que falhar
	if _, _, err := svc.CreateCategory(ctx, owner, &dto.CategoryCreateInput{Label: "Ferramentas", Prefix: "FER"}); err == nil {
		t.Error("prefix FER duplicado no mesmo vendedor tinha que falhar")
	}
}

func TestNextSku_SequenciaConcorrente(t *testing.T) {
	setupTestDB(t)
	svc, err := NewSkuService()
	if err != nil {
		t.Fatalf("criar SkuService: %v", err)
	}

	ctx := context.Background()
	owner := fmt.Sprintf("owner-sku-%d", time.Now().UnixNano())

	const workers = 20
	skus := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sku, _, err := svc.NextSku(ctx, models.ScopeOwner, owner, "TIN")
			if err != nil {
				t.Errorf("NextSku concorrente falhou: %v", err)
				return
			}
			skus <- sku
		}()
	}
	wg.Wait()
	close(skus)

	seen := make(map[string]bool)
	for sku := range skus {
		if seen[sku] {
			t.Errorf("SKU duplicado sob concorrência: %s", sku)
		}
		seen[sku] = true
	}
	if len(seen) != workers {
		t.Errorf("esperava %d SKUs únicos, veio %d", workers, len(seen))
	}
	if !seen["TIN-0001"] {
		t.Error("a sequência tinha que começar em TIN-0001")
	}
	if !seen[fmt.Sprintf("TIN-%04d", workers)] {
		t.Errorf("a sequência tinha que chegar em TIN-%04d", workers)
	}
}

func TestLearnTerm_IncrementaHits(t *testing.T) {
	setupTestDB(t)
	svc, err := NewRuleService()
	if err != nil {
		t.Fatalf("criar RuleService: %v", err)
	}

	ctx := context.Background()
	owner := fmt.Sprintf("owner-learn-%d", time.Now().UnixNano())

	first, err := svc.LearnTerm(ctx, owner, "Acrílica", "tintas", "TIN")
	if err != nil {
		t.Fatalf("primeiro LearnTerm falhou: %v", err)
	}
	if first.Hits != 1 || first.NormalizedTerm != "acrilica" || !first.Auto {
		t.Errorf("regra aprendida errada: hits=%d termo=%q auto=%v", first.Hits, first.NormalizedTerm, first.Auto)
	}

	second, err := svc.LearnTerm(ctx, owner, "acrilica", "tintas", "TIN")
	if err != nil {
		t.Fatalf("segundo LearnTerm falhou: %v", err)
	}
	if second.Hits != 2 {
		t.Errorf("hits = %d, esperava 2 após reaprender o mesmo termo", second.Hits)
	}
	if second.ID != first.ID {
		t.Error("reaprender o mesmo termo criou documento novo")
	}
}

func TestSuggest_PrecedenciaRegraSobreKeyword(t *testing.T) {
	setupTestDB(t)
	suggestSvc, err := NewSuggestService()
	if err != nil {
		t.Fatalf("criar SuggestService: %v", err)
	}

	ctx := context.Background()
	owner := fmt.Sprintf("owner-sug-%d", time.Now().UnixNano())

	// Sem regra: "tinta" cai na tabela global (keyword, 0.7)
	before, err := suggestSvc.Suggest(ctx, owner, &dto.SuggestInput{Name: "Tinta Látex Fosca"})
	if err != nil {
		t.Fatalf("sugestão sem regra falhou: %v", err)
	}
	if before.Source != models.SourceKeyword {
		t.Fatalf("source = %q, esperava keyword antes da regra", before.Source)
	}

	// Regra do vendedor mapeando "latex" para outra categoria ganha da tabela
	if _, err := suggestSvc.Rules.LearnTerm(ctx, owner, "latex", "quimicos", "QUI"); err != nil {
		t.Fatalf("aprender regra falhou: %v", err)
	}

	after, err := suggestSvc.Suggest(ctx, owner, &dto.SuggestInput{Name: "Tinta Látex Fosca"})
	if err != nil {
		t.Fatalf("sugestão com regra falhou: %v", err)
	}
	if after.Source != models.SourceRule {
		t.Errorf("source = %q, esperava rule depois do aprendizado", after.Source)
	}
	if after.Category != "quimicos" || after.Confidence != models.ConfidenceRule {
		t.Errorf("sugestão por regra errada: %+v", after)
	}
}
