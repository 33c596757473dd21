package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anderleilucio/orcasmart-web-sub000/config"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/registry"
)

// CatalogCollectionName contém os nomes das collections do catálogo no MongoDB
type CatalogCollectionName struct {
	Categories string // Collection de categorias de produto
	Rules      string // Collection de regras de classificação (explícitas e aprendidas)
	Counters   string // Collection de contadores sequenciais de SKU
	Products   string // Collection de produtos do vendedor
}

// Variáveis globais
var Validate *validator.Validate                                       // Validador de dados
var MongoDB_Session *mongo.Client                                      // Sessão de conexão com o MongoDB
var ServerConfig *config.Configuration                                 // Configuração do servidor
var CatalogColNames CatalogCollectionName = CatalogCollectionName{     // Nomes das collections
	Categories: "catalog_categories",
	Rules:      "catalog_rules",
	Counters:   "catalog_counters",
	Products:   "catalog_products",
}

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry das collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry dos databases
