// Package catalogsvc - Regras de classificação do vendedor (catalog_rules).
// Regras do vendedor são consultadas antes da tabela global de keywords e
// carregam confiança maior (0.9 contra 0.7).
package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/service"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/logger"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/utility"
)

// maxLearnRetries limita o retry do upsert de aprendizado em corrida de chave
const maxLearnRetries = 3

// stopwords do português filtradas pela heurística de aprendizado.
// Só entram palavras com 4+ letras: as menores já caem no filtro de tamanho.
var learnStopwords = map[string]struct{}{
	"para": {}, "pela": {}, "pelo": {}, "como": {}, "tipo": {},
	"unidade": {}, "metro": {}, "metros": {}, "litro": {}, "litros": {},
	"caixa": {}, "pacote": {}, "peca": {}, "pecas": {}, "conjunto": {},
	"modelo": {}, "marca": {}, "item": {}, "novo": {}, "nova": {},
	"grande": {}, "pequeno": {}, "pequena": {}, "medio": {}, "media": {},
}

// RuleService trata as regras de classificação do vendedor.
type RuleService struct {
	*basesvc.BaseServiceMongoImpl[models.Rule]
}

// NewRuleService cria um RuleService novo.
func NewRuleService() (*RuleService, error) {
	coll, exist := global.RegistryCollections.Get(global.CatalogColNames.Rules)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.CatalogColNames.Rules, common.ErrNotFound)
	}
	return &RuleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Rule](coll),
	}, nil
}

// GetRulesForOwner devolve todas as regras do vendedor, explícitas e aprendidas.
func (s *RuleService) GetRulesForOwner(ctx context.Context, ownerID string) ([]models.Rule, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "priority", Value: -1},
		{Key: "updatedAt", Value: -1},
	})
	return s.Find(ctx, bson.M{"ownerId": ownerID}, opts)
}

// ClassifyByRule casa o texto contra as regras ativas do vendedor.
// Mesma política de substring do classificador de keywords, mas o termo mais
// longo ganha e, em empate, a regra atualizada mais recentemente; é assim que
// colisões de termo entre regras do mesmo owner resolvem como last-write-wins.
// Devolve nil quando nada casa; erro só em falha real do store.
func (s *RuleService) ClassifyByRule(ctx context.Context, ownerID, text string) (*Classification, error) {
	normalized := utility.NormalizeText(text)
	if normalized == "" || ownerID == "" {
		return nil, nil
	}

	rules, err := s.Find(ctx, bson.M{"ownerId": ownerID, "active": true}, nil)
	if err != nil {
		return nil, err
	}

	var best *Classification
	var bestLen int
	var bestUpdatedAt int64

	consider := func(term string, rule *models.Rule) {
		if term == "" || !strings.Contains(normalized, term) {
			return
		}
		if len(term) < bestLen {
			return
		}
		if len(term) == bestLen && rule.UpdatedAt <= bestUpdatedAt {
			return
		}
		best = &Classification{
			Category:    rule.Category,
			Prefix:      rule.Prefix,
			Confidence:  models.ConfidenceRule,
			MatchedTerm: term,
		}
		bestLen = len(term)
		bestUpdatedAt = rule.UpdatedAt
	}

	for i := range rules {
		rule := &rules[i]
		consider(rule.NormalizedTerm, rule)
		for _, term := range rule.NormalizedTerms {
			consider(term, rule)
		}
	}

	return best, nil
}

// LearnTerm faz o upsert atômico de uma regra aprendida, chaveada por
// (ownerId, normalizedTerm): cria com hits=1 quando não existe, senão
// incrementa hits e atualiza categoria/prefix para os valores mais recentes.
// Retry limitado cobre a corrida de upsert duplicado e erros transitórios.
func (s *RuleService) LearnTerm(ctx context.Context, ownerID, rawTerm, category, prefix string) (*models.Rule, error) {
	normalized := utility.NormalizeText(rawTerm)
	if ownerID == "" || normalized == "" || category == "" {
		return nil, common.NewValidationError("ownerId, termo e categoria são obrigatórios para aprender um termo")
	}

	filter := bson.M{
		"ownerId":        ownerID,
		"normalizedTerm": normalized,
		"auto":           true,
	}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"category": category,
			"prefix":   prefix,
			"active":   true,
		},
		SetOnInsert: map[string]interface{}{
			"ownerId":        ownerID,
			"term":           strings.TrimSpace(rawTerm),
			"normalizedTerm": normalized,
			"auto":           true,
			"priority":       0,
		},
		Inc: map[string]interface{}{"hits": 1},
	}

	var lastErr error
	for attempt := 0; attempt < maxLearnRetries; attempt++ {
		rule, err := s.Upsert(ctx, filter, update)
		if err == nil {
			return &rule, nil
		}
		lastErr = err
		// Corrida de upsert: dois learns simultâneos do mesmo termo disputam a
		// criação; o perdedor recebe duplicate key do índice único e repete.
		if !common.IsTransient(err) && !mongo.IsDuplicateKeyError(err) && !errors.Is(err, common.ErrDuplicate) {
			return nil, err
		}
		logger.WithModuleAndCollection("catalog", global.CatalogColNames.Rules).
			WithField("attempt", attempt+1).
			Warn("LearnTerm: conflito no upsert, tentando de novo")
	}

	return nil, common.NewError(
		common.ErrCodeDatabaseTransient,
		fmt.Sprintf("Aprendizado do termo '%s' falhou após %d tentativas", normalized, maxLearnRetries),
		common.StatusInternalServerError,
		lastErr,
	)
}

// UpsertCategoryRule cria ou faz merge de uma regra explícita, chaveada por
// (ownerId, category). Rejeita categoria vazia ou lista de termos vazia.
func (s *RuleService) UpsertCategoryRule(ctx context.Context, ownerID string, input *dto.RuleUpsertInput) (*models.Rule, error) {
	if ownerID == "" {
		return nil, common.NewValidationError("ownerId é obrigatório")
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, common.NewValidationError("category não pode ser vazia")
	}

	terms := make([]string, 0, len(input.Terms))
	normalizedTerms := make([]string, 0, len(input.Terms))
	for _, term := range input.Terms {
		normalized := utility.NormalizeText(term)
		if normalized == "" {
			continue
		}
		terms = append(terms, strings.TrimSpace(term))
		normalizedTerms = append(normalizedTerms, normalized)
	}
	terms = utility.Dedup(terms)
	normalizedTerms = utility.Dedup(normalizedTerms)
	if len(normalizedTerms) == 0 {
		return nil, common.NewValidationError("terms precisa conter pelo menos um termo não vazio")
	}
	if len(normalizedTerms) > models.MaxTermsPerRule {
		terms = terms[:models.MaxTermsPerRule]
		normalizedTerms = normalizedTerms[:models.MaxTermsPerRule]
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	filter := bson.M{
		"ownerId":  ownerID,
		"category": category,
		"auto":     false,
	}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"prefix":          strings.ToUpper(strings.TrimSpace(input.Prefix)),
			"terms":           terms,
			"normalizedTerms": normalizedTerms,
			"priority":        input.Priority,
			"active":          active,
		},
		SetOnInsert: map[string]interface{}{
			"ownerId":  ownerID,
			"category": category,
			"auto":     false,
			"hits":     int64(0),
		},
	}

	rule, err := s.Upsert(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteRule remove uma regra do vendedor.
// Idempotente: regra inexistente não é erro. Regra de outro owner é Forbidden.
func (s *RuleService) DeleteRule(ctx context.Context, ownerID string, ruleID primitive.ObjectID) error {
	rule, err := s.FindOneById(ctx, ruleID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}

	if rule.OwnerID != ownerID {
		return common.ErrForbidden
	}

	err = s.DeleteById(ctx, ruleID)
	if err != nil && errors.Is(err, common.ErrNotFound) {
		// Outra request removeu entre o find e o delete, mesmo resultado
		return nil
	}
	return err
}

// ExtractLearnableTerms aplica a heurística de aprendizado sobre um nome de
// produto: tokens normalizados, sem stopwords, com 4+ caracteres, no máximo 2
// por evento. Heurística simples por contrato, não é um modelo estatístico.
func (s *RuleService) ExtractLearnableTerms(name string) []string {
	normalized := utility.NormalizeText(name)
	if normalized == "" {
		return nil
	}

	var terms []string
	for _, token := range strings.Fields(normalized) {
		if len(token) < models.MinLearnableTermLength {
			continue
		}
		if _, stop := learnStopwords[token]; stop {
			continue
		}
		terms = append(terms, token)
		if len(terms) == models.MaxLearnedTermsPerEvent {
			break
		}
	}

	return utility.Dedup(terms)
}
