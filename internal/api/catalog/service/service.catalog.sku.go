// Package catalogsvc - Alocador de SKU (catalog_counters).
//
// A emissão é um único read-modify-write atômico: FindOneAndUpdate com $inc e
// upsert, devolvendo o documento depois do incremento. Sob N chamadas
// concorrentes para a mesma chave saem N números distintos e contíguos.
// O contador nunca é removido e número emitido nunca é reutilizado.
package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/service"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/logger"
)

// maxAllocRetries limita o retry da alocação em erro transitório do store
const maxAllocRetries = 3

// SkuService emite números sequenciais de SKU por namespace de prefix.
type SkuService struct {
	*basesvc.BaseServiceMongoImpl[models.SkuCounter]
}

// NewSkuService cria um SkuService novo.
func NewSkuService() (*SkuService, error) {
	coll, exist := global.RegistryCollections.Get(global.CatalogColNames.Counters)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.CatalogColNames.Counters, common.ErrNotFound)
	}
	return &SkuService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SkuCounter](coll),
	}, nil
}

// CounterKey monta a chave do contador conforme o escopo escolhido.
// ScopeGlobal chaveia só pelo prefix; ScopeOwner chaveia por ownerId:prefix.
func CounterKey(scope, ownerID, prefix string) (string, error) {
	switch scope {
	case models.ScopeGlobal:
		return prefix, nil
	case models.ScopeOwner:
		if ownerID == "" {
			return "", common.NewValidationError("ownerId é obrigatório no escopo por vendedor")
		}
		return ownerID + ":" + prefix, nil
	default:
		return "", common.NewValidationError(
			fmt.Sprintf("escopo de contador desconhecido: '%s' (use owner ou global)", scope))
	}
}

// FormatSku formata o SKU como PREFIX-NNNN com zero à esquerda em 4 dígitos.
// Sequências acima de 9999 imprimem na largura natural.
func FormatSku(prefix string, sequence int64) string {
	return fmt.Sprintf("%s-%0*d", prefix, models.SkuPadWidth, sequence)
}

// NextSequence incrementa e devolve atomicamente a próxima sequência da chave.
// O prefix já chega validado pelo caller; aqui é só uma chave opaca de namespace.
func (s *SkuService) NextSequence(ctx context.Context, scope, ownerID, prefix string) (int64, error) {
	key, err := CounterKey(scope, ownerID, prefix)
	if err != nil {
		return 0, err
	}

	filter := bson.M{"key": key}
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"next": int64(1)},
		SetOnInsert: map[string]interface{}{
			"key":    key,
			"prefix": prefix,
		},
	}
	if scope == models.ScopeOwner {
		update.SetOnInsert["ownerId"] = ownerID
	}

	var lastErr error
	for attempt := 0; attempt < maxAllocRetries; attempt++ {
		counter, err := s.Upsert(ctx, filter, update)
		if err == nil {
			return counter.Next, nil
		}
		lastErr = err
		// Corrida na criação lazy do contador (duplicate key do índice único em
		// key) ou contenção transitória: repete; o $inc garante não duplicar.
		if !common.IsTransient(err) && !mongo.IsDuplicateKeyError(err) && !errors.Is(err, common.ErrDuplicate) {
			return 0, err
		}
		logger.WithModuleAndCollection("catalog", global.CatalogColNames.Counters).
			WithField("key", key).
			WithField("attempt", attempt+1).
			Warn("NextSequence: conflito no contador, tentando de novo")
	}

	return 0, common.NewError(
		common.ErrCodeDatabaseTransient,
		fmt.Sprintf("Alocação de SKU para a chave '%s' falhou após %d tentativas", key, maxAllocRetries),
		common.StatusServiceUnavailable,
		lastErr,
	)
}

// NextSku emite o próximo SKU formatado do namespace.
func (s *SkuService) NextSku(ctx context.Context, scope, ownerID, prefix string) (string, int64, error) {
	sequence, err := s.NextSequence(ctx, scope, ownerID, prefix)
	if err != nil {
		return "", 0, err
	}
	return FormatSku(prefix, sequence), sequence, nil
}

// PeekNextSku devolve o próximo SKU provável SEM incrementar o contador.
// Leitura best-effort para preview de interface; não reserva o número.
func (s *SkuService) PeekNextSku(ctx context.Context, scope, ownerID, prefix string) (string, error) {
	key, err := CounterKey(scope, ownerID, prefix)
	if err != nil {
		return "", err
	}

	counter, err := s.FindOne(ctx, bson.M{"key": key}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return FormatSku(prefix, 1), nil
		}
		return "", err
	}
	return FormatSku(prefix, counter.Next+1), nil
}
