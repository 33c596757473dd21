package basehdl

import (
	"fmt"
	"reflect"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/anderleilucio/orcasmart-web-sub000/internal/api/base/service"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/utility"
)

// ====================================
// OPERAÇÕES DE ESCRITA
// ====================================

// InsertOne cria um novo documento a partir do CreateInput do body.
// O ownerId é SEMPRE o do token autenticado, nunca o do body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.transformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Erro ao converter os dados de entrada: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if h.hasOwnerIDField() {
			ownerID, err := h.RequireOwnerID(c)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			h.setOwnerID(model, ownerID)
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// InsertMany cria vários documentos a partir de um array de CreateInput
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var inputs []CreateInput
		if err := h.ParseRequestBody(c, &inputs); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if len(inputs) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"A lista de documentos não pode ser vazia",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		ownerID := ""
		if h.hasOwnerIDField() {
			var err error
			ownerID, err = h.RequireOwnerID(c)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		models := make([]T, 0, len(inputs))
		for i := range inputs {
			model, err := h.transformCreateInputToModel(&inputs[i])
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Erro ao converter o documento na posição %d: %v", i, err),
					common.StatusBadRequest,
					err,
				))
				return nil
			}
			if ownerID != "" {
				h.setOwnerID(model, ownerID)
			}
			models = append(models, *model)
		}

		data, err := h.BaseService.InsertMany(c.Context(), models)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ====================================
// OPERAÇÕES DE LEITURA
// ====================================

// FindOne busca um documento pelo filter da query string, dentro do escopo do owner
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		opts, err := h.processMongoOptions(c, true)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		data, err := h.BaseService.FindOne(c.Context(), scopedFilter, opts.(*mongoopts.FindOneOptions))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById busca um documento pelo ID da URI, dentro do escopo do owner
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		objID, err := h.parseObjectID(id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		filter := h.applyOwnerFilter(c, bson.M{"_id": objID})

		data, err := h.BaseService.FindOne(c.Context(), filter, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindManyByIds busca vários documentos pelos IDs do body ({"ids": [...]})
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input struct {
			IDs []string `json:"ids" validate:"required,min=1"`
		}
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		objIDs := make([]primitive.ObjectID, 0, len(input.IDs))
		for _, id := range input.IDs {
			objID, err := h.parseObjectID(id)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			objIDs = append(objIDs, objID)
		}

		filter := h.applyOwnerFilter(c, bson.M{"_id": bson.M{"$in": objIDs}})

		data, err := h.BaseService.Find(c.Context(), filter, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindWithPagination busca documentos com paginação (?page=&limit=&filter=&options=)
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		opts, err := h.processMongoOptions(c, false)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		data, err := h.BaseService.FindWithPagination(c.Context(), scopedFilter, page, limit, opts.(*mongoopts.FindOptions))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find busca documentos pelo filter da query string, sem paginação
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		opts, err := h.processMongoOptions(c, false)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		data, err := h.BaseService.Find(c.Context(), scopedFilter, opts.(*mongoopts.FindOptions))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ====================================
// OPERAÇÕES DE ATUALIZAÇÃO
// ====================================

// UpdateOne atualiza o primeiro documento que casa com o filter.
// Somente os campos non-zero do UpdateInput entram no $set (partial update).
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updateData, err := h.buildUpdateFromBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		data, err := h.BaseService.UpdateOne(c.Context(), scopedFilter, updateData, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateMany atualiza todos os documentos que casam com o filter.
// Retorna a quantidade de documentos modificados.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updateData, err := h.buildUpdateFromBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		count, err := h.BaseService.UpdateMany(c.Context(), scopedFilter, updateData, nil)
		h.HandleResponse(c, map[string]interface{}{"modifiedCount": count}, err)
		return nil
	})
}

// UpdateById atualiza um documento pelo ID da URI, dentro do escopo do owner
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		objID, err := h.parseObjectID(id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updateData, err := h.buildUpdateFromBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		filter := h.applyOwnerFilter(c, bson.M{"_id": objID})

		data, err := h.BaseService.UpdateOne(c.Context(), filter, updateData, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// buildUpdateFromBody faz o parse do body como UpdateInput e monta o UpdateData de partial update.
// Campos zero do input são ignorados: o cliente só altera o que enviar.
func (h *BaseHandler[T, CreateInput, UpdateInput]) buildUpdateFromBody(c fiber.Ctx) (*basesvc.UpdateData, error) {
	var input UpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return nil, err
	}

	model, err := h.transformUpdateInputToModel(&input)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Erro ao converter os dados de atualização: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	modelMap, err := utility.ToMap(model)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Erro ao converter o model para map: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}

	updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}
	for k, v := range modelMap {
		// _id e ownerId nunca entram no $set
		if k == "_id" || k == "ownerId" {
			continue
		}
		if rv := reflect.ValueOf(v); rv.IsValid() && !rv.IsZero() {
			updateData.Set[k] = v
		}
	}

	if len(updateData.Set) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Nenhum campo válido para atualizar",
			common.StatusBadRequest,
			nil,
		)
	}

	return updateData, nil
}

// ====================================
// OPERAÇÕES DE REMOÇÃO
// ====================================

// DeleteOne remove o primeiro documento que casa com o filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		err = h.BaseService.DeleteOne(c.Context(), scopedFilter)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// DeleteMany remove todos os documentos que casam com o filter.
// Retorna a quantidade de documentos removidos.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		count, err := h.BaseService.DeleteMany(c.Context(), scopedFilter)
		h.HandleResponse(c, map[string]interface{}{"deletedCount": count}, err)
		return nil
	})
}

// DeleteById remove um documento pelo ID da URI, dentro do escopo do owner
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		objID, err := h.parseObjectID(id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		filter := h.applyOwnerFilter(c, bson.M{"_id": objID})

		err = h.BaseService.DeleteOne(c.Context(), filter)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// ====================================
// OPERAÇÕES ATÔMICAS
// ====================================

// FindOneAndUpdate atualiza e retorna o documento em uma única operação atômica
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updateData, err := h.buildUpdateFromBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
		data, err := h.BaseService.FindOneAndUpdate(c.Context(), scopedFilter, updateData, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneAndDelete remove e retorna o documento em uma única operação atômica
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		data, err := h.BaseService.FindOneAndDelete(c.Context(), scopedFilter, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ====================================
// OPERAÇÕES DE AGREGAÇÃO
// ====================================

// CountDocuments conta os documentos que casam com o filter, dentro do escopo do owner
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		count, err := h.BaseService.CountDocuments(c.Context(), scopedFilter)
		h.HandleResponse(c, map[string]interface{}{"count": count}, err)
		return nil
	})
}

// Distinct retorna os valores distintos de um campo (?field=...&filter=...)
func (h *BaseHandler[T, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		fieldName := c.Query("field", "")
		if fieldName == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Parâmetro 'field' é obrigatório",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if utility.Contains(h.filterOptions.DeniedFields, fieldName) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Campo '%s' não é permitido em distinct por motivo de segurança", fieldName),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		values, err := h.BaseService.Distinct(c.Context(), fieldName, scopedFilter)
		h.HandleResponse(c, values, err)
		return nil
	})
}

// ====================================
// UPSERT E EXISTÊNCIA
// ====================================

// Upsert atualiza o documento que casa com o filter ou cria um novo quando não existe
func (h *BaseHandler[T, CreateInput, UpdateInput]) Upsert(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.transformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Erro ao converter os dados de entrada: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if h.hasOwnerIDField() {
			ownerID, err := h.RequireOwnerID(c)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			h.setOwnerID(model, ownerID)
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		data, err := h.BaseService.Upsert(c.Context(), scopedFilter, *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DocumentExists verifica se existe documento que casa com o filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		scopedFilter := h.applyOwnerFilter(c, bson.M(filter))

		exists, err := h.BaseService.DocumentExists(c.Context(), scopedFilter)
		h.HandleResponse(c, map[string]interface{}{"exists": exists}, err)
		return nil
	})
}

// parseObjectID valida e converte um ID de URI em ObjectID
func (h *BaseHandler[T, CreateInput, UpdateInput]) parseObjectID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID não pode ser vazio nos parâmetros da URL",
			common.StatusBadRequest,
			nil,
		)
	}

	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' não está no formato de ObjectID do MongoDB (hex de 24 caracteres)", id),
			common.StatusBadRequest,
			nil,
		)
	}

	return utility.String2ObjectID(id), nil
}
