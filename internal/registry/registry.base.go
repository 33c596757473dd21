// Package registry fornece uma implementação genérica e thread-safe do
// registry pattern, usada para gerenciar singletons da aplicação
// (collections MongoDB, serviços, etc.).
package registry

import (
	"fmt"
	"sync"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
)

// Registry é um registry genérico protegido por sync.RWMutex.
// O type parameter T permite gerenciar qualquer tipo de objeto.
//
// Exemplo:
//
//	// Cria um registry de strings
//	strRegistry := NewRegistry[string]()
//
//	// Registra um item
//	strRegistry.Register("chave", "valor")
//
//	// Busca um item
//	if valor, existe := strRegistry.Get("chave"); existe {
//	    fmt.Println(valor)
//	}
type Registry[T any] struct {
	items map[string]T // Itens indexados por nome
	mu    sync.RWMutex // Garante thread-safety
}

// NewRegistry cria e retorna um registry novo.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// ====================================
// MÉTODOS DO REGISTRY
// ====================================

// Register registra um item novo no registry.
// Se já existir um item com o mesmo nome, ele é sobrescrito.
//
// Retorna:
//   - isNew: true se o item é novo, false se sobrescreveu um existente
//   - err: erro se o nome for vazio
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("nome não pode ser vazio: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get busca um item pelo nome.
// Retorna o item e um boolean indicando se ele existe.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate busca o item pelo nome e, se não existir, cria via creator.
//
// Exemplo:
//
//	item, err := registry.GetOrCreate("contador", func() (int, error) {
//	    return 0, nil
//	})
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("nome não pode ser vazio: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("falha ao criar o item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update atualiza um item de forma thread-safe via função updater.
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("item não encontrado: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("falha ao atualizar o item: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Clear remove um item do registry.
// Se a função cleanup for fornecida, ela é chamada antes da remoção
// para liberar recursos (ex: fechar conexões).
//
// Retorna:
//   - deleted: true se o item foi removido, false se não existia
//   - err: erro ocorrido durante o cleanup
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("nome não pode ser vazio: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("falha no cleanup do item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll remove todos os itens do registry.
// Se a função cleanup for fornecida, ela é chamada para cada item.
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("falha no cleanup de %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("erros de cleanup: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
