// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en tests y como backend sin base de datos.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository adaptador en memoria del puerto ProductRepository.
// Devuelve copias: los callers nunca comparten punteros con el almacén.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
}

// NewProductRepository construye el adaptador vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*entity.Product)}
}

// Create persiste un producto nuevo. SKU duplicado devuelve ErrDuplicateSKU.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

// GetBySKU obtiene un producto por SKU; nil si no existe.
func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

// ExistsBySKU indica si ya hay un producto con ese SKU.
func (r *ProductRepository) ExistsBySKU(sku string) (bool, error) {
	p, err := r.GetBySKU(sku)
	return p != nil, err
}

// List lista todos los productos ordenados por fecha de creación descendente.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(*entity.Product) bool { return true }), nil
}

// ListByCategory lista los productos de una categoría.
func (r *ProductRepository) ListByCategory(category string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(p *entity.Product) bool { return p.Category == category }), nil
}

// ListBelowMinimum lista los productos con saldo bajo el umbral de reorden.
func (r *ProductRepository) ListBelowMinimum() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(p *entity.Product) bool { return p.IsLowStock() }), nil
}

// Update reemplaza los campos del producto. SKU duplicado contra otro producto
// devuelve ErrDuplicateSKU; producto inexistente devuelve ErrNotFound.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.products {
		if p.ID != product.ID && p.SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	clone := *product
	// El saldo no viaja en Update: se preserva el del almacén.
	clone.CurrentQuantity = current.CurrentQuantity
	r.products[product.ID] = &clone
	return nil
}

// UpdateQuantity escribe el saldo solo si el almacenado sigue siendo expected.
func (r *ProductRepository) UpdateQuantity(id string, quantity, expected int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.CurrentQuantity != expected {
		return domain.ErrConcurrentUpdate
	}
	p.CurrentQuantity = quantity
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// filterLocked requiere el lock tomado por el caller.
func (r *ProductRepository) filterLocked(keep func(*entity.Product) bool) []*entity.Product {
	var list []*entity.Product
	for _, p := range r.products {
		if keep(p) {
			clone := *p
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].SKU < list[j].SKU
	})
	return list
}
