package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	ExistsBySKU(sku string) (bool, error)
	List() ([]*entity.Product, error)
	ListByCategory(category string) ([]*entity.Product, error)
	ListBelowMinimum() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity escribe el nuevo saldo solo si el saldo almacenado sigue
	// siendo expected (compare-and-swap). Devuelve domain.ErrConcurrentUpdate
	// si otra escritura ganó la carrera desde que se leyó el producto.
	UpdateQuantity(id string, quantity, expected int) error
	Delete(id string) error
}
