package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. CurrentQuantity nunca se
// edita por esta vía: solo el libro de stock lo muta.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// Create registra un producto nuevo con saldo 0. El SKU debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.SKU, in.Name, in.Category, in.UnitPrice, in.MinimumQuantity); err != nil {
		return nil, err
	}
	exists, err := uc.productRepo.ExistsBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateSKU
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		SKU:             in.SKU,
		Name:            in.Name,
		Category:        in.Category,
		UnitPrice:       in.UnitPrice,
		MinimumQuantity: in.MinimumQuantity,
		CurrentQuantity: 0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// GetBySKU obtiene un producto por su código SKU.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := dto.NewProductListResponse(products)
	return &out, nil
}

// ListByCategory lista productos de una categoría.
func (uc *ProductUseCase) ListByCategory(category string) (*dto.ProductListResponse, error) {
	if !entity.IsValidCategory(category) {
		return nil, &domain.ValidationError{Field: "category", Reason: "categoría desconocida"}
	}
	products, err := uc.productRepo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductListResponse(products)
	return &out, nil
}

// ListLowStock lista productos con saldo por debajo del umbral de reorden.
func (uc *ProductUseCase) ListLowStock() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	out := dto.NewProductListResponse(products)
	return &out, nil
}

// Update edita campos del producto (sku, nombre, categoría, precio, umbral).
// El saldo no es editable; un cambio de SKU re-verifica unicidad.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.SKU != nil && *in.SKU != product.SKU {
		existing, err := uc.productRepo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, domain.ErrDuplicateSKU
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.MinimumQuantity != nil {
		product.MinimumQuantity = *in.MinimumQuantity
	}
	if err := validateProductFields(product.SKU, product.Name, product.Category, product.UnitPrice, product.MinimumQuantity); err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// Delete elimina un producto y, en cascada, sus movimientos: un movimiento no
// tiene ciclo de vida propio sin su producto.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.movementRepo.DeleteByProduct(id); err != nil {
		return err
	}
	return uc.productRepo.Delete(id)
}

// validateProductFields reglas de registro: SKU y nombre no vacíos, categoría
// conocida, precio positivo, umbral no negativo.
func validateProductFields(sku, name, category string, unitPrice decimal.Decimal, minimumQuantity int) error {
	if strings.TrimSpace(sku) == "" {
		return &domain.ValidationError{Field: "sku", Reason: "el código SKU es obligatorio"}
	}
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "el nombre es obligatorio"}
	}
	if !entity.IsValidCategory(category) {
		return &domain.ValidationError{Field: "category", Reason: "categoría desconocida"}
	}
	if !unitPrice.GreaterThan(decimal.Zero) {
		return &domain.ValidationError{Field: "unit_price", Reason: "el precio unitario debe ser mayor que cero"}
	}
	if minimumQuantity < 0 {
		return &domain.ValidationError{Field: "minimum_quantity", Reason: "la cantidad mínima no puede ser negativa"}
	}
	return nil
}
