package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateSKU      = errors.New("SKU ya registrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrConcurrentUpdate  = errors.New("conflicto de actualización concurrente")
)

// ValidationError detalla qué campo de un movimiento o producto fue rechazado.
// errors.Is(err, ErrInvalidInput) devuelve true para cualquier ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InsufficientStockError lleva el saldo disponible y el solicitado para que el
// caller pueda armar un mensaje preciso.
// errors.Is(err, ErrInsufficientStock) devuelve true.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente. Disponible: %d, Solicitado: %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
