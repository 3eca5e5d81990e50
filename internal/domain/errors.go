package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	// ErrConsistency indica que una operación compuesta (pedido + deuda + stock)
	// no pudo confirmarse de forma atómica. Es reintentable por el cliente.
	ErrConsistency = errors.New("la transacción no pudo confirmarse")
)
