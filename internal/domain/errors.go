package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrEjemplarNoDisponible = errors.New("ejemplar no disponible para préstamo")
	ErrUsuarioInactivo      = errors.New("usuario inactivo")
	ErrPrestamoCerrado      = errors.New("el préstamo ya fue devuelto")
	ErrMultaPagada          = errors.New("la multa ya está pagada")
)
