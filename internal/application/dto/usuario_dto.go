package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUsuarioRequest entrada para registrar un lector (password en texto, se hashea en el use case).
type CreateUsuarioRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=1,max=100"`
	Apellido        string `json:"apellido" validate:"required,min=1,max=100"`
	Correo          string `json:"correo" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	NumeroDocumento string `json:"numero_documento" validate:"required"`
	IDTipoDocumento string `json:"id_tipo_documento" validate:"required,uuid"`
}

// UsuarioResponse salida de un usuario (sin password hash).
type UsuarioResponse struct {
	ID              string     `json:"id"`
	Nombre          string     `json:"nombre"`
	Apellido        string     `json:"apellido"`
	Correo          string     `json:"correo"`
	Direccion       string     `json:"direccion,omitempty"`
	Telefono        string     `json:"telefono,omitempty"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento,omitempty"`
	NumeroDocumento string     `json:"numero_documento"`
	TipoDocumento   string     `json:"tipo_documento,omitempty"` // nombre del tipo, no el id
	FechaRegistro   time.Time  `json:"fecha_registro"`
	Activo          bool       `json:"activo"`
}

// UsuarioListResponse lista paginada de usuarios.
type UsuarioListResponse struct {
	Items   []UsuarioResponse `json:"items"`
	Activos int               `json:"activos"`
	Page    PageResponse      `json:"page"`
}

// UsuarioDetalleResponse ficha del usuario: datos personales, estadísticas y
// los historiales de multas y préstamos ya desnormalizados.
type UsuarioDetalleResponse struct {
	UsuarioResponse
	PrestamosActivos int                `json:"prestamos_activos"`
	MultasPendientes int                `json:"multas_pendientes"`
	TotalAdeudado    decimal.Decimal    `json:"total_adeudado"`
	Multas           []MultaResponse    `json:"multas"`
	Prestamos        []PrestamoResponse `json:"prestamos"`
}
