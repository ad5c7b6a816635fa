package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsuarioResumen referencia mínima a un usuario en listados de circulación.
type UsuarioResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"` // nombre completo
}

// LibroResumen referencia mínima a un libro en listados de circulación.
type LibroResumen struct {
	ID     string `json:"id"`
	Titulo string `json:"titulo"`
}

// CrearPrestamoRequest entrada para registrar un préstamo.
// FechaDevolucionPrevista en formato 2006-01-02; vacía = fecha de préstamo + 14 días.
type CrearPrestamoRequest struct {
	IDUsuario               string `json:"id_usuario" validate:"required,uuid"`
	IDEjemplar              string `json:"id_ejemplar" validate:"required,uuid"`
	FechaDevolucionPrevista string `json:"fecha_devolucion_prevista" validate:"omitempty,datetime=2006-01-02"`
}

// PrestamoResponse préstamo desnormalizado con estado derivado por fechas.
// Usuario/Libro son nil cuando la referencia no resuelve (dato huérfano).
type PrestamoResponse struct {
	ID                      string          `json:"id"`
	Usuario                 *UsuarioResumen `json:"usuario,omitempty"`
	Libro                   *LibroResumen   `json:"libro,omitempty"`
	CodigoInterno           string          `json:"codigo_interno,omitempty"`
	FechaPrestamo           time.Time       `json:"fecha_prestamo"`
	FechaDevolucionPrevista time.Time       `json:"fecha_devolucion_prevista"`
	FechaDevolucionReal     *time.Time      `json:"fecha_devolucion_real,omitempty"`
	Estado                  string          `json:"estado"` // activo | atrasado | devuelto
	NumeroRenovaciones      int             `json:"numero_renovaciones"`
}

// PrestamoListResponse lista paginada de préstamos con el total de abiertos.
type PrestamoListResponse struct {
	Items   []PrestamoResponse `json:"items"`
	Activos int                `json:"activos"`
	Page    PageResponse       `json:"page"`
}

// DevolucionResponse resultado de registrar una devolución. Multa es nil si se
// devolvió a tiempo o no hay tarifa aplicable.
type DevolucionResponse struct {
	Prestamo PrestamoResponse `json:"prestamo"`
	Multa    *MultaResponse   `json:"multa,omitempty"`
}

// CrearReservaRequest entrada para reservar un ejemplar.
// FechaExpiracion en formato 2006-01-02; vacía = fecha de reserva + 7 días.
type CrearReservaRequest struct {
	IDUsuario       string `json:"id_usuario" validate:"required,uuid"`
	IDEjemplar      string `json:"id_ejemplar" validate:"required,uuid"`
	FechaExpiracion string `json:"fecha_expiracion" validate:"omitempty,datetime=2006-01-02"`
}

// ReservaResponse reserva desnormalizada con estado derivado (incluye "expirada").
type ReservaResponse struct {
	ID              string          `json:"id"`
	Usuario         *UsuarioResumen `json:"usuario,omitempty"`
	Libro           *LibroResumen   `json:"libro,omitempty"`
	CodigoInterno   string          `json:"codigo_interno,omitempty"`
	FechaReserva    time.Time       `json:"fecha_reserva"`
	FechaExpiracion time.Time       `json:"fecha_expiracion"`
	Estado          string          `json:"estado"` // activa | expirada | completada | cancelada
}

// ReservaListResponse lista paginada de reservas.
type ReservaListResponse struct {
	Items   []ReservaResponse `json:"items"`
	Activas int               `json:"activas"`
	Page    PageResponse      `json:"page"`
}

// MultaResponse multa con la cadena préstamo → ejemplar → libro ya unida.
type MultaResponse struct {
	ID            string          `json:"id"`
	IDPrestamo    string          `json:"id_prestamo"`
	Libro         *LibroResumen   `json:"libro,omitempty"`
	CodigoInterno string          `json:"codigo_interno,omitempty"`
	DiasRetraso   int             `json:"dias_retraso"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
	FechaPago     *time.Time      `json:"fecha_pago,omitempty"`
	Pagada        bool            `json:"pagada"`
}
