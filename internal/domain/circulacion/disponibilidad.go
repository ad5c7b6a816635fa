// Package circulacion contiene las reglas puras de circulación de la
// biblioteca: disponibilidad de ejemplares, estados derivados de préstamos y
// reservas, y cálculo/agregación de multas. Ninguna función toca I/O ni lee el
// reloj del sistema; la fecha actual siempre llega como argumento.
package circulacion

import "github.com/avasquez/biblioteca-api/internal/domain/entity"

// Disponibles devuelve los ejemplares de un libro que pueden prestarse hoy:
// los de estado "activo" sin préstamo abierto que los referencie.
// El conteo de disponibles es len(resultado); derivarlo de la misma lista
// evita que conteo y detalle diverjan cuando un préstamo abierto apunta a un
// ejemplar no activo.
func Disponibles(ejemplares []entity.Ejemplar, prestamos []entity.Prestamo) []entity.Ejemplar {
	prestados := make(map[string]struct{}, len(prestamos))
	for _, p := range prestamos {
		if p.Abierto() {
			prestados[p.IDEjemplar] = struct{}{}
		}
	}

	disponibles := make([]entity.Ejemplar, 0, len(ejemplares))
	for _, e := range ejemplares {
		if e.Estado != entity.EjemplarActivo {
			continue
		}
		if _, ocupado := prestados[e.ID]; ocupado {
			continue
		}
		disponibles = append(disponibles, e)
	}
	return disponibles
}
