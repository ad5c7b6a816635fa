package entity

import "time"

// Libro representa un título del catálogo. Los ejemplares físicos se manejan
// aparte en Ejemplar; la editorial y los autores se unen por identificador.
type Libro struct {
	ID                 string
	Titulo             string
	ISBN               string
	AnioPublicacion    int
	IDEditorial        string // vacío = sin editorial registrada
	NumeroPaginas      int
	Descripcion        string
	ClasificacionDewey string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
