package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EditorialResponse editorial unida a un libro.
type EditorialResponse struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Pais          string `json:"pais"`
	AnioFundacion int    `json:"anio_fundacion,omitempty"`
	SitioWeb      string `json:"sitio_web,omitempty"`
}

// AutorResponse autor unido a un libro, con el rol que cumple en él.
type AutorResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Nacionalidad string `json:"nacionalidad,omitempty"`
	Rol          string `json:"rol,omitempty"`
}

// LibroResponse libro desnormalizado: editorial y autores ya unidos.
// Editorial es nil si el libro no tiene editorial registrada.
type LibroResponse struct {
	ID                 string             `json:"id"`
	Titulo             string             `json:"titulo"`
	ISBN               string             `json:"isbn"`
	AnioPublicacion    int                `json:"anio_publicacion"`
	NumeroPaginas      int                `json:"numero_paginas"`
	ClasificacionDewey string             `json:"clasificacion_dewey,omitempty"`
	Descripcion        string             `json:"descripcion,omitempty"`
	Editorial          *EditorialResponse `json:"editorial,omitempty"`
	Autores            []AutorResponse    `json:"autores"`
}

// LibroListResponse lista paginada del catálogo.
type LibroListResponse struct {
	Items []LibroResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// EjemplarResponse ejemplar físico de un libro.
type EjemplarResponse struct {
	ID                string          `json:"id"`
	CodigoInterno     string          `json:"codigo_interno"`
	Estado            string          `json:"estado"`
	Ubicacion         string          `json:"ubicacion,omitempty"`
	FechaAdquisicion  time.Time       `json:"fecha_adquisicion"`
	PrecioAdquisicion decimal.Decimal `json:"precio_adquisicion"`
}

// LibroDetalleResponse detalle del libro con sus ejemplares y disponibilidad.
// Disponibles es la cantidad de ejemplares prestables en este momento.
type LibroDetalleResponse struct {
	LibroResponse
	Ejemplares  []EjemplarResponse `json:"ejemplares"`
	Disponibles int                `json:"disponibles"`
}
