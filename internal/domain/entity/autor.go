package entity

import "time"

// Autor persona que participa en uno o más libros.
type Autor struct {
	ID              string
	Nombre          string
	Nacionalidad    string
	FechaNacimiento *time.Time
	Biografia       string
}

// AutorDeLibro fila de la asociación libros_autores: un autor con el rol que
// cumple en un libro concreto (autor, coautor, traductor, ilustrador...).
type AutorDeLibro struct {
	IDLibro string
	Rol     string
	Autor   Autor
}
