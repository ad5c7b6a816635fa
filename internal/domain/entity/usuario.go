package entity

import "time"

// TipoDocumento catálogo de tipos de documento de identidad (CC, TI, pasaporte...).
type TipoDocumento struct {
	ID     string
	Nombre string
}

// Usuario lector registrado en la biblioteca.
type Usuario struct {
	ID              string
	Nombre          string
	Apellido        string
	Correo          string
	PasswordHash    string
	Direccion       string
	Telefono        string
	FechaNacimiento *time.Time
	NumeroDocumento string
	IDTipoDocumento string
	FechaRegistro   time.Time
	Activo          bool
}

// NombreCompleto devuelve "Nombre Apellido" para listados y comprobantes.
func (u Usuario) NombreCompleto() string {
	return u.Nombre + " " + u.Apellido
}
