package entity

// Editorial casa editora de uno o más libros del catálogo.
type Editorial struct {
	ID            string
	Nombre        string
	Pais          string
	AnioFundacion int
	SitioWeb      string
}
