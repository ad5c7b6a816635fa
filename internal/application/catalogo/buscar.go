package catalogo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizar lleva un texto a minúsculas sin tildes ni diéresis, para que la
// búsqueda de catálogo sea insensible a acentos ("Garcia" encuentra "García").
func Normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(plano)
}

// coincide indica si la búsqueda normalizada aparece en el texto normalizado.
func coincide(texto, busqueda string) bool {
	return strings.Contains(Normalizar(texto), Normalizar(busqueda))
}
