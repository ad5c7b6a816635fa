package catalogo

import "github.com/avasquez/biblioteca-api/internal/application/dto"

// RegistroExporter serializa un registro bibliográfico desnormalizado a un
// formato de intercambio (implementación actual: Dublin Core XML con etree).
type RegistroExporter interface {
	Exportar(libro dto.LibroResponse) ([]byte, error)
}
