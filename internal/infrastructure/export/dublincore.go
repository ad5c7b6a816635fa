// Package export serializa registros bibliográficos a formatos de intercambio
// entre bibliotecas.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/avasquez/biblioteca-api/internal/application/catalogo"
	"github.com/avasquez/biblioteca-api/internal/application/dto"
)

var _ catalogo.RegistroExporter = (*DublinCoreExporter)(nil)

// DublinCoreExporter serializa un libro como registro Dublin Core XML
// (contenedor oai_dc, el formato mínimo que todo agregador OAI-PMH acepta).
type DublinCoreExporter struct{}

// NewDublinCoreExporter construye el exportador.
func NewDublinCoreExporter() *DublinCoreExporter {
	return &DublinCoreExporter{}
}

// Exportar genera el XML del registro. Los campos ausentes del libro
// simplemente no emiten elemento.
func (e *DublinCoreExporter) Exportar(libro dto.LibroResponse) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("oai_dc:dc")
	root.CreateAttr("xmlns:oai_dc", "http://www.openarchives.org/OAI/2.0/oai_dc/")
	root.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")

	root.CreateElement("dc:title").SetText(libro.Titulo)
	for _, a := range libro.Autores {
		root.CreateElement("dc:creator").SetText(a.Nombre)
	}
	if libro.Editorial != nil {
		root.CreateElement("dc:publisher").SetText(libro.Editorial.Nombre)
	}
	if libro.AnioPublicacion != 0 {
		root.CreateElement("dc:date").SetText(strconv.Itoa(libro.AnioPublicacion))
	}
	if libro.ISBN != "" {
		root.CreateElement("dc:identifier").SetText("ISBN:" + libro.ISBN)
	}
	if libro.ClasificacionDewey != "" {
		root.CreateElement("dc:subject").SetText("Dewey:" + libro.ClasificacionDewey)
	}
	if libro.Descripcion != "" {
		root.CreateElement("dc:description").SetText(libro.Descripcion)
	}
	root.CreateElement("dc:type").SetText("Text")

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export dublin core: %w", err)
	}
	return out, nil
}
