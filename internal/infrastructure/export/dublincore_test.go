package export_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/infrastructure/export"
)

func TestDublinCore_RegistroCompleto(t *testing.T) {
	exporter := export.NewDublinCoreExporter()

	out, err := exporter.Exportar(dto.LibroResponse{
		ID:                 "lib-1",
		Titulo:             "Cien años de soledad",
		ISBN:               "978-0307474728",
		AnioPublicacion:    1967,
		ClasificacionDewey: "863.64",
		Descripcion:        "La saga de la familia Buendía en Macondo.",
		Editorial:          &dto.EditorialResponse{ID: "edi-1", Nombre: "Sudamericana"},
		Autores: []dto.AutorResponse{
			{ID: "aut-1", Nombre: "Gabriel García Márquez", Rol: "principal"},
		},
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("oai_dc:dc")
	require.NotNil(t, root)
	assert.Equal(t, "Cien años de soledad", root.SelectElement("dc:title").Text())
	assert.Equal(t, "Gabriel García Márquez", root.SelectElement("dc:creator").Text())
	assert.Equal(t, "Sudamericana", root.SelectElement("dc:publisher").Text())
	assert.Equal(t, "1967", root.SelectElement("dc:date").Text())
	assert.Equal(t, "ISBN:978-0307474728", root.SelectElement("dc:identifier").Text())
	assert.Equal(t, "Dewey:863.64", root.SelectElement("dc:subject").Text())
}

func TestDublinCore_CamposAusentesNoEmiten(t *testing.T) {
	exporter := export.NewDublinCoreExporter()

	out, err := exporter.Exportar(dto.LibroResponse{
		ID:     "lib-2",
		Titulo: "Manuscrito sin datos",
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("oai_dc:dc")
	require.NotNil(t, root)
	assert.NotNil(t, root.SelectElement("dc:title"))
	assert.Nil(t, root.SelectElement("dc:publisher"))
	assert.Nil(t, root.SelectElement("dc:date"))
	assert.Nil(t, root.SelectElement("dc:identifier"))
	assert.Empty(t, root.SelectElements("dc:creator"))
}
