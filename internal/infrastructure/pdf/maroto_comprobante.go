// Package pdf genera el comprobante de préstamo que se entrega impreso al
// lector en el mostrador.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Biblioteca  │  N° Préstamo + Fecha   │
//	│  ───────────────────────────────────────────  │
//	│  LECTOR: Nombre + documento + contacto        │
//	│  MATERIAL: Título + código interno            │
//	│  ───────────────────────────────────────────  │
//	│  FECHAS: préstamo / devolución prevista       │
//	│  ───────────────────────────────────────────  │
//	│  QR con el identificador + leyenda            │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoComprobanteGenerator implementa circulacion.ComprobantePDFGenerator
// usando Maroto v2.
type MarotoComprobanteGenerator struct{}

// NewMarotoComprobanteGenerator construye el generador.
func NewMarotoComprobanteGenerator() *MarotoComprobanteGenerator {
	return &MarotoComprobanteGenerator{}
}

var _ circulacion.ComprobantePDFGenerator = (*MarotoComprobanteGenerator)(nil)

// GenerarComprobante genera el PDF y devuelve sus bytes.
func (g *MarotoComprobanteGenerator) GenerarComprobante(_ context.Context, data circulacion.ComprobanteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Préstamo", true).
		WithAuthor(data.Biblioteca, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(lectorRow(data))
	m.AddRows(materialRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(fechasRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la biblioteca (izq) y número + fecha del préstamo (der).
func headerRow(data circulacion.ComprobanteData) core.Row {
	fecha := data.Prestamo.FechaPrestamo.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Biblioteca, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de préstamo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PRÉSTAMO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(data.Prestamo.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// lectorRow: datos del lector.
func lectorRow(data circulacion.ComprobanteData) core.Row {
	nombre := "—"
	contacto := "—"
	if data.Usuario != nil {
		nombre = data.Usuario.NombreCompleto()
		contacto = fmt.Sprintf("Documento: %s   |   Correo: %s",
			nonEmpty(data.Usuario.NumeroDocumento, "—"),
			nonEmpty(data.Usuario.Correo, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("LECTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contacto, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// materialRow: título del libro y código interno del ejemplar prestado.
func materialRow(data circulacion.ComprobanteData) core.Row {
	titulo := "—"
	if data.Libro != nil {
		titulo = data.Libro.Titulo
	}
	codigo := "—"
	ubicacion := "—"
	if data.Ejemplar != nil {
		codigo = data.Ejemplar.CodigoInterno
		ubicacion = nonEmpty(data.Ejemplar.Ubicacion, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("MATERIAL PRESTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Ejemplar: %s   |   Ubicación: %s", codigo, ubicacion),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// fechasRow: fecha de préstamo y fecha límite de devolución.
func fechasRow(data circulacion.ComprobanteData) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Fecha de préstamo", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Prestamo.FechaPrestamo.Format("02/01/2006"), props.Text{
				Size: 10, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("Devolver antes de", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.Prestamo.FechaDevolucionPrevista.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
		),
	)
}

// qrRow: QR con el identificador del préstamo para la devolución en mostrador.
func qrRow(data circulacion.ComprobanteData) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(data.Prestamo.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Presenta este comprobante al devolver\nel material.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("La devolución tardía genera multa\nsegún la tabla de tarifas vigente.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 18,
				Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID usa el primer bloque del UUID como número visible del comprobante.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
