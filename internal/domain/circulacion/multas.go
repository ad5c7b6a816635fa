package circulacion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

// ResumenMultas totales de multas sin pagar de un usuario.
type ResumenMultas struct {
	Pendientes    int
	TotalAdeudado decimal.Decimal
}

// ResumirMultas cuenta y suma las multas no pagadas. La suma usa aritmética
// decimal exacta; los montos son dinero y no toleran deriva de redondeo.
func ResumirMultas(multas []entity.Multa) ResumenMultas {
	resumen := ResumenMultas{TotalAdeudado: decimal.Zero}
	for _, m := range multas {
		if m.Pagada {
			continue
		}
		resumen.Pendientes++
		resumen.TotalAdeudado = resumen.TotalAdeudado.Add(m.MontoTotal)
	}
	return resumen
}

// DiasRetraso días calendario completos entre la fecha prevista y la fecha de
// devolución real. Devuelve 0 si se devolvió a tiempo o antes.
func DiasRetraso(prevista, real time.Time) int {
	dias := int(truncarDia(real).Sub(truncarDia(prevista)).Hours() / 24)
	if dias < 0 {
		return 0
	}
	return dias
}

// SeleccionarTarifa busca el tramo cuyo rango [min, max] cubre los días de
// retraso. Si el retraso supera todos los tramos, aplica el de rango más alto;
// devuelve nil si no hay retraso o la tabla está vacía.
func SeleccionarTarifa(dias int, tarifas []entity.Tarifa) *entity.Tarifa {
	if dias <= 0 || len(tarifas) == 0 {
		return nil
	}
	var mayor *entity.Tarifa
	for i := range tarifas {
		t := &tarifas[i]
		if t.Cubre(dias) {
			return t
		}
		if mayor == nil || t.DiasRetrasoMax > mayor.DiasRetrasoMax {
			mayor = t
		}
	}
	if mayor != nil && dias > mayor.DiasRetrasoMax {
		return mayor
	}
	return nil
}

// CalcularMonto monto de la multa: días de retraso por el monto diario del tramo.
func CalcularMonto(dias int, tarifa entity.Tarifa) decimal.Decimal {
	if dias <= 0 {
		return decimal.Zero
	}
	return tarifa.MontoPorDia.Mul(decimal.NewFromInt(int64(dias)))
}
