package entity

import "github.com/shopspring/decimal"

// Tarifa tramo de la tabla de tarifas por retraso: a un rango de días de
// retraso [Min, Max] le corresponde un monto por día.
type Tarifa struct {
	ID             string
	DiasRetrasoMin int
	DiasRetrasoMax int
	MontoPorDia    decimal.Decimal
	Descripcion    string
}

// Cubre indica si el tramo aplica para la cantidad de días de retraso dada.
func (t Tarifa) Cubre(dias int) bool {
	return dias >= t.DiasRetrasoMin && dias <= t.DiasRetrasoMax
}
