package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ repository.MultaRepository = (*MultaRepo)(nil)
var _ repository.TarifaRepository = (*TarifaRepo)(nil)

const multaColumns = `id::text, id_prestamo::text, COALESCE(id_tarifa::text, ''), dias_retraso, monto_total, fecha_pago, pagada`

// MultaRepo implementación del puerto MultaRepository sobre PostgreSQL.
type MultaRepo struct {
	q Querier
}

// NewMultaRepository construye el adaptador de persistencia para multas.
func NewMultaRepository(q Querier) *MultaRepo {
	return &MultaRepo{q: q}
}

// Create persiste una nueva multa.
func (r *MultaRepo) Create(m *entity.Multa) error {
	query := `
		INSERT INTO multas (id, id_prestamo, id_tarifa, dias_retraso, monto_total, fecha_pago, pagada)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var idTarifa any
	if m.IDTarifa != "" {
		idTarifa = m.IDTarifa
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.IDPrestamo, idTarifa, m.DiasRetraso, m.MontoTotal, m.FechaPago, m.Pagada,
	)
	if err != nil {
		return fmt.Errorf("insert multa: %w", err)
	}
	return nil
}

// GetByID obtiene una multa por ID.
func (r *MultaRepo) GetByID(id string) (*entity.Multa, error) {
	query := `SELECT ` + multaColumns + ` FROM multas WHERE id = $1`
	var m entity.Multa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.IDPrestamo, &m.IDTarifa, &m.DiasRetraso, &m.MontoTotal, &m.FechaPago, &m.Pagada,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get multa: %w", err)
	}
	return &m, nil
}

// ListPorUsuario devuelve las multas de los préstamos del usuario, primero
// las pendientes y luego las pagadas más recientes.
func (r *MultaRepo) ListPorUsuario(usuarioID string) ([]entity.Multa, error) {
	query := `
		SELECT m.id::text, m.id_prestamo::text, COALESCE(m.id_tarifa::text, ''), m.dias_retraso, m.monto_total, m.fecha_pago, m.pagada
		FROM multas m
		JOIN prestamos p ON p.id = m.id_prestamo
		WHERE p.id_usuario = $1
		ORDER BY m.pagada, m.fecha_pago DESC NULLS FIRST`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list multas por usuario: %w", err)
	}
	defer rows.Close()
	var list []entity.Multa
	for rows.Next() {
		var m entity.Multa
		if err := rows.Scan(&m.ID, &m.IDPrestamo, &m.IDTarifa, &m.DiasRetraso,
			&m.MontoTotal, &m.FechaPago, &m.Pagada); err != nil {
			return nil, fmt.Errorf("scan multa: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// RegistrarPago marca la multa como pagada y fija la fecha de pago en la misma
// sentencia; pagada y fecha_pago nunca se escriben por separado.
func (r *MultaRepo) RegistrarPago(id string, fecha time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE multas SET pagada = true, fecha_pago = $2 WHERE id = $1`, id, fecha)
	if err != nil {
		return fmt.Errorf("registrar pago multa: %w", err)
	}
	return nil
}

// TarifaRepo tabla de tarifas sobre PostgreSQL.
type TarifaRepo struct {
	q Querier
}

// NewTarifaRepository construye el adaptador de la tabla de tarifas.
func NewTarifaRepository(q Querier) *TarifaRepo {
	return &TarifaRepo{q: q}
}

// ListAll devuelve todos los tramos ordenados por días de retraso mínimos.
func (r *TarifaRepo) ListAll() ([]entity.Tarifa, error) {
	query := `SELECT id::text, dias_retraso_min, dias_retraso_max, monto_por_dia, descripcion
		FROM tarifas ORDER BY dias_retraso_min`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tarifas: %w", err)
	}
	defer rows.Close()
	var list []entity.Tarifa
	for rows.Next() {
		var t entity.Tarifa
		if err := rows.Scan(&t.ID, &t.DiasRetrasoMin, &t.DiasRetrasoMax, &t.MontoPorDia, &t.Descripcion); err != nil {
			return nil, fmt.Errorf("scan tarifa: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
