package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ repository.ReservaRepository = (*ReservaRepo)(nil)

const reservaColumns = `id::text, id_usuario::text, id_ejemplar::text, fecha_reserva, fecha_expiracion, estado_reserva`

// ReservaRepo implementación del puerto ReservaRepository sobre PostgreSQL.
type ReservaRepo struct {
	q Querier
}

// NewReservaRepository construye el adaptador de persistencia para reservas.
func NewReservaRepository(q Querier) *ReservaRepo {
	return &ReservaRepo{q: q}
}

// Create persiste una nueva reserva.
func (r *ReservaRepo) Create(res *entity.Reserva) error {
	query := `
		INSERT INTO reservas (id, id_usuario, id_ejemplar, fecha_reserva, fecha_expiracion, estado_reserva)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, res.IDUsuario, res.IDEjemplar, res.FechaReserva, res.FechaExpiracion, res.Estado,
	)
	if err != nil {
		return fmt.Errorf("insert reserva: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *ReservaRepo) GetByID(id string) (*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + ` FROM reservas WHERE id = $1`
	var res entity.Reserva
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.IDUsuario, &res.IDEjemplar, &res.FechaReserva, &res.FechaExpiracion, &res.Estado,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reserva: %w", err)
	}
	return &res, nil
}

// List lista reservas ordenadas por fecha de reserva descendente.
func (r *ReservaRepo) List(limit, offset int) ([]*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + ` FROM reservas ORDER BY fecha_reserva DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reservas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reserva
	for rows.Next() {
		var res entity.Reserva
		if err := rows.Scan(&res.ID, &res.IDUsuario, &res.IDEjemplar, &res.FechaReserva,
			&res.FechaExpiracion, &res.Estado); err != nil {
			return nil, fmt.Errorf("scan reserva: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado persistido de la reserva.
func (r *ReservaRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE reservas SET estado_reserva = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado reserva: %w", err)
	}
	return nil
}
