package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avasquez/biblioteca-api/internal/domain"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)
var _ repository.TipoDocumentoRepository = (*TipoDocumentoRepo)(nil)

const usuarioColumns = `id::text, nombre, apellido, correo, password_hash, direccion, telefono, fecha_nacimiento, numero_documento, id_tipo_documento::text, fecha_registro, usuario_activo`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. El correo tiene constraint único.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre, apellido, correo, password_hash, direccion, telefono, fecha_nacimiento, numero_documento, id_tipo_documento, fecha_registro, usuario_activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellido, u.Correo, u.PasswordHash, u.Direccion, u.Telefono,
		u.FechaNacimiento, u.NumeroDocumento, u.IDTipoDocumento, u.FechaRegistro, u.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCorreo obtiene un usuario por correo.
func (r *UsuarioRepo) GetByCorreo(correo string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE correo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, correo))
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Correo, &u.PasswordHash, &u.Direccion, &u.Telefono,
		&u.FechaNacimiento, &u.NumeroDocumento, &u.IDTipoDocumento, &u.FechaRegistro, &u.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List lista usuarios ordenados por apellido y nombre con paginación.
func (r *UsuarioRepo) List(soloActivos bool, limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios
		WHERE ($1 = false OR usuario_activo = true)
		ORDER BY apellido, nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, soloActivos, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	return scanUsuarios(rows)
}

// ListByIDs devuelve los usuarios cuyos IDs están en la lista dada.
func (r *UsuarioRepo) ListByIDs(ids []string) ([]*entity.Usuario, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list usuarios by ids: %w", err)
	}
	defer rows.Close()
	return scanUsuarios(rows)
}

func scanUsuarios(rows pgx.Rows) ([]*entity.Usuario, error) {
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Correo, &u.PasswordHash,
			&u.Direccion, &u.Telefono, &u.FechaNacimiento, &u.NumeroDocumento,
			&u.IDTipoDocumento, &u.FechaRegistro, &u.Activo); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// TipoDocumentoRepo catálogo tipos_documento sobre PostgreSQL.
type TipoDocumentoRepo struct {
	q Querier
}

// NewTipoDocumentoRepository construye el adaptador del catálogo de tipos de documento.
func NewTipoDocumentoRepository(q Querier) *TipoDocumentoRepo {
	return &TipoDocumentoRepo{q: q}
}

// GetByID obtiene un tipo de documento por ID.
func (r *TipoDocumentoRepo) GetByID(id string) (*entity.TipoDocumento, error) {
	var td entity.TipoDocumento
	err := r.q.QueryRow(context.Background(),
		`SELECT id::text, nombre FROM tipos_documento WHERE id = $1`, id,
	).Scan(&td.ID, &td.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo documento: %w", err)
	}
	return &td, nil
}
