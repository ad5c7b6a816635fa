package repository

import "github.com/avasquez/biblioteca-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByCorreo(correo string) (*entity.Usuario, error)
	// List lista usuarios ordenados por apellido; soloActivos filtra por el flag.
	List(soloActivos bool, limit, offset int) ([]*entity.Usuario, error)
	ListByIDs(ids []string) ([]*entity.Usuario, error)
}

// TipoDocumentoRepository catálogo de tipos de documento de identidad.
type TipoDocumentoRepository interface {
	GetByID(id string) (*entity.TipoDocumento, error)
}
