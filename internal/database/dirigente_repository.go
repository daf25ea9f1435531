package database

import (
	"database/sql"
	"fmt"

	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// DirigenteRepository handles dirigente database operations
type DirigenteRepository struct {
	db DB
}

// NewDirigenteRepository creates a new dirigente repository
func NewDirigenteRepository(db DB) *DirigenteRepository {
	return &DirigenteRepository{
		db: db,
	}
}

// CrearTx inserts a new dirigente without a usuario (the usuario is derived
// from the assigned id afterwards) and returns the created row
func (r *DirigenteRepository) CrearTx(tx *sqlx.Tx, d *models.Dirigente) (*models.Dirigente, error) {
	query := `
		INSERT INTO dirigente
		(nombre, segundo_nombre, apellido, rol, comite, id_tribu, contrasena, codigo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_dirigente, nombre, segundo_nombre, apellido, rol, comite,
		          id_tribu, usuario, contrasena, codigo
	`

	var creado models.Dirigente
	err := tx.Get(
		&creado,
		query,
		d.Nombre,
		d.SegundoNombre,
		d.Apellido,
		d.Rol,
		d.Comite,
		d.IDTribu,
		d.Contrasena,
		d.Codigo,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dirigente: %w", err)
	}

	return &creado, nil
}

// ActualizarUsuarioTx sets the derived login usuario on a just-created row
func (r *DirigenteRepository) ActualizarUsuarioTx(tx *sqlx.Tx, idDirigente int, usuario string) error {
	query := `
		UPDATE dirigente
		SET usuario = $1
		WHERE id_dirigente = $2
	`

	if _, err := tx.Exec(query, usuario, idDirigente); err != nil {
		return fmt.Errorf("failed to update usuario: %w", err)
	}

	return nil
}

// CodigoExisteTx reports whether a check-in code is already assigned.
// Runs inside the provisioning transaction; the UNIQUE constraint on
// dirigente.codigo remains the authoritative guard under concurrency.
func (r *DirigenteRepository) CodigoExisteTx(tx *sqlx.Tx, codigo string) (bool, error) {
	var existe bool

	query := `SELECT EXISTS(SELECT 1 FROM dirigente WHERE codigo = $1)`

	if err := tx.Get(&existe, query, codigo); err != nil {
		return false, fmt.Errorf("failed to check codigo existence: %w", err)
	}

	return existe, nil
}

// GetByUsuario retrieves a dirigente by login usuario
func (r *DirigenteRepository) GetByUsuario(usuario string) (*models.Dirigente, error) {
	var d models.Dirigente

	query := `
		SELECT id_dirigente, nombre, segundo_nombre, apellido, rol, comite,
		       id_tribu, usuario, contrasena, codigo
		FROM dirigente
		WHERE usuario = $1
	`

	err := r.db.Get(&d, query, usuario)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to get dirigente by usuario: %w", err)
	}

	return &d, nil
}

// GetIDByCodigoTx resolves a manual check-in code to a dirigente id
func (r *DirigenteRepository) GetIDByCodigoTx(tx *sqlx.Tx, codigo string) (int, error) {
	var id int

	query := `SELECT id_dirigente FROM dirigente WHERE codigo = $1`

	err := tx.Get(&id, query, codigo)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrNoEncontrado
		}
		return 0, fmt.Errorf("failed to get dirigente by codigo: %w", err)
	}

	return id, nil
}

// Listar returns all dirigentes ordered by nombre
func (r *DirigenteRepository) Listar() ([]models.Dirigente, error) {
	var dirigentes []models.Dirigente

	query := `
		SELECT id_dirigente, nombre, apellido, rol, comite, id_tribu
		FROM dirigente
		ORDER BY nombre ASC
	`

	if err := r.db.Select(&dirigentes, query); err != nil {
		return nil, fmt.Errorf("failed to list dirigentes: %w", err)
	}

	return dirigentes, nil
}

// ActualizarRolComite updates rol, comite and tribu assignment
func (r *DirigenteRepository) ActualizarRolComite(idDirigente int, input *models.ActualizarDirigenteInput) (*models.Dirigente, error) {
	var d models.Dirigente

	query := `
		UPDATE dirigente
		SET rol = $1, comite = $2, id_tribu = $3
		WHERE id_dirigente = $4
		RETURNING id_dirigente, nombre, apellido, rol, comite, id_tribu
	`

	err := r.db.Get(&d, query, input.Rol, input.Comite, input.IDTribu, idDirigente)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to update dirigente: %w", err)
	}

	return &d, nil
}

// Eliminar removes a dirigente and returns its names for the response.
// Attendance, fine and QR rows owned by the id are the caller's concern.
func (r *DirigenteRepository) Eliminar(idDirigente int) (*models.Dirigente, error) {
	var d models.Dirigente

	query := `
		DELETE FROM dirigente
		WHERE id_dirigente = $1
		RETURNING id_dirigente, nombre, apellido
	`

	err := r.db.Get(&d, query, idDirigente)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to delete dirigente: %w", err)
	}

	return &d, nil
}

// GetContrasena returns the stored bcrypt hash for a dirigente
func (r *DirigenteRepository) GetContrasena(idDirigente int) (string, error) {
	var hash string

	query := `SELECT contrasena FROM dirigente WHERE id_dirigente = $1`

	err := r.db.Get(&hash, query, idDirigente)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNoEncontrado
		}
		return "", fmt.Errorf("failed to get contrasena: %w", err)
	}

	return hash, nil
}

// ActualizarContrasena replaces the stored bcrypt hash
func (r *DirigenteRepository) ActualizarContrasena(idDirigente int, hash string) error {
	query := `UPDATE dirigente SET contrasena = $1 WHERE id_dirigente = $2`

	result, err := r.db.Exec(query, hash, idDirigente)
	if err != nil {
		return fmt.Errorf("failed to update contrasena: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNoEncontrado
	}

	return nil
}
