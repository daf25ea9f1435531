package database

import (
	"database/sql"
	"fmt"

	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// AsistenciaRepository handles attendance database operations for dirigentes
type AsistenciaRepository struct {
	db DB
}

// NewAsistenciaRepository creates a new attendance repository
func NewAsistenciaRepository(db DB) *AsistenciaRepository {
	return &AsistenciaRepository{
		db: db,
	}
}

// ExisteHoyTx reports whether the dirigente already has a row for today
func (r *AsistenciaRepository) ExisteHoyTx(tx *sqlx.Tx, idDirigente int) (bool, error) {
	var existe bool

	query := `
		SELECT EXISTS(
			SELECT 1 FROM asistencia
			WHERE id_dirigente = $1 AND fecha = CURRENT_DATE
		)
	`

	if err := tx.Get(&existe, query, idDirigente); err != nil {
		return false, fmt.Errorf("failed to check asistencia for today: %w", err)
	}

	return existe, nil
}

// CrearHoyTx inserts today's check-in with the given registration method
// and returns the created row
func (r *AsistenciaRepository) CrearHoyTx(tx *sqlx.Tx, idDirigente int, metodo string) (*models.Asistencia, error) {
	var a models.Asistencia

	query := `
		INSERT INTO asistencia
		(id_dirigente, fecha, hora_llegada, estado, metodo_registro)
		VALUES ($1, CURRENT_DATE, CURRENT_TIME, $2, $3)
		RETURNING id_asistencia, id_dirigente, fecha,
		          TO_CHAR(hora_llegada, 'HH24:MI:SS') AS hora_llegada,
		          estado, metodo_registro
	`

	err := tx.Get(&a, query, idDirigente, models.EstadoPresente, metodo)
	if err != nil {
		return nil, fmt.Errorf("failed to create asistencia: %w", err)
	}

	return &a, nil
}

// ExisteEnFechaTx reports whether a row exists for the (dirigente, fecha) pair
func (r *AsistenciaRepository) ExisteEnFechaTx(tx *sqlx.Tx, idDirigente int, fecha string) (bool, error) {
	var existe bool

	query := `
		SELECT EXISTS(
			SELECT 1 FROM asistencia
			WHERE id_dirigente = $1 AND fecha = $2
		)
	`

	if err := tx.Get(&existe, query, idDirigente, fecha); err != nil {
		return false, fmt.Errorf("failed to check asistencia for date: %w", err)
	}

	return existe, nil
}

// ActualizarEstadoTx overwrites the status of an existing (dirigente, fecha)
// row; this is the administrative correction path
func (r *AsistenciaRepository) ActualizarEstadoTx(tx *sqlx.Tx, idDirigente int, fecha, estado string) error {
	query := `
		UPDATE asistencia
		SET estado = $1
		WHERE id_dirigente = $2 AND fecha = $3
	`

	if _, err := tx.Exec(query, estado, idDirigente, fecha); err != nil {
		return fmt.Errorf("failed to update asistencia estado: %w", err)
	}

	return nil
}

// CrearEnFechaTx inserts a row for an explicit date with method Manual
func (r *AsistenciaRepository) CrearEnFechaTx(tx *sqlx.Tx, idDirigente int, fecha, estado string) error {
	query := `
		INSERT INTO asistencia
		(id_dirigente, fecha, hora_llegada, estado, metodo_registro)
		VALUES ($1, $2, CURRENT_TIME, $3, $4)
	`

	if _, err := tx.Exec(query, idDirigente, fecha, estado, models.MetodoManual); err != nil {
		return fmt.Errorf("failed to create asistencia for date: %w", err)
	}

	return nil
}

// ListarPorFecha returns every dirigente with their attendance row for a
// date, if any (LEFT JOIN, so absentees appear with null columns)
func (r *AsistenciaRepository) ListarPorFecha(fecha string) ([]models.AsistenciaDia, error) {
	var filas []models.AsistenciaDia

	query := `
		SELECT
			d.id_dirigente,
			d.nombre,
			d.apellido,
			d.rol,
			a.id_asistencia,
			a.estado,
			a.metodo_registro,
			TO_CHAR(a.hora_llegada, 'HH24:MI:SS') AS hora_llegada
		FROM dirigente d
		LEFT JOIN asistencia a
			ON d.id_dirigente = a.id_dirigente
			AND a.fecha = $1
		ORDER BY d.nombre
	`

	if err := r.db.Select(&filas, query, fecha); err != nil {
		return nil, fmt.Errorf("failed to list asistencia by fecha: %w", err)
	}

	return filas, nil
}

// GetByID retrieves one attendance row by id
func (r *AsistenciaRepository) GetByID(idAsistencia int) (*models.Asistencia, error) {
	var a models.Asistencia

	query := `
		SELECT id_asistencia, id_dirigente, fecha,
		       TO_CHAR(hora_llegada, 'HH24:MI:SS') AS hora_llegada,
		       estado, metodo_registro
		FROM asistencia
		WHERE id_asistencia = $1
	`

	err := r.db.Get(&a, query, idAsistencia)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to get asistencia: %w", err)
	}

	return &a, nil
}
