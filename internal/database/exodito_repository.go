package database

import (
	"database/sql"
	"fmt"

	"github.com/exodo-app/exodo-backend/internal/models"
)

// ExoditoRepository handles external participant database operations,
// including their own attendance table
type ExoditoRepository struct {
	db DB
}

// NewExoditoRepository creates a new exodito repository
func NewExoditoRepository(db DB) *ExoditoRepository {
	return &ExoditoRepository{
		db: db,
	}
}

// Listar returns all exoditos with their tribu name
func (r *ExoditoRepository) Listar() ([]models.ExoditoConTribu, error) {
	var exoditos []models.ExoditoConTribu

	query := `
		SELECT
			e.id_exodito,
			e.nombre,
			e.apellido,
			e.cargo,
			e.id_tribu,
			t.nombre AS tribu
		FROM exodito e
		JOIN tribu t ON e.id_tribu = t.id_tribu
		ORDER BY e.nombre
	`

	if err := r.db.Select(&exoditos, query); err != nil {
		return nil, fmt.Errorf("failed to list exoditos: %w", err)
	}

	return exoditos, nil
}

// ListarPorTribu returns the exoditos of one tribu
func (r *ExoditoRepository) ListarPorTribu(idTribu int) ([]models.Exodito, error) {
	var exoditos []models.Exodito

	query := `
		SELECT id_exodito, nombre, apellido, cargo, id_tribu
		FROM exodito
		WHERE id_tribu = $1
		ORDER BY nombre
	`

	if err := r.db.Select(&exoditos, query, idTribu); err != nil {
		return nil, fmt.Errorf("failed to list exoditos by tribu: %w", err)
	}

	return exoditos, nil
}

// Crear inserts an exodito and returns the created row
func (r *ExoditoRepository) Crear(input *models.ExoditoInput) (*models.Exodito, error) {
	var e models.Exodito

	query := `
		INSERT INTO exodito (nombre, apellido, cargo, id_tribu)
		VALUES ($1, $2, $3, $4)
		RETURNING id_exodito, nombre, apellido, cargo, id_tribu
	`

	err := r.db.Get(&e, query, input.Nombre, input.Apellido, input.Cargo, input.IDTribu)
	if err != nil {
		return nil, fmt.Errorf("failed to create exodito: %w", err)
	}

	return &e, nil
}

// Actualizar replaces an exodito's fields and returns the updated row
func (r *ExoditoRepository) Actualizar(idExodito int, input *models.ExoditoInput) (*models.Exodito, error) {
	var e models.Exodito

	query := `
		UPDATE exodito
		SET nombre = $1, apellido = $2, cargo = $3, id_tribu = $4
		WHERE id_exodito = $5
		RETURNING id_exodito, nombre, apellido, cargo, id_tribu
	`

	err := r.db.Get(&e, query, input.Nombre, input.Apellido, input.Cargo, input.IDTribu, idExodito)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to update exodito: %w", err)
	}

	return &e, nil
}

// Eliminar removes an exodito by id and returns the deleted row
func (r *ExoditoRepository) Eliminar(idExodito int) (*models.Exodito, error) {
	var e models.Exodito

	query := `
		DELETE FROM exodito
		WHERE id_exodito = $1
		RETURNING id_exodito, nombre, apellido, cargo, id_tribu
	`

	err := r.db.Get(&e, query, idExodito)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to delete exodito: %w", err)
	}

	return &e, nil
}

// RegistrarAsistencia upserts one exodito attendance row for today. The
// UNIQUE (id_exodito, fecha) constraint makes the upsert authoritative.
func (r *ExoditoRepository) RegistrarAsistencia(idExodito int, estado string) error {
	query := `
		INSERT INTO asistencia_exodito (id_exodito, fecha, estado)
		VALUES ($1, CURRENT_DATE, $2)
		ON CONFLICT (id_exodito, fecha) DO UPDATE
		SET estado = EXCLUDED.estado
	`

	if _, err := r.db.Exec(query, idExodito, estado); err != nil {
		return fmt.Errorf("failed to register exodito asistencia: %w", err)
	}

	return nil
}

// ResumenAsistencia aggregates, per exodito, the dates it was present,
// grouped by tribu
func (r *ExoditoRepository) ResumenAsistencia() ([]models.ResumenAsistenciaExodito, error) {
	var filas []models.ResumenAsistenciaExodito

	query := `
		SELECT
			t.nombre AS tribu,
			e.id_exodito,
			e.nombre AS exodito,
			ARRAY_AGG(TO_CHAR(a.fecha, 'YYYY-MM-DD') ORDER BY a.fecha) AS fechas
		FROM asistencia_exodito a
		JOIN exodito e ON e.id_exodito = a.id_exodito
		JOIN tribu t ON t.id_tribu = e.id_tribu
		WHERE a.estado = 'Presente'
		GROUP BY t.nombre, e.id_exodito, e.nombre
		ORDER BY t.nombre, exodito
	`

	if err := r.db.Select(&filas, query); err != nil {
		return nil, fmt.Errorf("failed to summarize exodito asistencia: %w", err)
	}

	return filas, nil
}

// ListarAsistenciaPorFecha returns the full exodito roster with each one's
// status for a date, if any
func (r *ExoditoRepository) ListarAsistenciaPorFecha(fecha string) ([]models.AsistenciaExoditoDia, error) {
	var filas []models.AsistenciaExoditoDia

	query := `
		SELECT
			t.nombre AS tribu,
			e.id_exodito,
			e.nombre,
			e.apellido,
			ae.estado
		FROM exodito e
		JOIN tribu t ON t.id_tribu = e.id_tribu
		LEFT JOIN asistencia_exodito ae
			ON ae.id_exodito = e.id_exodito
			AND ae.fecha = $1
		ORDER BY t.nombre, e.nombre
	`

	if err := r.db.Select(&filas, query, fecha); err != nil {
		return nil, fmt.Errorf("failed to list exodito asistencia by fecha: %w", err)
	}

	return filas, nil
}
