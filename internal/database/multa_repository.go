package database

import (
	"database/sql"
	"fmt"

	"github.com/exodo-app/exodo-backend/internal/models"
)

// MultaRepository handles fine database operations
type MultaRepository struct {
	db DB
}

// NewMultaRepository creates a new fine repository
func NewMultaRepository(db DB) *MultaRepository {
	return &MultaRepository{
		db: db,
	}
}

// Listar returns all fines with the dirigente names, newest first
func (r *MultaRepository) Listar() ([]models.MultaConDirigente, error) {
	var multas []models.MultaConDirigente

	query := `
		SELECT
			m.id_multa,
			m.id_dirigente,
			m.id_asistencia,
			m.fecha,
			m.monto,
			m.motivo,
			d.nombre,
			d.apellido
		FROM multa m
		JOIN dirigente d ON m.id_dirigente = d.id_dirigente
		ORDER BY m.fecha DESC
	`

	if err := r.db.Select(&multas, query); err != nil {
		return nil, fmt.Errorf("failed to list multas: %w", err)
	}

	return multas, nil
}

// ListarPorDirigente returns the fines of one dirigente, newest first
func (r *MultaRepository) ListarPorDirigente(idDirigente int) ([]models.Multa, error) {
	var multas []models.Multa

	query := `
		SELECT id_multa, id_dirigente, id_asistencia, fecha, monto, motivo
		FROM multa
		WHERE id_dirigente = $1
		ORDER BY fecha DESC
	`

	if err := r.db.Select(&multas, query, idDirigente); err != nil {
		return nil, fmt.Errorf("failed to list multas by dirigente: %w", err)
	}

	return multas, nil
}

// Crear inserts a fine and returns the created row
func (r *MultaRepository) Crear(input *models.CrearMultaInput) (*models.Multa, error) {
	var m models.Multa

	query := `
		INSERT INTO multa
		(id_dirigente, id_asistencia, monto, motivo)
		VALUES ($1, $2, $3, $4)
		RETURNING id_multa, id_dirigente, id_asistencia, fecha, monto, motivo
	`

	err := r.db.Get(&m, query, input.IDDirigente, input.IDAsistencia, input.Monto, input.Motivo)
	if err != nil {
		return nil, fmt.Errorf("failed to create multa: %w", err)
	}

	return &m, nil
}

// Eliminar removes a fine by id and returns the deleted row
func (r *MultaRepository) Eliminar(idMulta int) (*models.Multa, error) {
	var m models.Multa

	query := `
		DELETE FROM multa
		WHERE id_multa = $1
		RETURNING id_multa, id_dirigente, id_asistencia, fecha, monto, motivo
	`

	err := r.db.Get(&m, query, idMulta)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to delete multa: %w", err)
	}

	return &m, nil
}
