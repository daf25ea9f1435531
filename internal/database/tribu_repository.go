package database

import (
	"database/sql"
	"fmt"

	"github.com/exodo-app/exodo-backend/internal/models"
)

// TribuRepository handles tribu database operations
type TribuRepository struct {
	db DB
}

// NewTribuRepository creates a new tribu repository
func NewTribuRepository(db DB) *TribuRepository {
	return &TribuRepository{
		db: db,
	}
}

// Listar returns all tribus ordered by id
func (r *TribuRepository) Listar() ([]models.Tribu, error) {
	var tribus []models.Tribu

	query := `
		SELECT id_tribu, nombre, puntos, color_hex
		FROM tribu
		ORDER BY id_tribu
	`

	if err := r.db.Select(&tribus, query); err != nil {
		return nil, fmt.Errorf("failed to list tribus: %w", err)
	}

	return tribus, nil
}

// SumarPuntos atomically adds puntos to a tribu's total and returns the new
// total. The increment happens in the database, never read-modify-write in
// the application, so concurrent scoring requests cannot lose updates.
func (r *TribuRepository) SumarPuntos(idTribu, puntos int) (int, error) {
	var total int

	query := `
		UPDATE tribu
		SET puntos = puntos + $1
		WHERE id_tribu = $2
		RETURNING puntos
	`

	err := r.db.Get(&total, query, puntos, idTribu)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrNoEncontrado
		}
		return 0, fmt.Errorf("failed to add puntos: %w", err)
	}

	return total, nil
}
