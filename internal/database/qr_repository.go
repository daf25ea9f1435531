package database

import (
	"database/sql"
	"fmt"

	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// QRRepository handles QR credential database operations
type QRRepository struct {
	db DB
}

// NewQRRepository creates a new QR credential repository
func NewQRRepository(db DB) *QRRepository {
	return &QRRepository{
		db: db,
	}
}

// CrearTx inserts the QR credential issued at provisioning time, inside the
// same transaction as the owning dirigente
func (r *QRRepository) CrearTx(tx *sqlx.Tx, idDirigente int, codigoQR, tokenSecreto string) error {
	query := `
		INSERT INTO qr_personal
		(id_dirigente, codigo_qr, token_secreto)
		VALUES ($1, $2, $3)
	`

	if _, err := tx.Exec(query, idDirigente, codigoQR, tokenSecreto); err != nil {
		return fmt.Errorf("failed to create qr credential: %w", err)
	}

	return nil
}

// GetVigenteByCodigoTx retrieves a QR credential by its code, excluding
// credentials whose expiration date has passed. Credentials without an
// expiration date never expire.
func (r *QRRepository) GetVigenteByCodigoTx(tx *sqlx.Tx, codigoQR string) (*models.QRPersonal, error) {
	var qr models.QRPersonal

	query := `
		SELECT id_qr, id_dirigente, codigo_qr, token_secreto,
		       COALESCE(veces_usado, 0) AS veces_usado, ultimo_uso, fecha_expiracion
		FROM qr_personal
		WHERE codigo_qr = $1
		  AND (fecha_expiracion IS NULL OR fecha_expiracion >= CURRENT_DATE)
	`

	err := tx.Get(&qr, query, codigoQR)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to get qr credential: %w", err)
	}

	return &qr, nil
}

// RegistrarUsoTx increments the usage counter and stamps the last use
func (r *QRRepository) RegistrarUsoTx(tx *sqlx.Tx, idQR int) error {
	query := `
		UPDATE qr_personal
		SET veces_usado = COALESCE(veces_usado, 0) + 1,
		    ultimo_uso = CURRENT_TIMESTAMP
		WHERE id_qr = $1
	`

	if _, err := tx.Exec(query, idQR); err != nil {
		return fmt.Errorf("failed to register qr use: %w", err)
	}

	return nil
}

// GetCodigoQR returns the QR payload string for a dirigente
func (r *QRRepository) GetCodigoQR(idDirigente int) (string, error) {
	var codigoQR string

	query := `
		SELECT codigo_qr
		FROM qr_personal
		WHERE id_dirigente = $1
	`

	err := r.db.Get(&codigoQR, query, idDirigente)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNoEncontrado
		}
		return "", fmt.Errorf("failed to get codigo_qr: %w", err)
	}

	return codigoQR, nil
}
