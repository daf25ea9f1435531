package models

import "time"

// QRPersonal is the durable QR credential issued at provisioning time.
// TokenSecreto is high-entropy and never derived from guessable fields.
type QRPersonal struct {
	IDQR             int        `json:"id_qr" db:"id_qr"`
	IDDirigente      int        `json:"id_dirigente" db:"id_dirigente"`
	CodigoQR         string     `json:"codigo_qr" db:"codigo_qr"`
	TokenSecreto     string     `json:"-" db:"token_secreto"`
	VecesUsado       int        `json:"veces_usado" db:"veces_usado"`
	UltimoUso        *time.Time `json:"ultimo_uso,omitempty" db:"ultimo_uso"`
	FechaExpiracion  *time.Time `json:"fecha_expiracion,omitempty" db:"fecha_expiracion"`
}
