package services

import "errors"

// Sentinel errors the handlers map to HTTP status codes
var (
	// ErrDatosIncompletos is returned when required fields are missing;
	// checked before any database work
	ErrDatosIncompletos = errors.New("faltan datos obligatorios")

	// ErrCredencialesInvalidas covers both unknown usuario and bad password
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")

	// ErrQRInvalido is returned when a QR code is unknown or expired
	ErrQRInvalido = errors.New("qr inválido o expirado")

	// ErrCodigoInvalido is returned when a manual check-in code is unknown
	ErrCodigoInvalido = errors.New("código inválido")

	// ErrAsistenciaDuplicada is returned on a second check-in attempt for
	// the same dirigente on the same calendar day
	ErrAsistenciaDuplicada = errors.New("asistencia ya registrada hoy")
)
