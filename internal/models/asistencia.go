package models

import "time"

// Registration methods for an attendance row
const (
	MetodoQR     = "QR"
	MetodoManual = "Manual"
)

// EstadoPresente is the default status written on check-in
const EstadoPresente = "Presente"

// Asistencia is one attendance row; at most one exists per dirigente per
// calendar day (UNIQUE (id_dirigente, fecha))
type Asistencia struct {
	IDAsistencia   int       `json:"id_asistencia" db:"id_asistencia"`
	IDDirigente    int       `json:"id_dirigente" db:"id_dirigente"`
	Fecha          time.Time `json:"fecha" db:"fecha"`
	HoraLlegada    string    `json:"hora_llegada" db:"hora_llegada"`
	Estado         string    `json:"estado" db:"estado"`
	MetodoRegistro string    `json:"metodo_registro" db:"metodo_registro"`
}

// AsistenciaQRInput is the QR check-in request body
type AsistenciaQRInput struct {
	CodigoQR string `json:"codigo_qr"`
}

// AsistenciaManualInput is the manual check-in request body
type AsistenciaManualInput struct {
	Codigo string `json:"codigo"`
}

// ActualizarAsistenciaInput is the administrative upsert-by-date body
type ActualizarAsistenciaInput struct {
	IDDirigente int    `json:"id_dirigente"`
	Fecha       string `json:"fecha"`
	Estado      string `json:"estado"`
}

// AsistenciaDia is one roster row for GET /asistencia/fecha/:fecha; the
// asistencia columns are null when the dirigente has no row for that date
type AsistenciaDia struct {
	IDDirigente    int     `json:"id_dirigente" db:"id_dirigente"`
	Nombre         string  `json:"nombre" db:"nombre"`
	Apellido       string  `json:"apellido" db:"apellido"`
	Rol            string  `json:"rol" db:"rol"`
	IDAsistencia   *int    `json:"id_asistencia,omitempty" db:"id_asistencia"`
	Estado         *string `json:"estado,omitempty" db:"estado"`
	MetodoRegistro *string `json:"metodo_registro,omitempty" db:"metodo_registro"`
	HoraLlegada    *string `json:"hora_llegada,omitempty" db:"hora_llegada"`
}
