package models

import "time"

// Multa is a fine levied against a dirigente, optionally tied to an
// attendance row
type Multa struct {
	IDMulta      int       `json:"id_multa" db:"id_multa"`
	IDDirigente  int       `json:"id_dirigente" db:"id_dirigente"`
	IDAsistencia *int      `json:"id_asistencia,omitempty" db:"id_asistencia"`
	Fecha        time.Time `json:"fecha" db:"fecha"`
	Monto        float64   `json:"monto" db:"monto"`
	Motivo       string    `json:"motivo" db:"motivo"`
}

// MultaConDirigente joins in the dirigente names for listings
type MultaConDirigente struct {
	Multa
	Nombre   string `json:"nombre" db:"nombre"`
	Apellido string `json:"apellido" db:"apellido"`
}

// CrearMultaInput is the fine-creation request body
type CrearMultaInput struct {
	IDDirigente  int     `json:"id_dirigente"`
	IDAsistencia *int    `json:"id_asistencia"`
	Monto        float64 `json:"monto"`
	Motivo       string  `json:"motivo"`
}
