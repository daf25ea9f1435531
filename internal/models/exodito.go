package models

import "github.com/lib/pq"

// Exodito is an external participant tracked separately from staff
type Exodito struct {
	IDExodito int     `json:"id_exodito" db:"id_exodito"`
	Nombre    string  `json:"nombre" db:"nombre"`
	Apellido  string  `json:"apellido" db:"apellido"`
	Cargo     *string `json:"cargo,omitempty" db:"cargo"`
	IDTribu   int     `json:"id_tribu" db:"id_tribu"`
}

// ExoditoConTribu joins in the tribu name for listings
type ExoditoConTribu struct {
	Exodito
	Tribu string `json:"tribu" db:"tribu"`
}

// ExoditoInput is the create/update request body
type ExoditoInput struct {
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Cargo    *string `json:"cargo"`
	IDTribu  int     `json:"id_tribu"`
}

// AsistenciaExodito is one exodito attendance entry for a batch upsert
type AsistenciaExodito struct {
	IDExodito int    `json:"id_exodito"`
	Estado    string `json:"estado"`
}

// RegistrarAsistenciaExoditosInput is the batch upsert request body
type RegistrarAsistenciaExoditosInput struct {
	Asistencias []AsistenciaExodito `json:"asistencias"`
}

// ResumenAsistenciaExodito aggregates the dates an exodito was present,
// grouped by tribu
type ResumenAsistenciaExodito struct {
	Tribu     string         `json:"tribu" db:"tribu"`
	IDExodito int            `json:"id_exodito" db:"id_exodito"`
	Exodito   string         `json:"exodito" db:"exodito"`
	Fechas    pq.StringArray `json:"fechas" db:"fechas"`
}

// AsistenciaExoditoDia is one roster row for a specific date; Estado is
// null when the exodito has no row for that date
type AsistenciaExoditoDia struct {
	Tribu     string  `json:"tribu" db:"tribu"`
	IDExodito int     `json:"id_exodito" db:"id_exodito"`
	Nombre    string  `json:"nombre" db:"nombre"`
	Apellido  string  `json:"apellido" db:"apellido"`
	Estado    *string `json:"estado,omitempty" db:"estado"`
}
