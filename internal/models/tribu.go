package models

// Tribu represents a team with a mutable point total
type Tribu struct {
	IDTribu  int    `json:"id_tribu" db:"id_tribu"`
	Nombre   string `json:"nombre" db:"nombre"`
	Puntos   int    `json:"puntos" db:"puntos"`
	ColorHex string `json:"color_hex" db:"color_hex"`
}

// SumarPuntosInput adds (possibly negative) points to a tribu.
// Pointers so that non-numeric or missing JSON values are rejectable.
type SumarPuntosInput struct {
	IDTribu *int `json:"id_tribu"`
	Puntos  *int `json:"puntos"`
}
