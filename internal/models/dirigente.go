package models

// Dirigente represents an event staff member
type Dirigente struct {
	IDDirigente   int     `json:"id_dirigente" db:"id_dirigente"`
	Nombre        string  `json:"nombre" db:"nombre"`
	SegundoNombre *string `json:"segundo_nombre,omitempty" db:"segundo_nombre"`
	Apellido      string  `json:"apellido" db:"apellido"`
	Rol           string  `json:"rol" db:"rol"`
	Comite        *string `json:"comite,omitempty" db:"comite"`
	IDTribu       *int    `json:"id_tribu,omitempty" db:"id_tribu"`
	Usuario       *string `json:"usuario,omitempty" db:"usuario"`
	Contrasena    string  `json:"-" db:"contrasena"`
	Codigo        string  `json:"codigo" db:"codigo"`
}

// CrearDirigenteInput is the provisioning request body
type CrearDirigenteInput struct {
	Nombre        string  `json:"nombre"`
	SegundoNombre *string `json:"segundo_nombre"`
	Apellido      string  `json:"apellido"`
	Rol           string  `json:"rol"`
	Comite        *string `json:"comite"`
	IDTribu       *int    `json:"id_tribu"`
}

// DirigenteCreado is returned once after provisioning; Contrasena is the
// one-time plaintext password and is never persisted in this form
type DirigenteCreado struct {
	IDDirigente int     `json:"id_dirigente"`
	Nombre      string  `json:"nombre"`
	Apellido    string  `json:"apellido"`
	Usuario     string  `json:"usuario"`
	Contrasena  string  `json:"contrasena"`
	Codigo      string  `json:"codigo"`
	Rol         string  `json:"rol"`
	Comite      *string `json:"comite,omitempty"`
	IDTribu     *int    `json:"id_tribu,omitempty"`
	CodigoQR    string  `json:"codigo_qr"`
}

// ActualizarDirigenteInput updates rol/comite/tribu assignment
type ActualizarDirigenteInput struct {
	Rol     string  `json:"rol"`
	Comite  *string `json:"comite"`
	IDTribu *int    `json:"id_tribu"`
}

// CambiarContrasenaInput is the password-change request body
type CambiarContrasenaInput struct {
	ContrasenaActual string `json:"contrasenaActual"`
	ContrasenaNueva  string `json:"contrasenaNueva"`
}

// LoginInput is the login request body
type LoginInput struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}
