package services

import (
	"fmt"
	"strings"

	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/exodo-app/exodo-backend/internal/utils"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// QRPrefix is the fixed prefix of every personal QR payload
const QRPrefix = "DIR"

// maxCodigoIntentos caps the rejection-sampling loop; with tens of millions
// of possible codes and tens of staff members a collision streak this long
// means the random source is broken, not the range exhausted
const maxCodigoIntentos = 100

// DirigenteService handles the identity provisioning workflow
type DirigenteService struct {
	db            database.DB
	dirigenteRepo *database.DirigenteRepository
	qrRepo        *database.QRRepository
	bcryptCost    int
	codigoMin     int
	codigoMax     int
}

// NewDirigenteService creates a new DirigenteService
func NewDirigenteService(
	db database.DB,
	dirigenteRepo *database.DirigenteRepository,
	qrRepo *database.QRRepository,
	bcryptCost int,
	codigoMin, codigoMax int,
) *DirigenteService {
	return &DirigenteService{
		db:            db,
		dirigenteRepo: dirigenteRepo,
		qrRepo:        qrRepo,
		bcryptCost:    bcryptCost,
		codigoMin:     codigoMin,
		codigoMax:     codigoMax,
	}
}

// Crear provisions a new dirigente: temporary password, unique check-in
// code, derived usuario and QR credential, all in one transaction. The
// returned DirigenteCreado carries the plaintext password exactly once.
func (s *DirigenteService) Crear(input *models.CrearDirigenteInput) (*models.DirigenteCreado, error) {
	if input.Nombre == "" || input.Apellido == "" || input.Rol == "" {
		return nil, ErrDatosIncompletos
	}

	contrasenaPlano, err := utils.GenerarContrasena(utils.LongitudContrasena)
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(contrasenaPlano), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	var creado *models.DirigenteCreado

	err = database.WithTx(s.db, func(tx *sqlx.Tx) error {
		codigo, err := s.generarCodigoUnico(tx)
		if err != nil {
			return err
		}

		segundoNombre := input.SegundoNombre
		if segundoNombre != nil && strings.TrimSpace(*segundoNombre) == "" {
			segundoNombre = nil
		}

		dirigente, err := s.dirigenteRepo.CrearTx(tx, &models.Dirigente{
			Nombre:        input.Nombre,
			SegundoNombre: segundoNombre,
			Apellido:      input.Apellido,
			Rol:           input.Rol,
			Comite:        input.Comite,
			IDTribu:       input.IDTribu,
			Contrasena:    string(hash),
			Codigo:        codigo,
		})
		if err != nil {
			return err
		}

		// The usuario embeds the assigned id, hence insert-then-update
		usuario := quitarEspacios(input.Nombre) + quitarEspacios(input.Apellido) + fmt.Sprintf("%d", dirigente.IDDirigente)
		if err := s.dirigenteRepo.ActualizarUsuarioTx(tx, dirigente.IDDirigente, usuario); err != nil {
			return err
		}

		codigoQR := fmt.Sprintf("%s-%s-%s-%d", QRPrefix, dirigente.Nombre, dirigente.Apellido, dirigente.IDDirigente)

		tokenSecreto, err := utils.GenerateSecret(16)
		if err != nil {
			return fmt.Errorf("failed to generate qr token: %w", err)
		}

		if err := s.qrRepo.CrearTx(tx, dirigente.IDDirigente, codigoQR, tokenSecreto); err != nil {
			return err
		}

		creado = &models.DirigenteCreado{
			IDDirigente: dirigente.IDDirigente,
			Nombre:      dirigente.Nombre,
			Apellido:    dirigente.Apellido,
			Usuario:     usuario,
			Contrasena:  contrasenaPlano,
			Codigo:      codigo,
			Rol:         dirigente.Rol,
			Comite:      dirigente.Comite,
			IDTribu:     dirigente.IDTribu,
			CodigoQR:    codigoQR,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return creado, nil
}

// generarCodigoUnico rejection-samples check-in codes until one does not
// collide with an existing dirigente. Runs inside the provisioning
// transaction; the UNIQUE constraint on dirigente.codigo is the backstop
// for generator races between concurrent provisioning calls.
func (s *DirigenteService) generarCodigoUnico(tx *sqlx.Tx) (string, error) {
	for i := 0; i < maxCodigoIntentos; i++ {
		codigo, err := utils.GenerarCodigo(s.codigoMin, s.codigoMax)
		if err != nil {
			return "", err
		}

		existe, err := s.dirigenteRepo.CodigoExisteTx(tx, codigo)
		if err != nil {
			return "", err
		}

		if !existe {
			return codigo, nil
		}
	}

	return "", fmt.Errorf("failed to find a free check-in code after %d attempts", maxCodigoIntentos)
}

// CambiarContrasena validates the current password and stores a new hash
func (s *DirigenteService) CambiarContrasena(idDirigente int, actual, nueva string) error {
	hashActual, err := s.dirigenteRepo.GetContrasena(idDirigente)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashActual), []byte(actual)); err != nil {
		return ErrCredencialesInvalidas
	}

	hashNueva, err := bcrypt.GenerateFromPassword([]byte(nueva), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	return s.dirigenteRepo.ActualizarContrasena(idDirigente, string(hashNueva))
}

func quitarEspacios(s string) string {
	return strings.Join(strings.Fields(s), "")
}
