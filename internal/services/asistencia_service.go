package services

import (
	"errors"

	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// AsistenciaService handles the attendance recording workflows. Every
// multi-statement path runs inside one scoped transaction so that a failure
// leaves neither a partial attendance row nor a half-updated credential.
type AsistenciaService struct {
	db             database.DB
	asistenciaRepo *database.AsistenciaRepository
	dirigenteRepo  *database.DirigenteRepository
	qrRepo         *database.QRRepository
}

// NewAsistenciaService creates a new AsistenciaService
func NewAsistenciaService(
	db database.DB,
	asistenciaRepo *database.AsistenciaRepository,
	dirigenteRepo *database.DirigenteRepository,
	qrRepo *database.QRRepository,
) *AsistenciaService {
	return &AsistenciaService{
		db:             db,
		asistenciaRepo: asistenciaRepo,
		dirigenteRepo:  dirigenteRepo,
		qrRepo:         qrRepo,
	}
}

// RegistrarPorQR records today's check-in from a presented QR code: the
// credential must exist and be unexpired, the dirigente must not have a row
// for today, and the credential's usage counter moves with the insert.
func (s *AsistenciaService) RegistrarPorQR(codigoQR string) (*models.Asistencia, error) {
	var asistencia *models.Asistencia

	err := database.WithTx(s.db, func(tx *sqlx.Tx) error {
		qr, err := s.qrRepo.GetVigenteByCodigoTx(tx, codigoQR)
		if err != nil {
			if errors.Is(err, database.ErrNoEncontrado) {
				return ErrQRInvalido
			}
			return err
		}

		existe, err := s.asistenciaRepo.ExisteHoyTx(tx, qr.IDDirigente)
		if err != nil {
			return err
		}
		if existe {
			return ErrAsistenciaDuplicada
		}

		asistencia, err = s.asistenciaRepo.CrearHoyTx(tx, qr.IDDirigente, models.MetodoQR)
		if err != nil {
			return err
		}

		return s.qrRepo.RegistrarUsoTx(tx, qr.IDQR)
	})
	if err != nil {
		return nil, err
	}

	return asistencia, nil
}

// RegistrarManual records today's check-in from a manual check-in code.
// Same invariant as the QR path; the duplicate check and the insert share
// one transaction so concurrent check-ins cannot both pass the check.
func (s *AsistenciaService) RegistrarManual(codigo string) (*models.Asistencia, error) {
	var asistencia *models.Asistencia

	err := database.WithTx(s.db, func(tx *sqlx.Tx) error {
		idDirigente, err := s.dirigenteRepo.GetIDByCodigoTx(tx, codigo)
		if err != nil {
			if errors.Is(err, database.ErrNoEncontrado) {
				return ErrCodigoInvalido
			}
			return err
		}

		existe, err := s.asistenciaRepo.ExisteHoyTx(tx, idDirigente)
		if err != nil {
			return err
		}
		if existe {
			return ErrAsistenciaDuplicada
		}

		asistencia, err = s.asistenciaRepo.CrearHoyTx(tx, idDirigente, models.MetodoManual)
		return err
	})
	if err != nil {
		return nil, err
	}

	return asistencia, nil
}

// ActualizarPorFecha is the administrative correction path: it overwrites
// the status of the (dirigente, fecha) row if one exists, otherwise inserts
// a new row with method Manual. This is the only path allowed to rewrite a
// prior day's status.
func (s *AsistenciaService) ActualizarPorFecha(idDirigente int, fecha, estado string) error {
	return database.WithTx(s.db, func(tx *sqlx.Tx) error {
		existe, err := s.asistenciaRepo.ExisteEnFechaTx(tx, idDirigente, fecha)
		if err != nil {
			return err
		}

		if existe {
			return s.asistenciaRepo.ActualizarEstadoTx(tx, idDirigente, fecha, estado)
		}

		return s.asistenciaRepo.CrearEnFechaTx(tx, idDirigente, fecha, estado)
	})
}
