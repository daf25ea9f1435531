package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAsistenciaService(db database.DB) *AsistenciaService {
	return NewAsistenciaService(
		db,
		database.NewAsistenciaRepository(db),
		database.NewDirigenteRepository(db),
		database.NewQRRepository(db),
	)
}

func qrRows(idQR, idDirigente, vecesUsado int, codigoQR string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_qr", "id_dirigente", "codigo_qr", "token_secreto",
		"veces_usado", "ultimo_uso", "fecha_expiracion",
	}).AddRow(idQR, idDirigente, codigoQR, "a1b2c3", vecesUsado, nil, nil)
}

func asistenciaRows(idAsistencia, idDirigente int, metodo string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_asistencia", "id_dirigente", "fecha", "hora_llegada", "estado", "metodo_registro",
	}).AddRow(idAsistencia, idDirigente, time.Now(), "09:15:00", models.EstadoPresente, metodo)
}

func TestRegistrarPorQR(t *testing.T) {
	const codigoQR = "DIR-Ana-Lopez-17"

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM qr_personal\s+WHERE codigo_qr`).
			WithArgs(codigoQR).
			WillReturnRows(qrRows(5, 17, 2, codigoQR))
		mock.ExpectQuery(`SELECT 1 FROM asistencia\s+WHERE id_dirigente = \$1 AND fecha = CURRENT_DATE`).
			WithArgs(17).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO asistencia`).
			WithArgs(17, models.EstadoPresente, models.MetodoQR).
			WillReturnRows(asistenciaRows(31, 17, models.MetodoQR))
		mock.ExpectExec(`UPDATE qr_personal\s+SET veces_usado`).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		asistencia, err := service.RegistrarPorQR(codigoQR)
		require.NoError(t, err)

		assert.Equal(t, 31, asistencia.IDAsistencia)
		assert.Equal(t, 17, asistencia.IDDirigente)
		assert.Equal(t, models.EstadoPresente, asistencia.Estado)
		assert.Equal(t, models.MetodoQR, asistencia.MetodoRegistro)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Or Expired QR", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM qr_personal\s+WHERE codigo_qr`).
			WithArgs("DIR-Nadie-Nunca-99").
			WillReturnRows(sqlmock.NewRows([]string{
				"id_qr", "id_dirigente", "codigo_qr", "token_secreto",
				"veces_usado", "ultimo_uso", "fecha_expiracion",
			}))
		mock.ExpectRollback()

		asistencia, err := service.RegistrarPorQR("DIR-Nadie-Nunca-99")
		assert.ErrorIs(t, err, ErrQRInvalido)
		assert.Nil(t, asistencia)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Attendance", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM qr_personal\s+WHERE codigo_qr`).
			WithArgs(codigoQR).
			WillReturnRows(qrRows(5, 17, 2, codigoQR))
		mock.ExpectQuery(`SELECT 1 FROM asistencia\s+WHERE id_dirigente = \$1 AND fecha = CURRENT_DATE`).
			WithArgs(17).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		asistencia, err := service.RegistrarPorQR(codigoQR)
		assert.ErrorIs(t, err, ErrAsistenciaDuplicada)
		assert.Nil(t, asistencia)

		// Neither the insert nor the usage counter ran
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback On Counter Failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM qr_personal\s+WHERE codigo_qr`).
			WithArgs(codigoQR).
			WillReturnRows(qrRows(5, 17, 2, codigoQR))
		mock.ExpectQuery(`SELECT 1 FROM asistencia\s+WHERE id_dirigente = \$1 AND fecha = CURRENT_DATE`).
			WithArgs(17).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO asistencia`).
			WithArgs(17, models.EstadoPresente, models.MetodoQR).
			WillReturnRows(asistenciaRows(31, 17, models.MetodoQR))
		mock.ExpectExec(`UPDATE qr_personal\s+SET veces_usado`).
			WithArgs(5).
			WillReturnError(fmt.Errorf("database error"))
		mock.ExpectRollback()

		asistencia, err := service.RegistrarPorQR(codigoQR)
		assert.Error(t, err)
		assert.Nil(t, asistencia)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegistrarManual(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id_dirigente FROM dirigente WHERE codigo`).
			WithArgs("2488101").
			WillReturnRows(sqlmock.NewRows([]string{"id_dirigente"}).AddRow(17))
		mock.ExpectQuery(`SELECT 1 FROM asistencia\s+WHERE id_dirigente = \$1 AND fecha = CURRENT_DATE`).
			WithArgs(17).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO asistencia`).
			WithArgs(17, models.EstadoPresente, models.MetodoManual).
			WillReturnRows(asistenciaRows(32, 17, models.MetodoManual))
		mock.ExpectCommit()

		asistencia, err := service.RegistrarManual("2488101")
		require.NoError(t, err)
		assert.Equal(t, models.MetodoManual, asistencia.MetodoRegistro)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Codigo", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id_dirigente FROM dirigente WHERE codigo`).
			WithArgs("0000000").
			WillReturnRows(sqlmock.NewRows([]string{"id_dirigente"}))
		mock.ExpectRollback()

		asistencia, err := service.RegistrarManual("0000000")
		assert.ErrorIs(t, err, ErrCodigoInvalido)
		assert.Nil(t, asistencia)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Attendance", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id_dirigente FROM dirigente WHERE codigo`).
			WithArgs("2488101").
			WillReturnRows(sqlmock.NewRows([]string{"id_dirigente"}).AddRow(17))
		mock.ExpectQuery(`SELECT 1 FROM asistencia\s+WHERE id_dirigente = \$1 AND fecha = CURRENT_DATE`).
			WithArgs(17).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		asistencia, err := service.RegistrarManual("2488101")
		assert.ErrorIs(t, err, ErrAsistenciaDuplicada)
		assert.Nil(t, asistencia)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestActualizarPorFecha(t *testing.T) {
	t.Run("Updates Existing Row", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1 FROM asistencia\s+WHERE id_dirigente = \$1 AND fecha = \$2`).
			WithArgs(17, "2026-08-01").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectExec(`UPDATE asistencia\s+SET estado`).
			WithArgs("Tarde", 17, "2026-08-01").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := service.ActualizarPorFecha(17, "2026-08-01", "Tarde")
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Inserts When Missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		service := newAsistenciaService(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1 FROM asistencia\s+WHERE id_dirigente = \$1 AND fecha = \$2`).
			WithArgs(17, "2026-08-01").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO asistencia`).
			WithArgs(17, "2026-08-01", "Presente", models.MetodoManual).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := service.ActualizarPorFecha(17, "2026-08-01", "Presente")
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
