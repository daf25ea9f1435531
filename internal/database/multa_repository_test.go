package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListarMultas(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMultaRepository(db)

	fecha := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM multa m\s+JOIN dirigente d`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_multa", "id_dirigente", "id_asistencia", "fecha", "monto", "motivo", "nombre", "apellido",
		}).
			AddRow(1, 17, nil, fecha, 5.00, "Llegada tarde", "Ana", "Lopez").
			AddRow(2, 8, 31, fecha, 2.50, "Uniforme incompleto", "Maria Jose", "De La Cruz"))

	multas, err := repo.Listar()
	require.NoError(t, err)
	require.Len(t, multas, 2)

	assert.Equal(t, "Ana", multas[0].Nombre)
	assert.Nil(t, multas[0].IDAsistencia)
	require.NotNil(t, multas[1].IDAsistencia)
	assert.Equal(t, 31, *multas[1].IDAsistencia)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrearMulta(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMultaRepository(db)

	fecha := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	idAsistencia := 31

	mock.ExpectQuery(`INSERT INTO multa`).
		WithArgs(17, idAsistencia, 5.00, "Llegada tarde").
		WillReturnRows(sqlmock.NewRows([]string{
			"id_multa", "id_dirigente", "id_asistencia", "fecha", "monto", "motivo",
		}).AddRow(3, 17, idAsistencia, fecha, 5.00, "Llegada tarde"))

	multa, err := repo.Crear(&models.CrearMultaInput{
		IDDirigente:  17,
		IDAsistencia: &idAsistencia,
		Monto:        5.00,
		Motivo:       "Llegada tarde",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, multa.IDMulta)
	assert.Equal(t, 5.00, multa.Monto)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEliminarMulta(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMultaRepository(db)

	t.Run("Success", func(t *testing.T) {
		fecha := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`DELETE FROM multa`).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{
				"id_multa", "id_dirigente", "id_asistencia", "fecha", "monto", "motivo",
			}).AddRow(3, 17, nil, fecha, 5.00, "Llegada tarde"))

		multa, err := repo.Eliminar(3)
		require.NoError(t, err)
		assert.Equal(t, 3, multa.IDMulta)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`DELETE FROM multa`).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id_multa"}))

		multa, err := repo.Eliminar(99)
		assert.ErrorIs(t, err, ErrNoEncontrado)
		assert.Nil(t, multa)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
