package database

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockDB wraps a sqlmock connection in the DB interface used by all
// repositories
func newMockDB(t *testing.T) (DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PostgresDB{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestGetByUsuario(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDirigenteRepository(db)

	t.Run("Success", func(t *testing.T) {
		usuario := "AnaLopez17"

		mock.ExpectQuery(`SELECT (.+) FROM dirigente WHERE usuario`).
			WithArgs(usuario).
			WillReturnRows(sqlmock.NewRows([]string{
				"id_dirigente", "nombre", "segundo_nombre", "apellido", "rol",
				"comite", "id_tribu", "usuario", "contrasena", "codigo",
			}).AddRow(
				17, "Ana", nil, "Lopez", "Capitan",
				nil, nil, usuario, "$2a$12$hash", "2488101",
			))

		d, err := repo.GetByUsuario(usuario)
		require.NoError(t, err)
		assert.Equal(t, 17, d.IDDirigente)
		assert.Equal(t, "Ana", d.Nombre)
		assert.Equal(t, "2488101", d.Codigo)
		require.NotNil(t, d.Usuario)
		assert.Equal(t, usuario, *d.Usuario)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM dirigente WHERE usuario`).
			WithArgs("nadie").
			WillReturnRows(sqlmock.NewRows([]string{"id_dirigente"}))

		d, err := repo.GetByUsuario("nadie")
		assert.ErrorIs(t, err, ErrNoEncontrado)
		assert.Nil(t, d)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM dirigente WHERE usuario`).
			WithArgs("AnaLopez17").
			WillReturnError(fmt.Errorf("database error"))

		d, err := repo.GetByUsuario("AnaLopez17")
		assert.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "failed to get dirigente by usuario")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListarDirigentes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDirigenteRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM dirigente ORDER BY nombre`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id_dirigente", "nombre", "apellido", "rol", "comite", "id_tribu",
			}).
				AddRow(1, "Ana", "Lopez", "Capitan", nil, 3).
				AddRow(2, "Bruno", "Diaz", "Apoyo", "Cocina", nil))

		dirigentes, err := repo.Listar()
		require.NoError(t, err)
		require.Len(t, dirigentes, 2)
		assert.Equal(t, "Ana", dirigentes[0].Nombre)
		assert.Equal(t, "Bruno", dirigentes[1].Nombre)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM dirigente ORDER BY nombre`).
			WillReturnError(fmt.Errorf("database error"))

		dirigentes, err := repo.Listar()
		assert.Error(t, err)
		assert.Nil(t, dirigentes)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestActualizarContrasena(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDirigenteRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE dirigente SET contrasena`).
			WithArgs("$2a$12$nuevohash", 17).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ActualizarContrasena(17, "$2a$12$nuevohash")
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE dirigente SET contrasena`).
			WithArgs("$2a$12$nuevohash", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ActualizarContrasena(99, "$2a$12$nuevohash")
		assert.ErrorIs(t, err, ErrNoEncontrado)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEliminarDirigente(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDirigenteRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`DELETE FROM dirigente`).
			WithArgs(17).
			WillReturnRows(sqlmock.NewRows([]string{"id_dirigente", "nombre", "apellido"}).
				AddRow(17, "Ana", "Lopez"))

		d, err := repo.Eliminar(17)
		require.NoError(t, err)
		assert.Equal(t, "Ana", d.Nombre)
		assert.Equal(t, "Lopez", d.Apellido)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`DELETE FROM dirigente`).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id_dirigente", "nombre", "apellido"}))

		d, err := repo.Eliminar(99)
		assert.ErrorIs(t, err, ErrNoEncontrado)
		assert.Nil(t, d)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
