package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExoditoHandler handles external participant endpoints, attendance included
type ExoditoHandler struct {
	exoditoRepo *database.ExoditoRepository
	logger      *logrus.Logger
}

// NewExoditoHandler creates a new ExoditoHandler
func NewExoditoHandler(exoditoRepo *database.ExoditoRepository, logger *logrus.Logger) *ExoditoHandler {
	return &ExoditoHandler{
		exoditoRepo: exoditoRepo,
		logger:      logger,
	}
}

// Listar returns all exoditos with their tribu
// GET /exoditos
func (h *ExoditoHandler) Listar(c *gin.Context) {
	exoditos, err := h.exoditoRepo.Listar()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list exoditos")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener exoditos",
		})
		return
	}

	c.JSON(http.StatusOK, exoditos)
}

// ListarPorTribu returns the exoditos of one tribu
// GET /exoditos/tribu/:id_tribu
func (h *ExoditoHandler) ListarPorTribu(c *gin.Context) {
	idTribu, err := strconv.Atoi(c.Param("id_tribu"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Id inválido",
		})
		return
	}

	exoditos, err := h.exoditoRepo.ListarPorTribu(idTribu)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list exoditos by tribu")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener exoditos por tribu",
		})
		return
	}

	c.JSON(http.StatusOK, exoditos)
}

// Crear inserts an exodito
// POST /exoditos
func (h *ExoditoHandler) Crear(c *gin.Context) {
	var input models.ExoditoInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Nombre == "" || input.Apellido == "" || input.IDTribu == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Datos incompletos",
		})
		return
	}

	exodito, err := h.exoditoRepo.Crear(&input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create exodito")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al crear exodito",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Exodito creado correctamente",
		"exodito": exodito,
	})
}

// Actualizar replaces an exodito's fields
// PUT /exodito/:id
func (h *ExoditoHandler) Actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Id inválido",
		})
		return
	}

	var input models.ExoditoInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Nombre == "" || input.Apellido == "" || input.IDTribu == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Datos incompletos",
		})
		return
	}

	exodito, err := h.exoditoRepo.Actualizar(id, &input)
	if err != nil {
		if errors.Is(err, database.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Exodito no encontrado",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to update exodito")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al actualizar exodito",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Exodito actualizado correctamente",
		"exodito": exodito,
	})
}

// Eliminar removes an exodito
// DELETE /exodito/:id
func (h *ExoditoHandler) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Id inválido",
		})
		return
	}

	exodito, err := h.exoditoRepo.Eliminar(id)
	if err != nil {
		if errors.Is(err, database.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Exodito no encontrado",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to delete exodito")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al eliminar exodito",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Exodito eliminado correctamente",
		"exodito": exodito,
	})
}

// RegistrarAsistencias upserts a batch of today's exodito attendance rows
// POST /asistencia/exoditos
func (h *ExoditoHandler) RegistrarAsistencias(c *gin.Context) {
	var input models.RegistrarAsistenciaExoditosInput
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Asistencias) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No hay asistencias para registrar",
		})
		return
	}

	for _, a := range input.Asistencias {
		if err := h.exoditoRepo.RegistrarAsistencia(a.IDExodito, a.Estado); err != nil {
			h.logger.WithError(err).Error("Failed to register exodito asistencia")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error al registrar asistencia de exoditos",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asistencia de exoditos registrada correctamente",
		"total":   len(input.Asistencias),
	})
}

// ResumenAsistencia returns the dates each exodito was present, per tribu
// GET /asistencia/exoditos
func (h *ExoditoHandler) ResumenAsistencia(c *gin.Context) {
	filas, err := h.exoditoRepo.ResumenAsistencia()
	if err != nil {
		h.logger.WithError(err).Error("Failed to summarize exodito asistencia")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, filas)
}

// ListarAsistenciaPorFecha returns the exodito roster with status for a date
// GET /asistencia/exoditos/:fecha
func (h *ExoditoHandler) ListarAsistenciaPorFecha(c *gin.Context) {
	fecha := c.Param("fecha")

	filas, err := h.exoditoRepo.ListarAsistenciaPorFecha(fecha)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list exodito asistencia")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener asistencia",
		})
		return
	}

	c.JSON(http.StatusOK, filas)
}
