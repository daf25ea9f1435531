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

// MultaHandler handles fine endpoints
type MultaHandler struct {
	multaRepo *database.MultaRepository
	logger    *logrus.Logger
}

// NewMultaHandler creates a new MultaHandler
func NewMultaHandler(multaRepo *database.MultaRepository, logger *logrus.Logger) *MultaHandler {
	return &MultaHandler{
		multaRepo: multaRepo,
		logger:    logger,
	}
}

// Listar returns all fines with dirigente names
// GET /multas
func (h *MultaHandler) Listar(c *gin.Context) {
	multas, err := h.multaRepo.Listar()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list multas")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener multas",
		})
		return
	}

	c.JSON(http.StatusOK, multas)
}

// ListarPorDirigente returns the fines of one dirigente
// GET /multas/dirigente/:id
func (h *MultaHandler) ListarPorDirigente(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Id inválido",
		})
		return
	}

	multas, err := h.multaRepo.ListarPorDirigente(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list multas by dirigente")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener multas del dirigente",
		})
		return
	}

	c.JSON(http.StatusOK, multas)
}

// Crear registers a fine
// POST /multas
func (h *MultaHandler) Crear(c *gin.Context) {
	var input models.CrearMultaInput
	if err := c.ShouldBindJSON(&input); err != nil || input.IDDirigente == 0 || input.Monto == 0 || input.Motivo == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Datos incompletos",
		})
		return
	}

	multa, err := h.multaRepo.Crear(&input)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create multa")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al registrar multa",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Multa registrada correctamente",
		"multa":   multa,
	})
}

// Eliminar removes a fine
// DELETE /multa/:id
func (h *MultaHandler) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Id inválido",
		})
		return
	}

	multa, err := h.multaRepo.Eliminar(id)
	if err != nil {
		if errors.Is(err, database.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Multa no encontrada",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to delete multa")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al eliminar multa",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Multa eliminada correctamente",
		"multa":   multa,
	})
}
