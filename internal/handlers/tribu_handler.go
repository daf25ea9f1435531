package handlers

import (
	"errors"
	"net/http"

	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TribuHandler handles tribu listing and point scoring
type TribuHandler struct {
	tribuRepo *database.TribuRepository
	logger    *logrus.Logger
}

// NewTribuHandler creates a new TribuHandler
func NewTribuHandler(tribuRepo *database.TribuRepository, logger *logrus.Logger) *TribuHandler {
	return &TribuHandler{
		tribuRepo: tribuRepo,
		logger:    logger,
	}
}

// Listar returns all tribus
// GET /tribus
func (h *TribuHandler) Listar(c *gin.Context) {
	tribus, err := h.tribuRepo.Listar()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list tribus")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, tribus)
}

// SumarPuntos atomically adds points to a tribu
// POST /tribu/puntos
func (h *TribuHandler) SumarPuntos(c *gin.Context) {
	var input models.SumarPuntosInput
	if err := c.ShouldBindJSON(&input); err != nil || input.IDTribu == nil || input.Puntos == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Datos inválidos",
		})
		return
	}

	puntos, err := h.tribuRepo.SumarPuntos(*input.IDTribu, *input.Puntos)
	if err != nil {
		if errors.Is(err, database.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Tribu no encontrada",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to add puntos")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Puntos actualizados",
		"puntos":  puntos,
	})
}
