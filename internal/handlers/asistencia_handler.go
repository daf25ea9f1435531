package handlers

import (
	"errors"
	"net/http"

	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/exodo-app/exodo-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AsistenciaHandler handles the attendance recording endpoints
type AsistenciaHandler struct {
	asistenciaService *services.AsistenciaService
	asistenciaRepo    *database.AsistenciaRepository
	logger            *logrus.Logger
}

// NewAsistenciaHandler creates a new AsistenciaHandler
func NewAsistenciaHandler(
	asistenciaService *services.AsistenciaService,
	asistenciaRepo *database.AsistenciaRepository,
	logger *logrus.Logger,
) *AsistenciaHandler {
	return &AsistenciaHandler{
		asistenciaService: asistenciaService,
		asistenciaRepo:    asistenciaRepo,
		logger:            logger,
	}
}

// RegistrarPorQR records today's check-in from a QR code
// POST /asistencia/qr
func (h *AsistenciaHandler) RegistrarPorQR(c *gin.Context) {
	var input models.AsistenciaQRInput
	if err := c.ShouldBindJSON(&input); err != nil || input.CodigoQR == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Código QR requerido",
		})
		return
	}

	asistencia, err := h.asistenciaService.RegistrarPorQR(input.CodigoQR)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQRInvalido):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "QR inválido o expirado",
			})
		case errors.Is(err, services.ErrAsistenciaDuplicada):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Asistencia ya registrada hoy",
			})
		default:
			h.logger.WithError(err).Error("Failed to register asistencia by QR")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error al registrar asistencia",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje":    "Asistencia registrada correctamente",
		"asistencia": asistencia,
	})
}

// RegistrarManual records today's check-in from a manual check-in code
// POST /asistencia/manual
func (h *AsistenciaHandler) RegistrarManual(c *gin.Context) {
	var input models.AsistenciaManualInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Codigo == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Código requerido",
		})
		return
	}

	asistencia, err := h.asistenciaService.RegistrarManual(input.Codigo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCodigoInvalido):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Código inválido",
			})
		case errors.Is(err, services.ErrAsistenciaDuplicada):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Asistencia ya registrada hoy",
			})
		default:
			h.logger.WithError(err).Error("Failed to register asistencia manually")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error al registrar asistencia manual",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje":    "Asistencia registrada",
		"asistencia": asistencia,
	})
}

// Actualizar is the administrative upsert-by-date correction path
// PUT /asistencia
func (h *AsistenciaHandler) Actualizar(c *gin.Context) {
	var input models.ActualizarAsistenciaInput
	if err := c.ShouldBindJSON(&input); err != nil || input.IDDirigente == 0 || input.Fecha == "" || input.Estado == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Datos incompletos",
		})
		return
	}

	if err := h.asistenciaService.ActualizarPorFecha(input.IDDirigente, input.Fecha, input.Estado); err != nil {
		h.logger.WithError(err).Error("Failed to upsert asistencia")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al actualizar asistencia",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Asistencia actualizada",
	})
}

// ListarPorFecha returns the full roster with attendance for a date
// GET /asistencia/fecha/:fecha
func (h *AsistenciaHandler) ListarPorFecha(c *gin.Context) {
	fecha := c.Param("fecha")

	filas, err := h.asistenciaRepo.ListarPorFecha(fecha)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list asistencia by fecha")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener asistencia",
		})
		return
	}

	c.JSON(http.StatusOK, filas)
}
