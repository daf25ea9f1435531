package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/exodo-app/exodo-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DirigenteHandler handles dirigente CRUD and provisioning requests
type DirigenteHandler struct {
	dirigenteService *services.DirigenteService
	dirigenteRepo    *database.DirigenteRepository
	qrRepo           *database.QRRepository
	logger           *logrus.Logger
}

// NewDirigenteHandler creates a new DirigenteHandler
func NewDirigenteHandler(
	dirigenteService *services.DirigenteService,
	dirigenteRepo *database.DirigenteRepository,
	qrRepo *database.QRRepository,
	logger *logrus.Logger,
) *DirigenteHandler {
	return &DirigenteHandler{
		dirigenteService: dirigenteService,
		dirigenteRepo:    dirigenteRepo,
		qrRepo:           qrRepo,
		logger:           logger,
	}
}

// Crear provisions a new dirigente with derived usuario, one-time password,
// unique check-in code and QR credential
// POST /dirigente
func (h *DirigenteHandler) Crear(c *gin.Context) {
	var input models.CrearDirigenteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Faltan datos obligatorios",
		})
		return
	}

	creado, err := h.dirigenteService.Crear(&input)
	if err != nil {
		if errors.Is(err, services.ErrDatosIncompletos) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Faltan datos obligatorios",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to create dirigente")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error creando dirigente",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Dirigente creado correctamente",
		"dirigente": creado,
	})
}

// GetQR returns the QR payload of a dirigente
// GET /dirigente/:id/qr
func (h *DirigenteHandler) GetQR(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Id inválido",
		})
		return
	}

	codigoQR, err := h.qrRepo.GetCodigoQR(id)
	if err != nil {
		if errors.Is(err, database.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "QR no encontrado",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to get QR")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"codigo_qr": codigoQR,
	})
}

// Listar returns all dirigentes
// GET /dirigentes
func (h *DirigenteHandler) Listar(c *gin.Context) {
	dirigentes, err := h.dirigenteRepo.Listar()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list dirigentes")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, dirigentes)
}

// Actualizar updates rol, comite and tribu of a dirigente
// PUT /dirigente/:id
func (h *DirigenteHandler) Actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Id inválido",
		})
		return
	}

	var input models.ActualizarDirigenteInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Rol == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "El rol es obligatorio",
		})
		return
	}

	dirigente, err := h.dirigenteRepo.ActualizarRolComite(id, &input)
	if err != nil {
		if errors.Is(err, database.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Dirigente no encontrado",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to update dirigente")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Dirigente actualizado",
		"dirigente": dirigente,
	})
}

// Eliminar removes a dirigente
// DELETE /dirigente/:id
func (h *DirigenteHandler) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Id inválido",
		})
		return
	}

	dirigente, err := h.dirigenteRepo.Eliminar(id)
	if err != nil {
		if errors.Is(err, database.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Dirigente no encontrado",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to delete dirigente")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error del servidor",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Dirigente eliminado",
		"dirigente": dirigente,
	})
}

// CambiarContrasena validates the current password and replaces it
// PUT /dirigente/:id/contrasena
func (h *DirigenteHandler) CambiarContrasena(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Id inválido",
		})
		return
	}

	var input models.CambiarContrasenaInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ContrasenaActual == "" || input.ContrasenaNueva == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Datos incompletos",
		})
		return
	}

	err = h.dirigenteService.CambiarContrasena(id, input.ContrasenaActual, input.ContrasenaNueva)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Dirigente no encontrado",
			})
		case errors.Is(err, services.ErrCredencialesInvalidas):
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Contraseña actual incorrecta",
			})
		default:
			h.logger.WithError(err).Error("Failed to update contrasena")
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Error del servidor",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contraseña actualizada correctamente",
	})
}
