package handlers

import (
	"errors"
	"net/http"

	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/exodo-app/exodo-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles login requests
type AuthHandler struct {
	authService *services.AuthService
	logger      *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a dirigente and returns a session token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Datos inválidos",
		})
		return
	}

	result, err := h.authService.Login(input.Usuario, input.Contrasena)
	if err != nil {
		if errors.Is(err, services.ErrCredencialesInvalidas) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Credenciales inválidas",
			})
			return
		}

		h.logger.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error en login",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     result.Token,
		"dirigente": result.Dirigente,
	})
}
