package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/exodo-app/exodo-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// DirigenteContextKey is the key used to store the authenticated dirigente
// in the Gin context
const DirigenteContextKey = "dirigente"

// DirigenteContext represents the authenticated dirigente's identity
type DirigenteContext struct {
	IDDirigente int     `json:"id_dirigente"`
	Nombre      string  `json:"nombre"`
	Apellido    string  `json:"apellido"`
	Rol         string  `json:"rol"`
	Comite      *string `json:"comite,omitempty"`
	IDTribu     *int    `json:"id_tribu,omitempty"`
	Codigo      string  `json:"codigo"`
}

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Printf("AUTH FAILED: Missing authorization header - Path: %s, IP: %s", c.Request.URL.Path, c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization header is required",
				"code":    "MISSING_AUTH_HEADER",
			})
			c.Abort()
			return
		}

		// Check Bearer token format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Printf("AUTH FAILED: Invalid auth format - Path: %s, IP: %s", c.Request.URL.Path, c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid authorization header format. Expected: Bearer <token>",
				"code":    "INVALID_AUTH_FORMAT",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Token cannot be empty",
				"code":    "INVALID_AUTH_FORMAT",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if jwtService.IsTokenExpired(tokenString) {
				log.Printf("AUTH FAILED: Token expired - Path: %s, IP: %s", c.Request.URL.Path, c.ClientIP())
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "token_expired",
					"message": "Session token has expired. Please log in again.",
					"code":    "TOKEN_EXPIRED",
				})
			} else {
				log.Printf("AUTH FAILED: Invalid token - Path: %s, IP: %s, Error: %v", c.Request.URL.Path, c.ClientIP(), err)
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "invalid_token",
					"message": "Invalid session token",
					"code":    "INVALID_TOKEN",
				})
			}
			c.Abort()
			return
		}

		c.Set(DirigenteContextKey, DirigenteContext{
			IDDirigente: claims.IDDirigente,
			Nombre:      claims.Nombre,
			Apellido:    claims.Apellido,
			Rol:         claims.Rol,
			Comite:      claims.Comite,
			IDTribu:     claims.IDTribu,
			Codigo:      claims.Codigo,
		})

		c.Next()
	}
}

// GetDirigenteContext retrieves the authenticated dirigente from the Gin
// context
func GetDirigenteContext(c *gin.Context) (DirigenteContext, bool) {
	value, exists := c.Get(DirigenteContextKey)
	if !exists {
		return DirigenteContext{}, false
	}

	ctx, ok := value.(DirigenteContext)
	if !ok {
		return DirigenteContext{}, false
	}

	return ctx, true
}
