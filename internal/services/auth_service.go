package services

import (
	"errors"
	"fmt"

	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/models"
	"github.com/exodo-app/exodo-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles dirigente login
type AuthService struct {
	dirigenteRepo *database.DirigenteRepository
	jwtService    *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(dirigenteRepo *database.DirigenteRepository, jwtService *jwt.Service) *AuthService {
	return &AuthService{
		dirigenteRepo: dirigenteRepo,
		jwtService:    jwtService,
	}
}

// LoginResult is the successful login payload
type LoginResult struct {
	Token     string            `json:"token"`
	Dirigente *models.Dirigente `json:"dirigente"`
}

// Login authenticates a dirigente by usuario and password. Unknown usuario
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(usuario, contrasena string) (*LoginResult, error) {
	dirigente, err := s.dirigenteRepo.GetByUsuario(usuario)
	if err != nil {
		if errors.Is(err, database.ErrNoEncontrado) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dirigente.Contrasena), []byte(contrasena)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.jwtService.GenerateToken(jwt.Claims{
		IDDirigente:   dirigente.IDDirigente,
		Nombre:        dirigente.Nombre,
		SegundoNombre: dirigente.SegundoNombre,
		Apellido:      dirigente.Apellido,
		Rol:           dirigente.Rol,
		Comite:        dirigente.Comite,
		IDTribu:       dirigente.IDTribu,
		Codigo:        dirigente.Codigo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		Dirigente: dirigente,
	}, nil
}
