package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exodo-app/exodo-backend/internal/config"
	"github.com/exodo-app/exodo-backend/internal/database"
	"github.com/exodo-app/exodo-backend/internal/handlers"
	"github.com/exodo-app/exodo-backend/internal/middleware"
	"github.com/exodo-app/exodo-backend/internal/services"
	"github.com/exodo-app/exodo-backend/pkg/jwt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Exodo event backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	dirigenteRepo := database.NewDirigenteRepository(db)
	qrRepo := database.NewQRRepository(db)
	asistenciaRepo := database.NewAsistenciaRepository(db)
	tribuRepo := database.NewTribuRepository(db)
	multaRepo := database.NewMultaRepository(db)
	exoditoRepo := database.NewExoditoRepository(db)

	authService := services.NewAuthService(dirigenteRepo, jwtService)
	dirigenteService := services.NewDirigenteService(
		db,
		dirigenteRepo,
		qrRepo,
		cfg.Security.BcryptCost,
		cfg.Codigo.Min,
		cfg.Codigo.Max,
	)
	asistenciaService := services.NewAsistenciaService(db, asistenciaRepo, dirigenteRepo, qrRepo)
	logger.Info("Services initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	dirigenteHandler := handlers.NewDirigenteHandler(dirigenteService, dirigenteRepo, qrRepo, logger)
	tribuHandler := handlers.NewTribuHandler(tribuRepo, logger)
	asistenciaHandler := handlers.NewAsistenciaHandler(asistenciaService, asistenciaRepo, logger)
	multaHandler := handlers.NewMultaHandler(multaRepo, logger)
	exoditoHandler := handlers.NewExoditoHandler(exoditoRepo, logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(requestLogger(logger))
	}

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// Public routes
	router.POST("/login", authHandler.Login)
	router.POST("/dirigente", dirigenteHandler.Crear)
	router.GET("/dirigente/:id/qr", dirigenteHandler.GetQR)
	router.GET("/dirigentes", dirigenteHandler.Listar)
	router.PUT("/dirigente/:id", dirigenteHandler.Actualizar)
	router.DELETE("/dirigente/:id", dirigenteHandler.Eliminar)
	router.PUT("/dirigente/:id/contrasena", dirigenteHandler.CambiarContrasena)
	router.GET("/tribus", tribuHandler.Listar)
	router.POST("/tribu/puntos", tribuHandler.SumarPuntos)

	// Protected routes (require a Bearer session token)
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.POST("/asistencia/qr", asistenciaHandler.RegistrarPorQR)
		protected.POST("/asistencia/manual", asistenciaHandler.RegistrarManual)
		protected.PUT("/asistencia", asistenciaHandler.Actualizar)
		protected.GET("/asistencia/fecha/:fecha", asistenciaHandler.ListarPorFecha)

		protected.GET("/multas", multaHandler.Listar)
		protected.GET("/multas/dirigente/:id", multaHandler.ListarPorDirigente)
		protected.POST("/multas", multaHandler.Crear)
		protected.DELETE("/multa/:id", multaHandler.Eliminar)

		protected.GET("/exoditos", exoditoHandler.Listar)
		protected.GET("/exoditos/tribu/:id_tribu", exoditoHandler.ListarPorTribu)
		protected.POST("/exoditos", exoditoHandler.Crear)
		protected.PUT("/exodito/:id", exoditoHandler.Actualizar)
		protected.DELETE("/exodito/:id", exoditoHandler.Eliminar)

		protected.GET("/asistencia/exoditos", exoditoHandler.ResumenAsistencia)
		protected.GET("/asistencia/exoditos/:fecha", exoditoHandler.ListarAsistenciaPorFecha)
		protected.POST("/asistencia/exoditos", exoditoHandler.RegistrarAsistencias)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		requestID := uuid.NewString()

		c.Next()

		latency := time.Since(start)

		ua := user_agent.New(c.Request.UserAgent())
		browser, _ := ua.Browser()

		fields := logrus.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"browser":    browser,
			"os":         ua.OS(),
			"mobile":     ua.Mobile(),
		}

		// Record authorization presence, never the token itself
		fields["has_auth"] = c.GetHeader("Authorization") != ""

		if dirigente, exists := middleware.GetDirigenteContext(c); exists {
			fields["id_dirigente"] = dirigente.IDDirigente
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case len(c.Errors) > 0:
			entry.WithField("errors", c.Errors.String()).Error("Request failed with errors")
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
