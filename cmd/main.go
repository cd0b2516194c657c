package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cliente/crudpb/config"
	"github.com/cliente/crudpb/database"
	"github.com/cliente/crudpb/internal/auditlog"
	"github.com/cliente/crudpb/internal/evento"
	"github.com/cliente/crudpb/internal/usuario"
	"github.com/cliente/crudpb/middleware"
	"github.com/cliente/crudpb/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&usuario.Usuario{},
		&evento.Evento{},
		&auditlog.AuditLog{},
	); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.LoadHTMLGlob("templates/*")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:" + cfg.Port},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
