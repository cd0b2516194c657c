package routes

import (
	"net/http"

	"github.com/cliente/crudpb/config"
	"github.com/cliente/crudpb/database"
	"github.com/cliente/crudpb/internal/auditlog"
	"github.com/cliente/crudpb/internal/evento"
	"github.com/cliente/crudpb/internal/usuario"
	"github.com/cliente/crudpb/middleware"
	"github.com/gin-gonic/gin"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.Use(middleware.RateLimiter())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/usuarios")
	})

	// ========== Audit Log Module ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	r.GET("/api/auditlogs", auditHandler.GetRecent)

	// ========== Usuarios ==========
	usuarioRepo := usuario.NewRepository(database.DB)
	usuarioSvc := usuario.NewService(usuarioRepo, auditSvc)
	usuarioHandler := usuario.NewHandler(usuarioSvc)

	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("", usuarioHandler.Listar)
		usuarios.GET("/novo", usuarioHandler.NovoForm)
		usuarios.POST("", usuarioHandler.Salvar)
		usuarios.GET("/editar/:id", usuarioHandler.EditarForm)
		usuarios.POST("/:id", usuarioHandler.Atualizar)
		usuarios.GET("/deletar/:id", usuarioHandler.Deletar)
	}

	// ========== Eventos ==========
	eventoRepo := evento.NewRepository(database.DB)
	eventoSvc := evento.NewService(eventoRepo, usuarioSvc, auditSvc)
	eventoHandler := evento.NewHandler(eventoSvc)

	eventos := r.Group("/eventos")
	{
		eventos.GET("", eventoHandler.Listar)
		eventos.GET("/novo", eventoHandler.NovoForm)
		eventos.POST("", eventoHandler.Salvar)
		eventos.GET("/editar/:id", eventoHandler.EditarForm)
		eventos.POST("/:id", eventoHandler.Atualizar)
		eventos.GET("/deletar/:id", eventoHandler.Deletar)
	}
}
