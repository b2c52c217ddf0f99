package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gessopro/gesseiros-api/internal/audit"
	"github.com/gessopro/gesseiros-api/internal/auth"
	"github.com/gessopro/gesseiros-api/internal/config"
	"github.com/gessopro/gesseiros-api/internal/handlers"
	"github.com/gessopro/gesseiros-api/internal/middleware"
	"github.com/gessopro/gesseiros-api/internal/storage"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	authSvc := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	uploads := storage.NewUploads(cfg.UploadDir, cfg.MaxUploadSize)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, authSvc, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)
	gesseiroHandler := handlers.NewGesseiroHandler(db, uploads, auditDispatcher)
	fotoHandler := handlers.NewFotoHandler(db, uploads, auditDispatcher)
	servicoHandler := handlers.NewServicoHandler(db, auditDispatcher)

	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.POST("/cadastro-completo", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/gesseiros", gesseiroHandler.List)
		api.GET("/gesseiros/:id", gesseiroHandler.Get)
		api.GET("/gesseiros/:id/fotos", fotoHandler.List)
		api.GET("/gesseiros/:id/servicos", servicoHandler.List)

		// ------------------------------
		// AUTENTICADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(authSvc))
		{
			secured.GET("/me", meHandler.GetMe)

			// rotas mutantes escopadas por gesseiro: dono obrigatório
			owner := secured.Group("/gesseiros/:id")
			owner.Use(middleware.RequireOwner())
			{
				owner.PUT("", gesseiroHandler.Update)
				owner.DELETE("", gesseiroHandler.Delete)

				owner.POST("/fotos", fotoHandler.Upload)
				owner.DELETE("/fotos/:fotoId", fotoHandler.Delete)

				owner.POST("/servicos", servicoHandler.Create)
				owner.DELETE("/servicos/:servicoId", servicoHandler.Delete)
			}
		}
	}
}
