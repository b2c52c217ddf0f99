package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gessopro/gesseiros-api/internal/config"
	dbpkg "github.com/gessopro/gesseiros-api/internal/db"
	"github.com/gessopro/gesseiros-api/internal/logger"
	"github.com/gessopro/gesseiros-api/internal/routes"
)

func main() {

	logger.Setup()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(cors.Default())

	// fotos enviadas ficam acessíveis publicamente
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
