package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmycare/clinic-scheduler/internal/config"
	"github.com/bookmycare/clinic-scheduler/internal/credentials"
	dbpkg "github.com/bookmycare/clinic-scheduler/internal/db"
	"github.com/bookmycare/clinic-scheduler/internal/middleware"
	"github.com/bookmycare/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Literal-equality verifier keeps the stored credentials compatible
	// with the legacy accounts; swap for credentials.Bcrypt{} to migrate.
	verifier := credentials.Plaintext{}

	if err := dbpkg.Seed(db, cfg, verifier); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, verifier)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
