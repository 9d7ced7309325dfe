package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kbenzel/schichtplaner/pkg/catalog"
	"github.com/kbenzel/schichtplaner/pkg/config"
	"github.com/kbenzel/schichtplaner/pkg/database"
	"github.com/kbenzel/schichtplaner/pkg/handlers"
	"github.com/kbenzel/schichtplaner/pkg/hub"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	cat, err := catalog.Load(cfg.ShiftsPath)
	if err != nil {
		log.Fatalf("could not load shift config: %v", err)
	}
	log.Printf("Shift config loaded from %s (%d persons)", cfg.ShiftsPath, len(cat.Names()))

	db := database.InitDB()
	h := &handlers.Handler{
		Catalog: cat,
		Config:  cfg,
		Hub:     hub.NewClient(cfg.HAURL, cfg.HAToken),
		DB:      db,
	}

	r := gin.Default()

	// Routes
	r.GET("/", h.Index)
	r.POST("/add_shifts", h.AddShifts)

	api := r.Group("/api")
	{
		api.GET("/options", h.Options)
		api.GET("/shift_types/:name", h.ShiftTypes)
		api.GET("/shift_details/:name", h.ShiftDetails)
		api.POST("/validate", h.ValidateShifts)
		api.GET("/stats", h.GetStats)
	}

	addr := cfg.Addr()
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
