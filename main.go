package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/KunalGarg-PEC/BlogsApi/internal/config"
	"github.com/KunalGarg-PEC/BlogsApi/internal/database"
	"github.com/KunalGarg-PEC/BlogsApi/internal/mailer"
	"github.com/KunalGarg-PEC/BlogsApi/internal/media"
	"github.com/KunalGarg-PEC/BlogsApi/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; viper env overrides pick these up
	_ = godotenv.Load()

	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// external services
	uploader, err := media.NewCloudinary(cfg.Cloudinary)
	if err != nil {
		log.Fatalf("init cloudinary: %v", err)
	}
	mail := mailer.NewSMTP(cfg.Mail, cfg.App.BaseURL)

	// setup router
	r := router.SetupRouter(cfg, db, uploader, mail)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
