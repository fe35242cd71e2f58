package main

import (
	"log"

	"github.com/sadeepdeshal/CALCULATOR/internal/app"
	"github.com/sadeepdeshal/CALCULATOR/internal/config"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
