package main

import (
	"log"

	"github.com/MrSnakeDoc/soccerfront/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ soccerfront failed to start: %v", err)
	}
}
