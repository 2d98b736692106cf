package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/nstepanov-dev/shortener/internal/app"
)

func main() {
	// .env нужен только для локального запуска, в проде переменные приходят из окружения
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
