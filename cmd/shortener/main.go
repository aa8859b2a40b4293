package main

import (
	"log"

	"github.com/avc-dev/base62-shortener/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
