package main

import (
	"context"
	"log"

	"github.com/dmartlabs/shopping-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("shopping api exited: %v", err)
	}
}
