// Command server runs the phonics HTTP API. Configuration comes from
// CONFIG_PATH (default ./config.yaml) and the environment.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/phonics-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
