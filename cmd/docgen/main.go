package main

import (
	"context"
	"log"
	"os"

	"github.com/goliatone/go-docgen/internal/scaffold"
	"github.com/goliatone/go-docgen/pkg/orchestrator"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 && args[0] == "init" {
		if err := scaffold.Run(); err != nil {
			log.Fatalf("Failed to initialise project: %v", err)
		}
		return
	}

	gen := orchestrator.New()
	if err := gen.Run(context.Background(), args); err != nil {
		log.Fatalf("Failed to generate documentation: %v", err)
	}
}
