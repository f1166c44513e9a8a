package main

import (
	"log"
	"os"

	"rentdesk/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
