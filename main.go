package main

import (
	"log"

	"goc-wiki-section/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
