package main

import (
	"os"

	"ZencrowWebsite/internal/cli"
	"ZencrowWebsite/pkg/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error(log.Fields{"error": err.Error()}, "zencrowctl failed")
		os.Exit(1)
	}
}
