package main

import (
	"github.com/joho/godotenv"

	"github.com/webseer/webseer-go/cmd"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Load a local .env if present; the real environment always wins.
	_ = godotenv.Load()

	cmd.SetVersion(version, buildTime)
	cmd.Execute()
}
