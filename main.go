package main

import (
	"fmt"
	"os"

	"github.com/example/kyoushitsu/internal/config"
	"github.com/example/kyoushitsu/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] != "serve" {
		switch os.Args[1] {
		case "-h", "--help", "help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [command]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve   Start the HTTP server (default if no command given)\n")
}
