package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/praxis-dev/client/apistub"
	"github.com/praxis-dev/client/logger"
)

// praxis-stub serves a local stand-in of the Praxis backend so the
// client can be developed and demoed offline.
func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", ":8000", "listen address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	slog.SetDefault(logger.New(os.Stderr, *debug))

	server := apistub.New()
	log.Printf("Starting stub API server on %s", *addr)
	err := server.Start(*addr)
	log.Printf("Server stopped with error: %v", err)
}
