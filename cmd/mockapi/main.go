// Command mockapi serves a local stand-in for the sales API so seeder runs
// can be exercised without a real deployment.
package main

import (
	"flag"
	"log"

	"semilla/internal/logging"
	"semilla/internal/mockapi"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger, closeLog, err := logging.New(logging.Options{Level: *level})
	if err != nil {
		log.Fatalf("logger setup: %v", err)
	}
	defer closeLog()

	srv := mockapi.New(logger)
	if err := srv.Listen(*addr); err != nil {
		log.Fatalf("mock API stopped: %v", err)
	}
}
