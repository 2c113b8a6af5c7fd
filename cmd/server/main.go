package main

import (
	"log"
	"os"

	"dietcalc/config"
	"dietcalc/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
