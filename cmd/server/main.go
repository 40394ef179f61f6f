package main

import (
	"log"

	_ "atomictasks/docs"
	"atomictasks/internal/config"
	"atomictasks/internal/server"
)

// @title           Atomic Tasks API
// @version         1.0
// @description     API for managing tasks: create, list, filter, sort, paginate, update, and delete.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
