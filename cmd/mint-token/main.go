// Command mint-token prints a bearer token for the API when AUTH_SECRET is set.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"labquest-backend/internal/auth"
	"labquest-backend/internal/config"
)

func main() {
	subject := flag.String("sub", "frontend", "token subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()
	if cfg.AuthSecret == "" {
		log.Fatal("AUTH_SECRET is not set")
	}

	token, err := auth.GenerateToken([]byte(cfg.AuthSecret), *subject, *ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
