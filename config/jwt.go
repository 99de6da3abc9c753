package config

import (
	"log"
	"os"
	"time"
)

const devJWTSecret = "blogify-dev-secret-change-this-in-production"

type JWTConfig struct {
	Secret     []byte
	Expiration time.Duration
}

func loadJWTConfig(production bool) JWTConfig {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if production {
			log.Fatal("JWT_SECRET is required in production")
		}
		secret = devJWTSecret
	}

	return JWTConfig{
		Secret:     []byte(secret),
		Expiration: getDuration("JWT_EXPIRATION", 24*time.Hour),
	}
}
