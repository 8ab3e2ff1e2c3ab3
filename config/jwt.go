package config

import (
	"os"
	"strconv"
	"time"
)

var (
	JWTSecret     []byte
	JWTExpiration time.Duration
)

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-this-secret-before-deploying"
	}
	JWTSecret = []byte(secret)

	JWTExpiration = 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			JWTExpiration = time.Duration(hours) * time.Hour
		}
	}
}
