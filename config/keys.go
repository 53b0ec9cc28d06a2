package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
)

// GenerateRandomKey returns a random hex key (32 bytes = 64 hex chars),
// used to sign admin tokens for the lifetime of this process.
func GenerateRandomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}
	return hex.EncodeToString(b)
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// AdminPassword returns the plaintext admin password from the environment,
// or "" when the admin surface should stay disabled.
func AdminPassword() string {
	return os.Getenv("ADMIN_PASSWORD")
}
