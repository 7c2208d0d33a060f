// Command organizer-token prints a bearer token accepted by POST /api/events.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"devevent/internal/adapters/auth"
)

const secretEnv = "ORGANIZER_JWT_SECRET"

func main() {
	subject := flag.String("subject", "organizer", "token subject, usually the organizer name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := organizerSecret()
	if secret == "" {
		fmt.Fprintln(os.Stderr, secretEnv+" is not set")
		os.Exit(1)
	}

	token, err := auth.NewJWTIssuer(secret).Issue(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

// organizerSecret reads the signing secret from the environment, then from envFiles
// (".env" when none are given). Variables already set are never overridden.
func organizerSecret(envFiles ...string) string {
	if s := os.Getenv(secretEnv); s != "" {
		return s
	}
	_ = godotenv.Load(envFiles...)
	return os.Getenv(secretEnv)
}
