// Command hash-admin-token generates an admin token and its Argon2id
// hash for ADMIN_TOKEN_HASH, or hashes a token supplied with -token.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bornBrian/ViralCart/internal/auth"
)

type output struct {
	Token string `json:"token"`
	Hash  string `json:"hash"`
}

func main() {
	var (
		token  = flag.String("token", "", "Token to hash (generated when empty)")
		format = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	plaintext := *token
	if plaintext == "" {
		generated, err := generateToken()
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate token:", err)
			os.Exit(1)
		}
		plaintext = generated
	}

	hash, err := auth.HashToken(plaintext)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash token:", err)
		os.Exit(1)
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println("token:", plaintext)
		fmt.Println("hash: ", hash)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output{Token: plaintext, Hash: hash})
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "vc_admin_" + base64.RawURLEncoding.EncodeToString(buf), nil
}
