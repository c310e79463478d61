// devtoken prints a session token for local testing of the gig-hire API.
//
//	devtoken --actor client1 --name "Client One" [--config gighire.yaml]
//
// The token is signed with the same secret and issuer the server would load,
// so it can be passed as the "token" cookie or an "Authorization: Bearer" header.
package main

import (
	"fmt"
	"os"
	"time"

	"gig-hire/internal/auth"
	"gig-hire/internal/config"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		configPath string
		actorID    string
		name       string
		ttl        time.Duration
	)

	flagSet := pflag.NewFlagSet("devtoken", pflag.ContinueOnError)
	config.AddFlags(flagSet, &configPath)
	flagSet.StringVar(&actorID, "actor", "", "actor id to put in the token subject (required)")
	flagSet.StringVar(&name, "name", "", "display name claim")
	flagSet.DurationVar(&ttl, "ttl", 0, "token lifetime (default: auth.token_ttl from config)")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if actorID == "" {
		return fmt.Errorf("--actor is required")
	}

	if configPath == "" {
		configPath = os.Getenv("GIGHIRE_CONFIG")
	}
	cfg, err := config.LoadFile(configPath, os.LookupEnv)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = cfg.Auth.TokenTTL
	}

	token, err := auth.NewJWTAuthority(cfg.Auth.Secret, cfg.Auth.Issuer, ttl).Issue(actorID, name)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
