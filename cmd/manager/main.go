// Command manager resets hive state and lists recorded exchanges.
//
//	manager -hive http://localhost:8000 clear inert
//	manager -hive http://localhost:8000 -limit 50 exchanges
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-hivemind/internal/adapter"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/utils"
	"github.com/MKhiriev/go-hivemind/models"
)

func main() {
	var (
		address  = flag.String("hive", "http://localhost:8000", "hive base URL")
		timeout  = flag.Duration("timeout", 10*time.Second, "request timeout")
		signKey  = flag.String("token-sign-key", os.Getenv("TOKEN_SIGN_KEY"), "JWT signing key; empty disables auth")
		issuer   = flag.String("token-issuer", envOr("TOKEN_ISSUER", "hivemind"), "JWT issuer")
		subject  = flag.String("subject", "manager", "JWT subject")
		limit    = flag.Uint64("limit", 20, "number of exchanges to list")
		logLevel = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	log := logger.NewLogger("manager", *logLevel)

	var token string
	if *signKey != "" {
		var err error
		token, err = utils.GenerateJWTToken(*issuer, *subject, time.Minute, *signKey)
		if err != nil {
			log.Fatal().Err(err).Msg("error generating token")
		}
	}

	manager, err := adapter.NewHTTPManagerAdapter(*address, *timeout, token, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating manager adapter")
	}

	ctx := context.Background()
	args := flag.Args()
	switch {
	case len(args) == 2 && args[0] == "clear":
		mode, err := models.ParseClearMode(args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("invalid clear mode")
		}
		if err = manager.Clear(ctx, mode); err != nil {
			log.Fatal().Err(err).Msg("error clearing hive state")
		}
		fmt.Printf("cleared %s state\n", mode)
	case len(args) == 1 && args[0] == "exchanges":
		exchanges, err := manager.RecentExchanges(ctx, *limit)
		if err != nil {
			log.Fatal().Err(err).Msg("error listing exchanges")
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(exchanges); err != nil {
			log.Fatal().Err(err).Msg("error printing exchanges")
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: manager [flags] clear inert|all | exchanges")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
