// Command token issues caller tokens for the payment endpoints.
//
// The signing key and issuer are read from APP_TOKEN_SIGN_KEY and
// APP_TOKEN_ISSUER, the same variables the gateway verifies with.
//
//	token -source esadad -ttl 720h
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
	"github.com/MKhiriev/go-invoice-gateway/internal/service"
	"github.com/MKhiriev/go-invoice-gateway/internal/validators"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

func main() {
	log := logger.NewLogger("invoice-gateway-token")

	var source string
	var ttl time.Duration
	flag.StringVar(&source, "source", "", "calling source the token is issued to")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.GetAppConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	// the token subject must be a source the gateway accepts
	req := models.CustomerRequest{CustomerID: "-", Source: source}
	if err = validators.NewRequestValidator(cfg.AllowedSources).Validate(ctx, &req, validators.FieldSource); err != nil {
		log.Fatal().Err(err).Str("source", source).Strs("allowed_sources", cfg.AllowedSources).Msg("invalid source")
	}

	token, err := service.NewAuthService(cfg, log).CreateToken(ctx, req.Source, ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Fprintln(os.Stdout, token.String())
}
