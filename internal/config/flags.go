// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optionalBool records whether a boolean flag was given at all, so an
// explicit "false" survives the merge.
type optionalBool struct {
	value *bool
}

func (o *optionalBool) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.FormatBool(*o.value)
}

func (o *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

func (o *optionalBool) IsBoolFlag() bool { return true }

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-backend-url, -backend-db, -backend-user, -backend-password
//	-ssl-verify verify backend TLS certificates
//	-max-attempts backend attempts per call
//	-retry-delay pause between backend attempts (e.g. "1s")
//	-journal payment journal name
//	-policy payment policy: partial or exact
//	-sources comma separated allowed sources
//	-token-sign-key caller token signing key
//	-token-issuer caller token issuer
//	-log-file, -audit-log-file, -log-level
//	-health-interval backend health probe interval
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var serverAddress NetAddress
	var sslVerify optionalBool
	var databaseDSN, jsonConfigPath string
	var backendURL, backendDB, backendUser, backendPassword, journal string
	var policy, sources, tokenSignKey, tokenIssuer string
	var logFile, auditLogFile, logLevel string
	var maxAttempts int
	var retryDelay, requestTimeout, healthInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&backendURL, "backend-url", "", "Backend base URL")
	fs.StringVar(&backendDB, "backend-db", "", "Backend database name")
	fs.StringVar(&backendUser, "backend-user", "", "Backend username")
	fs.StringVar(&backendPassword, "backend-password", "", "Backend password")
	fs.Var(&sslVerify, "ssl-verify", "Verify backend TLS certificates")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Backend attempts per call")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Pause between backend attempts (e.g., 1s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.StringVar(&journal, "journal", "", "Payment journal name")
	fs.StringVar(&policy, "policy", "", "Payment policy: partial or exact")
	fs.StringVar(&sources, "sources", "", "Comma separated allowed sources")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Caller token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Caller token issuer")
	fs.StringVar(&logFile, "log-file", "", "Application log file")
	fs.StringVar(&auditLogFile, "audit-log-file", "", "Audit log file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Backend health probe interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AllowedSources: splitList(sources),
			PaymentPolicy:  policy,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
		},
		Backend: Backend{
			URL:         backendURL,
			Database:    backendDB,
			Username:    backendUser,
			Password:    backendPassword,
			SSLVerify:   sslVerify.value,
			MaxAttempts: maxAttempts,
			RetryDelay:  retryDelay,
			JournalName: journal,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Logging: Logging{
			File:      logFile,
			AuditFile: auditLogFile,
			Level:     logLevel,
		},
		Workers:      Workers{HealthCheckInterval: healthInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
