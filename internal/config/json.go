// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version        string   `json:"version"`
		AllowedSources []string `json:"allowed_sources"`
		PaymentPolicy  string   `json:"payment_policy"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
	} `json:"app,omitempty"`

	Backend struct {
		URL            string   `json:"url"`
		Database       string   `json:"db"`
		Username       string   `json:"username"`
		Password       string   `json:"password"`
		SSLVerify      *bool    `json:"ssl_verify,omitempty"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxAttempts    int      `json:"max_attempts"`
		RetryDelay     Duration `json:"retry_delay"`
		JournalName    string   `json:"journal_name"`
	} `json:"backend,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Logging struct {
		File       string `json:"file"`
		AuditFile  string `json:"audit_file"`
		Level      string `json:"level"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"logging,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`

	Tracing struct {
		Enabled     bool    `json:"enabled"`
		SampleRatio float64 `json:"sample_ratio"`
	} `json:"tracing,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:        jsonCfg.App.Version,
			AllowedSources: jsonCfg.App.AllowedSources,
			PaymentPolicy:  jsonCfg.App.PaymentPolicy,
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
		},
		Backend: Backend{
			URL:            jsonCfg.Backend.URL,
			Database:       jsonCfg.Backend.Database,
			Username:       jsonCfg.Backend.Username,
			Password:       jsonCfg.Backend.Password,
			SSLVerify:      jsonCfg.Backend.SSLVerify,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
			MaxAttempts:    jsonCfg.Backend.MaxAttempts,
			RetryDelay:     time.Duration(jsonCfg.Backend.RetryDelay),
			JournalName:    jsonCfg.Backend.JournalName,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Logging: Logging{
			File:       jsonCfg.Logging.File,
			AuditFile:  jsonCfg.Logging.AuditFile,
			Level:      jsonCfg.Logging.Level,
			MaxSizeMB:  jsonCfg.Logging.MaxSizeMB,
			MaxBackups: jsonCfg.Logging.MaxBackups,
		},
		Workers: Workers{
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
		},
		Tracing: Tracing{
			Enabled:     jsonCfg.Tracing.Enabled,
			SampleRatio: jsonCfg.Tracing.SampleRatio,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
