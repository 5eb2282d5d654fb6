// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors StructuredConfig with JSON-friendly field types.
type jsonConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		RefreshDuration Duration `json:"refresh_duration"`
		Version         string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Files struct {
			AttachmentsDir string `json:"attachments_dir"`
			PublicURL      string `json:"public_url"`
		} `json:"files"`
		Objects struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseSSL    bool   `json:"use_ssl"`
			PublicURL string `json:"public_url"`
		} `json:"objects"`
		Cache struct {
			RedisURL string `json:"redis_url"`
		} `json:"cache"`
		State struct {
			DSN string `json:"dsn"`
		} `json:"state"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
		SignInRate     float64  `json:"signin_rate"`
		SignInBurst    int      `json:"signin_burst"`
		ChatRate       float64  `json:"chat_rate"`
		ChatBurst      int      `json:"chat_burst"`
	} `json:"server"`

	AI struct {
		APIKey   string   `json:"api_key"`
		Endpoint string   `json:"endpoint"`
		Model    string   `json:"model"`
		Timeout  Duration `json:"timeout"`
	} `json:"ai"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
		ReconcileGoals  bool     `json:"reconcile_goals"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:    j.App.TokenSignKey,
			TokenIssuer:     j.App.TokenIssuer,
			TokenDuration:   time.Duration(j.App.TokenDuration),
			RefreshDuration: time.Duration(j.App.RefreshDuration),
			Version:         j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Files: Files{
				AttachmentsDir: j.Storage.Files.AttachmentsDir,
				PublicURL:      j.Storage.Files.PublicURL,
			},
			Objects: Objects{
				Endpoint:  j.Storage.Objects.Endpoint,
				AccessKey: j.Storage.Objects.AccessKey,
				SecretKey: j.Storage.Objects.SecretKey,
				Bucket:    j.Storage.Objects.Bucket,
				UseSSL:    j.Storage.Objects.UseSSL,
				PublicURL: j.Storage.Objects.PublicURL,
			},
			Cache: Cache{RedisURL: j.Storage.Cache.RedisURL},
			State: State{DSN: j.Storage.State.DSN},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			MaxUploadSize:  j.Server.MaxUploadSize,
			SignInRate:     j.Server.SignInRate,
			SignInBurst:    j.Server.SignInBurst,
			ChatRate:       j.Server.ChatRate,
			ChatBurst:      j.Server.ChatBurst,
		},
		AI: AI{
			APIKey:   j.AI.APIKey,
			Endpoint: j.AI.Endpoint,
			Model:    j.AI.Model,
			Timeout:  time.Duration(j.AI.Timeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(j.Workers.RefreshInterval),
			ReconcileGoals:  j.Workers.ReconcileGoals,
		},
	}, nil
}

// Duration accepts both "30s"-style strings and integer nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
