// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a            server listen address host:port
//	-grpc-address gRPC health listen address host:port
//	-server       server address used by the client
//	-d            PostgreSQL DSN
//	-state        client SQLite state path
//	-redis        Redis URL for refresh sessions
//	-files        attachments directory
//	-c / -config  JSON config path
//	-token-sign-key, -token-issuer, -token-duration, -refresh-duration
//	-request-timeout
//	-ai-key       generative model API key
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("eco-ideas", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcAddress NetAddress
	var adapterAddress string
	var databaseDSN, stateDSN, redisURL, attachmentsDir string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, aiKey string
	var tokenDuration, refreshDuration, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health address host:port")
	fs.StringVar(&adapterAddress, "server", "", "Server address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&stateDSN, "state", "", "Client state file")
	fs.StringVar(&redisURL, "redis", "", "Redis URL")
	fs.StringVar(&attachmentsDir, "files", "", "Attachments directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Access token duration (e.g., 15m)")
	fs.DurationVar(&refreshDuration, "refresh-duration", 0, "Refresh session duration (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&aiKey, "ai-key", "", "Generative model API key")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			RefreshDuration: refreshDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{AttachmentsDir: attachmentsDir},
			Cache: Cache{RedisURL: redisURL},
			State: State{DSN: stateDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		AI: AI{APIKey: aiKey},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP address or "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
