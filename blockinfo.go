// Package blockinfo posts blockchain information to an environment-selected app API.
//
// Example usage:
//
//	cfg := blockinfo.DefaultConfig()
//	cfg.Environment = "production"
//	cfg.API["production"] = "https://api.example.com"
//
//	c, err := blockinfo.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.AddBlockchainInformation(ctx, blockinfo.Params{"txHash": "0xabc"}, token)
package blockinfo

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/blockinfo/internal/cliconfig"
	"github.com/bft-labs/blockinfo/pkg/client"
	"github.com/bft-labs/blockinfo/pkg/log"
)

// Config selects the environment and holds the environment -> base URL table.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Client posts to the app API under one resolved base URL.
type Client = client.Client

// Params is the JSON body of an addBlockchainInformation call.
type Params = client.Params

// StatusError reports a non-2xx response.
type StatusError = client.StatusError

// DefaultConfig returns a Config targeting the development environment.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// New validates cfg, resolves its base URL once and returns a client bound
// to it. The config's HTTPTimeout applies unless opts supply an HTTP client.
// Client logs go to stderr at the config's LogLevel unless opts supply a logger.
func New(cfg Config, opts ...client.Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts = append([]client.Option{
		client.WithTimeout(cfg.HTTPTimeout),
		client.WithLogger(log.NewZerologAdapter(os.Stderr, level)),
	}, opts...)
	return client.New(cfg.BaseURL, opts...)
}

// Logger returns the zerolog logger used by the command line tool.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}
