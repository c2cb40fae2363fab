package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/blockinfo/internal/cliconfig"
	"github.com/bft-labs/blockinfo/pkg/client"
	"github.com/bft-labs/blockinfo/pkg/log"
)

const longHelp = `Post blockchain information to the app API.

The API base URL is picked from an environment table (NODE_ENV, default
"development") and resolved once at startup. Configure via file, env, or flags:

  ~/.blockinfo/config.toml     [api] table, token, http_timeout, log_level
  NODE_ENV, BLOCKINFO_*        environment overrides
  --env, --api, --token, ...   flag overrides`

var exampleUsage = strings.TrimSpace(`
  blockinfo add --params '{"txHash":"0xabc","block":123}' --token <jwt>
  NODE_ENV=production blockinfo add --params-file block.json
  blockinfo watch --dir ./outbox --backfill
  blockinfo envs --api staging=https://staging.example.com
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration between the root command and its
// subcommands.
type app struct {
	cfg          cliconfig.Config
	cfgPath      string
	apiOverrides map[string]string
	logger       zerolog.Logger
}

func newApp() *app {
	return &app{
		cfg:    cliconfig.DefaultConfig(),
		logger: cliconfig.Logger(),
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "blockinfo",
		Short:             "Post blockchain information to the app API",
		Long:              longHelp,
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file, .toml or .yaml (default: $HOME/.blockinfo/config.toml)")
	pf.StringVar(&a.cfg.Environment, "env", a.cfg.Environment, "environment identifier selecting the api base url (env: NODE_ENV)")
	pf.StringToStringVar(&a.apiOverrides, "api", nil, "environment=url entries added to the api table")
	pf.StringVar(&a.cfg.BaseURL, "base-url", "", "explicit api base url, bypasses the environment table")
	pf.StringVar(&a.cfg.Token, "token", "", "bearer token (env: BLOCKINFO_TOKEN)")
	pf.DurationVar(&a.cfg.HTTPTimeout, "timeout", a.cfg.HTTPTimeout, "HTTP timeout, 0 disables it")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error")

	root.AddCommand(a.addCommand(), a.watchCommand(), a.envsCommand())
	return root
}

func main() {
	a := newApp()
	root := newRootCommand(a)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Error().Err(err).Msg("blockinfo")
		stop()
		os.Exit(1)
	}
}

// loadConfig layers the config file, then environment variables, then
// --api entries over the defaults. Flags set explicitly always win.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	} else if a.cfgPath != "" {
		return fmt.Errorf("load config: %s does not exist", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	a.cfg.MergeAPI(a.apiOverrides)

	level, err := log.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = a.logger.Level(level)
	return nil
}

// newClient resolves the base URL and announces it. Commands that talk to
// the API call it exactly once.
func (a *app) newClient() (*client.Client, error) {
	if a.cfg.BaseURL != "" {
		a.logger.Debug().
			Str("environment", a.cfg.Environment).
			Msg("explicit base url set, environment table not consulted")
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	// Log bypasses the level filter: the startup line is always written.
	a.logger.Log().
		Str("environment", a.cfg.Environment).
		Msg("pointing to " + a.cfg.BaseURL)
	a.logger.Debug().Interface("config", a.cfg.Redacted()).Msg("configuration")

	return client.New(a.cfg.BaseURL,
		client.WithTimeout(a.cfg.HTTPTimeout),
		client.WithLogger(log.NewZerologAdapterWithLogger(a.logger)),
	)
}
