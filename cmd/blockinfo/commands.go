package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bft-labs/blockinfo/internal/cliconfig"
	"github.com/bft-labs/blockinfo/internal/watch"
	"github.com/bft-labs/blockinfo/pkg/log"
)

func (a *app) addCommand() *cobra.Command {
	var paramsJSON, paramsFile string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post one set of blockchain information and print the response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := readParams(cmd.InOrStdin(), paramsJSON, paramsFile)
			if err != nil {
				return err
			}

			c, err := a.newClient()
			if err != nil {
				return err
			}

			resp, err := c.AddBlockchainInformation(cmd.Context(), params, a.cfg.Token)
			if err != nil {
				return fmt.Errorf("add blockchain information: %w", err)
			}
			return writeResponse(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&paramsJSON, "params", "", "request body as a JSON object")
	cmd.Flags().StringVar(&paramsFile, "params-file", "", "file holding the JSON request body, - for stdin")
	cmd.MarkFlagsMutuallyExclusive("params", "params-file")
	return cmd
}

func (a *app) watchCommand() *cobra.Command {
	wcfg := watch.Config{Debounce: watch.DefaultDebounce}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Post every *.json file written to a directory until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}

			wcfg.Token = a.cfg.Token
			w, err := watch.New(wcfg, c, log.NewZerologAdapterWithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := w.Run(cmd.Context()); err != nil {
				return err
			}
			a.logger.Info().Msg("received signal, stopped watching")
			return nil
		},
	}

	cmd.Flags().StringVar(&wcfg.Dir, "dir", "", "directory to watch for params files")
	cmd.Flags().BoolVar(&wcfg.Backfill, "backfill", false, "post files already in the directory first")
	cmd.Flags().DurationVar(&wcfg.Debounce, "debounce", wcfg.Debounce, "quiet period before a changed file is posted")
	if err := cmd.MarkFlagRequired("dir"); err != nil {
		a.logger.Info().Err(err).Msg("failed to mark dir flag required")
	}
	return cmd
}

func (a *app) envsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List the environment table, marking the active environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printEnvironments(cmd.OutOrStdout(), a.cfg)
			return nil
		},
	}
}

func printEnvironments(w io.Writer, cfg cliconfig.Config) {
	active := color.New(color.FgGreen, color.Bold)
	for _, env := range cfg.Environments() {
		line := fmt.Sprintf("%-14s %s", env, cfg.API[env])
		if env == cfg.Environment {
			active.Fprintln(w, "* "+line)
			continue
		}
		fmt.Fprintln(w, "  "+line)
	}
	if cfg.BaseURL != "" {
		fmt.Fprintf(w, "\nbase url override: %s\n", cfg.BaseURL)
	}
}

func writeResponse(w io.Writer, resp any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
