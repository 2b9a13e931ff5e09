package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pharmatlas/targetroll"
	"github.com/pharmatlas/targetroll/chembl"
	"github.com/pharmatlas/targetroll/target"
)

var (
	resolveStrategy string
	resolveConfig   string
	resolveBaseURL  string
	resolveJSON     bool
	resolveVerbose  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] ID...",
	Short: "Resolve target ids under a rollup strategy",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveStrategy, "strategy", "s", "smart_all",
		"strategy reference: @null, a built-in name, a .strat file, or a registered name")
	resolveCmd.Flags().StringVarP(&resolveConfig, "config", "c", "",
		"path to a YAML config for the annotation-store API")
	resolveCmd.Flags().StringVar(&resolveBaseURL, "base-url", "",
		"override the annotation-store API base URL")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "emit JSON instead of text")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "log traversal progress")
}

type resolution struct {
	Source   string          `json:"source"`
	Strategy string          `json:"strategy"`
	Targets  []target.Target `json:"targets"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg := chembl.DefaultConfig()
	if resolveConfig != "" {
		loaded, err := chembl.LoadConfig(resolveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if resolveBaseURL != "" {
		cfg.BaseURL = resolveBaseURL
	}

	level := slog.LevelWarn
	if resolveVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := targetroll.New(cfg, targetroll.WithLogger(logger))
	ctx := cmd.Context()

	var results []resolution
	for _, id := range args {
		targets, err := client.Rollup(ctx, resolveStrategy, id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		results = append(results, resolution{Source: id, Strategy: resolveStrategy, Targets: targets})
	}

	if resolveJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, res := range results {
		if len(res.Targets) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(no accepted targets)\n", res.Source)
			continue
		}
		for _, t := range res.Targets {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", res.Source, t.ID, t.Type, t.Name)
		}
	}
	return nil
}
