package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pombredanne/autocomplete/config"
	"github.com/pombredanne/autocomplete/engine"
	"github.com/pombredanne/autocomplete/internal/serialize"
)

func newBuildCmd() *cobra.Command {
	var out string
	var configPath string

	cmd := &cobra.Command{
		Use:   "build <type> <basename>",
		Short: "Read a build-file directory and persist a binary index",
		Long: `build reads <basename>.dict/.completions/.inverted/.forward/.mapped_minimal
and writes a single persisted binary blob (internal/serialize's visitor-pattern
layout) that the query subcommand can load without re-reading the build files.

<type> must be "plain" or "blocked"; it is re-specified at query time because
the persisted blob itself is inverted-index-variant-agnostic.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBuild(args[0], args[1], out, configPath)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output path for the persisted index (default: <basename>.bin)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config overriding the default tunables")
	return cmd
}

func runBuild(typ, basename, out, configPath string) error {
	if typ != "plain" && typ != "blocked" {
		return newUsageError("unknown index type %q: want \"plain\" or \"blocked\"", typ)
	}
	if out == "" {
		out = basename + ".bin"
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	dir, base := filepath.Dir(basename), filepath.Base(basename)
	in, err := engine.ReadBuildInputs(dir, base, cfg, cliLog)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	// Round-trip through the chosen engine variant once, so a structurally
	// invalid build input (spec.md §7's CorruptIndex) fails build rather
	// than surfacing only at query time.
	if typ == "plain" {
		if _, err := engine.NewFromBuildInputs(in, cfg, cliLog); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	} else {
		if _, err := engine.NewBlockedFromBuildInputs(in, cfg, cliLog); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("build: create %s: %w", out, err)
	}
	defer f.Close()

	if err := serialize.Write(f, in); err != nil {
		return fmt.Errorf("build: write %s: %w", out, err)
	}

	cliLog.Info("build: wrote index", "path", out, "type", typ, "tokens", len(in.Tokens), "docs", in.NumDoc)
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
