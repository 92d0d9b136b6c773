// Package cli implements the artifactgen command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/artifact"
	"github.com/gogpu/artifact/internal/config"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the artifactgen CLI.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background())
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	verbose    bool
	configPath string
}

// loadConfig returns the defaults or the merged --config file.
func (f *rootFlags) loadConfig() (*artifact.Config, error) {
	if f.configPath == "" {
		return artifact.DefaultConfig(), nil
	}
	return config.Load(f.configPath)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:          "artifactgen",
		Short:        "artifactgen adds synthetic artifacts to histology tiles",
		Long:         `artifactgen adds reproducible synthetic artifacts (marker, folds, sectioning, illumination, bubbles, stain and tears) to histology image tiles. Seeds are derived from the tile or slide identity, so reruns produce identical output.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			installLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "TOML or YAML file overriding artifact options")

	root.AddCommand(newApplyCmd(flags))
	root.AddCommand(newSeedCmd(flags))
	root.AddCommand(newTypesCmd(flags))
	return root
}

// seedFlags select how a seed is derived from an input path.
type seedFlags struct {
	typeName   string
	seedOffset int64
	perTile    bool
	perSlide   bool
}

func (f *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.typeName, "type", "t", "", "artifact type (see 'artifactgen types')")
	cmd.Flags().Int64Var(&f.seedOffset, "seed-offset", 0, "value added to the derived seed, for extra trials")
	cmd.Flags().BoolVar(&f.perTile, "per-tile", false, "derive the seed from the tile identity")
	cmd.Flags().BoolVar(&f.perSlide, "per-slide", false, "derive the seed from the slide identity")
	_ = cmd.MarkFlagRequired("type")
	cmd.MarkFlagsMutuallyExclusive("per-tile", "per-slide")
}

// resolve parses the type and picks the granularity: flags win over the
// configured policy.
func (f *seedFlags) resolve(policy artifact.Policy) (artifact.Type, bool, error) {
	t, err := artifact.ParseType(f.typeName)
	if err != nil {
		return 0, false, err
	}
	switch {
	case f.perTile:
		return t, true, nil
	case f.perSlide:
		return t, false, nil
	}
	return t, policy.PerTile(t), nil
}

func granularity(perTile bool) string {
	if perTile {
		return "tile"
	}
	return "slide"
}

func newSeedCmd(root *rootFlags) *cobra.Command {
	flags := &seedFlags{}
	cmd := &cobra.Command{
		Use:   "seed <input>",
		Short: "Print the seed an input tile would receive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			t, perTile, err := flags.resolve(cfg.Policy)
			if err != nil {
				return err
			}
			seed, id := Seed(args[0], t, perTile, flags.seedOffset)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", seed, granularity(perTile), id)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newTypesCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List artifact types with their seed offsets and granularity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range artifact.Types() {
				if _, err := fmt.Fprintf(w, "%-13s %d  %s  %s\n", t, t.Offset(), t.Suffix(), granularity(cfg.Policy.PerTile(t))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
