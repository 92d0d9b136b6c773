package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/artifact"
	"github.com/gogpu/artifact/internal/imageio"
)

type applyFlags struct {
	seedFlags
	output    string
	outputDir string
	ext       string
}

func newApplyCmd(root *rootFlags) *cobra.Command {
	flags := &applyFlags{}
	cmd := &cobra.Command{
		Use:   "apply <input>",
		Short: "Add one artifact to an image tile",
		Long: `Apply loads the input tile, derives a seed from its tile or slide identity
and writes the altered image. Without --output the result is named
<stem>_<type prefix>.<ext> inside --output-dir (default: current directory).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			out, err := runApply(cmd, args[0], flags, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (overrides --output-dir and --ext)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "d", "", "directory for the output file, created when missing")
	cmd.Flags().StringVar(&flags.ext, "ext", "", "output extension (default: input extension)")
	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")
	return cmd
}

// runApply performs the artifact and returns the path written. Nothing is
// written unless the artifact succeeded.
func runApply(cmd *cobra.Command, input string, flags *applyFlags, cfg *artifact.Config) (string, error) {
	logger := loggerFromContext(cmd.Context())

	t, perTile, err := flags.resolve(cfg.Policy)
	if err != nil {
		return "", err
	}
	out := flags.output
	if out == "" {
		out = filepath.Join(flags.outputDir, OutputName(input, t, flags.ext))
	}
	if _, err := imageio.WritableFormat(out); err != nil {
		return "", err
	}

	img, err := imageio.Load(input)
	if err != nil {
		return "", err
	}
	seed, id := Seed(input, t, perTile, flags.seedOffset)
	logger.Debug("derived seed", "type", t, "granularity", granularity(perTile), "identity", id, "seed", seed)

	p := newProgress(logger)
	result, err := artifact.Apply(img, t, seed, cfg)
	if err != nil {
		return "", fmt.Errorf("apply %s: %w", t, err)
	}

	if flags.outputDir != "" {
		if err := os.MkdirAll(flags.outputDir, 0o750); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := imageio.Save(out, result); err != nil {
		return "", err
	}
	p.done("applied artifact", "type", t, "seed", seed, "output", out)
	return out, nil
}
