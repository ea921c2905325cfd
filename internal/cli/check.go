package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacak/semantic/pkg/errors"
	"github.com/pacak/semantic/pkg/output"
)

// newCheckCmd creates the check command for CI freshness verification.
//
// check renders the manifests in memory and compares the result against the
// files on disk. Nothing is written; a stale or missing file makes the
// command fail so a CI job can demand regeneration.
func newCheckCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "check <manifest.toml> [manifest.toml...]",
		Short: "Verify that generated files are up to date",
		Long: `Check that committed documentation files match their manifests.

The manifests are rendered in memory and compared byte for byte against
the files in the output directory. The command exits non-zero when any
file is missing or differs, without modifying anything.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				path, err := pickManifest()
				if err != nil {
					return err
				}
				args = []string{path}
			}
			return runCheck(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "output", "o", ".", "directory holding the generated files")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatMan, "output format: man, markdown or all")

	return cmd
}

func runCheck(ctx context.Context, paths []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	targets, err := buildTargets(paths, opts)
	if err != nil {
		return err
	}

	stale := 0
	for _, tgt := range targets {
		isStale, err := output.IsStale(tgt.path, tgt.data)
		if err != nil {
			return err
		}
		if isStale {
			stale++
			printWarning("stale: %s", tgt.path)
		} else {
			logger.Debug("up to date", "file", tgt.path)
		}
	}

	prog.done(fmt.Sprintf("Checked %d files", len(targets)))
	if stale > 0 {
		return errors.New(errors.ErrCodeOutputStale,
			"%d of %d files are stale, run \"semantic render\" to regenerate", stale, len(targets))
	}
	printSuccess("all %d files up to date", len(targets))
	return nil
}
