package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pacak/semantic/pkg/errors"
	"github.com/pacak/semantic/pkg/manifest"
	"github.com/pacak/semantic/pkg/output"
)

// Output formats accepted by --format.
const (
	formatMan      = "man"
	formatMarkdown = "markdown"
	formatAll      = "all"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outDir string // directory the generated files are written to
	format string // output format: "man", "markdown" or "all"
}

// target is one generated file: its destination path and rendered content.
type target struct {
	path string
	data []byte
}

// newRenderCmd creates the render command for generating documentation files.
//
// Each manifest produces a man page (name.section) and/or a markdown file
// (name.md) in the output directory. Files whose content is already current
// are left untouched so that timestamps stay stable.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <manifest.toml> [manifest.toml...]",
		Short: "Generate man pages and markdown from manifests",
		Long: `Render TOML page manifests to documentation files.

By default each manifest produces a ROFF man page named name.section
(for example grep.1). With --format markdown a name.md file is written
instead, and --format all produces both.

Without arguments an interactive picker lists the .toml files in the
current directory.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				path, err := pickManifest()
				if err != nil {
					return err
				}
				args = []string{path}
			}
			return runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "output", "o", ".", "output directory for generated files")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatMan, "output format: man, markdown or all")

	return cmd
}

func runRender(ctx context.Context, paths []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	targets, err := buildTargets(paths, opts)
	if err != nil {
		return err
	}

	updated := 0
	for _, tgt := range targets {
		changed, err := output.WriteUpdated(tgt.path, tgt.data)
		if err != nil {
			return err
		}
		if changed {
			updated++
			printFile(tgt.path)
		} else {
			logger.Debug("unchanged", "file", tgt.path)
		}
	}

	prog.done(fmt.Sprintf("Rendered %d pages", len(paths)))
	printSuccess("%d files generated, %d updated", len(targets), updated)
	return nil
}

// buildTargets loads every manifest and renders the requested formats,
// without touching the filesystem beyond reading the manifests.
func buildTargets(paths []string, opts renderOpts) ([]target, error) {
	if err := validateFormat(opts.format); err != nil {
		return nil, err
	}

	var targets []target
	for _, path := range paths {
		page, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}

		if opts.format == formatMan || opts.format == formatAll {
			data, err := page.RenderMan()
			if err != nil {
				return nil, err
			}
			targets = append(targets, target{
				path: filepath.Join(opts.outDir, page.Filename()),
				data: []byte(data),
			})
		}
		if opts.format == formatMarkdown || opts.format == formatAll {
			data, err := page.RenderMarkdown()
			if err != nil {
				return nil, err
			}
			targets = append(targets, target{
				path: filepath.Join(opts.outDir, page.Page.Name+".md"),
				data: []byte(data + "\n"),
			})
		}
	}
	return targets, nil
}

func validateFormat(format string) error {
	switch format {
	case formatMan, formatMarkdown, formatAll:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (want man, markdown or all)", format)
	}
}
