package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/algographics/algographics/pkg/errors"
	"github.com/algographics/algographics/pkg/export"
	"github.com/algographics/algographics/pkg/scene"
	"github.com/algographics/algographics/pkg/surface"
)

// renderOpts holds the command-line flags for the render command.
// Flags that were not set leave the scene's own settings alone.
type renderOpts struct {
	output      string   // output file, base path or directory
	formats     []string // output formats: "svg", "png"
	width       int      // canvas width override
	height      int      // canvas height override
	transparent bool     // transparent PNG background
	embedFont   bool     // embed the font in SVG output
}

// renderCommand creates the render command for drawing scene files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene.toml>...",
		Short: "Render scene files to SVG and/or PNG",
		Long: `Render scene files to SVG and/or PNG.

Without --output each figure is written next to its scene file. With a single
scene, --output names the file (one format) or the base path (several
formats). With several scenes, --output is a directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				opts.width = 0
			}
			if !cmd.Flags().Changed("height") {
				opts.height = 0
			}
			return c.runRender(cmd.Context(), cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, base path (several formats) or directory (several scenes)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", export.DefaultWidth, "canvas width (overrides the scene)")
	cmd.Flags().IntVar(&opts.height, "height", export.DefaultHeight, "canvas height (overrides the scene)")
	cmd.Flags().BoolVar(&opts.transparent, "transparent", false, "leave the PNG background transparent")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the font in SVG output")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"]. Duplicates are dropped.
func parseFormats(s string) []string {
	if s == "" {
		return []string{errors.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	return formats
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// outputPath returns where the figure of input in format goes.
func outputPath(output, input, format string, scenes, formats int) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	switch {
	case output == "":
		return filepath.Join(filepath.Dir(input), base+"."+format)
	case scenes > 1:
		return filepath.Join(output, base+"."+format)
	case formats > 1:
		return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
	}
	return output
}

// runRender renders every scene in inputs to every requested format.
func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, inputs []string, opts *renderOpts) error {
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
		if len(inputs) > 1 {
			if err := os.MkdirAll(opts.output, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", opts.output)
			}
		}
	}

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		var spinner *Spinner
		if c.interactive {
			spinner = newSpinner(ctx, c.status, fmt.Sprintf("Rendering %s...", input))
			spinner.Start()
		}
		paths, err := c.renderScene(input, opts, len(inputs))
		if spinner != nil {
			spinner.Stop()
		}
		if err != nil {
			return err
		}
		printSuccess(cmd.OutOrStdout(), "Rendered %s", input)
		for _, p := range paths {
			printFile(cmd.OutOrStdout(), p)
		}
	}
	return nil
}

// renderScene draws input once into a recorder and replays it into each
// requested format. It returns the written paths.
func (c *CLI) renderScene(input string, opts *renderOpts, scenes int) ([]string, error) {
	prog := newProgress(c.Logger)

	s, err := scene.Load(input)
	if err != nil {
		return nil, err
	}
	applyOverrides(s, opts)
	if err := errors.ValidateCanvasSize(s.Width, s.Height); err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded scene", "path", input, "rows", len(s.Rows), "size", fmt.Sprintf("%dx%d", s.Width, s.Height))

	rec := surface.NewRecorder()
	defer rec.Close()
	s.Draw(rec)
	if err := rec.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "draw %s", input)
	}
	c.Logger.Debug("recorded scene", "path", input, "ops", len(rec.Ops()))

	var written []string
	for _, format := range opts.formats {
		out := outputPath(opts.output, input, format, scenes, len(opts.formats))
		if err := save(rec.Replay, format, out, s.Options()); err != nil {
			return written, errors.Wrap(errors.ErrCodeInternal, err, "render %s", input)
		}
		c.Logger.Debug("wrote figure", "path", out, "format", format)
		written = append(written, out)
	}

	prog.done("Rendered " + filepath.Base(input))
	return written, nil
}

func applyOverrides(s *scene.Scene, opts *renderOpts) {
	if opts.width != 0 {
		s.Width = opts.width
	}
	if opts.height != 0 {
		s.Height = opts.height
	}
	s.Transparent = s.Transparent || opts.transparent
	s.EmbedFont = s.EmbedFont || opts.embedFont
}

func save(fn export.DrawFunc, format, path string, opts []export.Option) error {
	switch format {
	case errors.FormatPNG:
		return export.SavePNG(fn, path, opts...)
	case errors.FormatSVG:
		return export.SaveSVG(fn, path, opts...)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", format)
}
