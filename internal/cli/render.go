package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/horiring/d3Network/pkg/config"
	"github.com/horiring/d3Network/pkg/render/d3tree"
	"github.com/horiring/d3Network/pkg/tree"
)

// renderOpts holds the command-line flags for the render command.
// These options mirror the render configuration surface one to one.
type renderOpts struct {
	configPath   string  // optional TOML defaults file
	output       string  // output file path; empty means console output
	height       float64 // canvas height in pixels
	width        float64 // canvas width in pixels
	fontsize     float64 // label font size in pixels
	linkColour   string  // link stroke colour
	nodeColour   string  // node fill colour
	textColour   string  // label colour
	opacity      float64 // node and label opacity
	diameter     float64 // radial layout diameter in pixels
	zoom         bool    // zoomable script variant
	standalone   bool    // full page shell vs bare fragment
	iframe       bool    // emit iframe snippet referencing the output file
	scriptSource string  // rendering-library URL
}

// newRenderCmd creates the render command for assembling documents.
// It reads a JSON tree from a file (or stdin with "-") and emits the
// document to the console or a file according to the output flags.
//
// Defaults follow the render configuration: 600x900 canvas, 10px labels,
// standalone output to the console, static (non-zoom) script variant.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		height:       d3tree.DefaultHeight,
		width:        d3tree.DefaultWidth,
		fontsize:     d3tree.DefaultFontSize,
		linkColour:   d3tree.DefaultLinkColour,
		nodeColour:   d3tree.DefaultNodeColour,
		textColour:   d3tree.DefaultTextColour,
		opacity:      d3tree.DefaultOpacity,
		diameter:     d3tree.DefaultDiameter,
		standalone:   true,
		scriptSource: d3tree.DefaultScriptSource,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON tree as a D3 document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML defaults file (default: ./"+config.DefaultPath+" if present)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: console)")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.fontsize, "fontsize", opts.fontsize, "label font size in pixels")
	cmd.Flags().StringVar(&opts.linkColour, "link-colour", opts.linkColour, "link stroke colour")
	cmd.Flags().StringVar(&opts.nodeColour, "node-colour", opts.nodeColour, "node fill colour")
	cmd.Flags().StringVar(&opts.textColour, "text-colour", opts.textColour, "label colour")
	cmd.Flags().Float64Var(&opts.opacity, "opacity", opts.opacity, "node and label opacity (0, 1]")
	cmd.Flags().Float64Var(&opts.diameter, "diameter", opts.diameter, "radial layout diameter in pixels")
	cmd.Flags().BoolVar(&opts.zoom, "zoom", false, "enable scroll-wheel zoom and pan")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", opts.standalone, "emit a full page shell")
	cmd.Flags().BoolVar(&opts.iframe, "iframe", false, "also emit an iframe snippet (requires --standalone)")
	cmd.Flags().StringVar(&opts.scriptSource, "script-source", opts.scriptSource, "URL of the D3 library")

	return cmd
}

// buildConfig resolves the render configuration: built-in defaults, then the
// TOML defaults file, then explicitly set flags, in increasing precedence.
func buildConfig(cmd *cobra.Command, opts *renderOpts) (d3tree.Config, error) {
	var (
		f   *config.File
		err error
	)
	if opts.configPath != "" {
		f, err = config.Load(opts.configPath)
	} else {
		f, err = config.LoadDefault()
	}
	if err != nil {
		return d3tree.Config{}, err
	}

	cfg := d3tree.NewConfig(f.Render.Options()...)

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("fontsize") {
		cfg.FontSize = opts.fontsize
	}
	if flags.Changed("link-colour") {
		cfg.LinkColour = opts.linkColour
	}
	if flags.Changed("node-colour") {
		cfg.NodeColour = opts.nodeColour
	}
	if flags.Changed("text-colour") {
		cfg.TextColour = opts.textColour
	}
	if flags.Changed("opacity") {
		cfg.Opacity = opts.opacity
	}
	if flags.Changed("diameter") {
		cfg.Diameter = opts.diameter
	}
	if flags.Changed("zoom") {
		cfg.Zoom = opts.zoom
	}
	if flags.Changed("standalone") {
		cfg.StandAlone = opts.standalone
	}
	if flags.Changed("iframe") {
		cfg.Iframe = opts.iframe
	}
	if flags.Changed("script-source") {
		cfg.ScriptSource = opts.scriptSource
	}
	if opts.output != "" {
		cfg.File = opts.output
	}

	return cfg, nil
}

// loadTree reads the input tree from a JSON file, or from stdin when the
// argument is "-".
func loadTree(input string) (*tree.Node, error) {
	if input == "-" {
		return tree.ReadTree(os.Stdin)
	}
	return tree.ReadTreeFile(input)
}

// runRender loads the tree and runs the assembly pipeline. Status lines go
// to the logger (stderr) so console document output stays uncorrupted;
// file outputs additionally get a styled confirmation line.
func runRender(ctx context.Context, input string, cfg d3tree.Config) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Reading tree from %s", input)

	root, err := loadTree(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded tree: %d nodes, depth %d", root.Count(), root.Depth())

	result, err := d3tree.NewAssembler().Render(root, cfg)
	if err != nil {
		return err
	}
	logger.Debugf("Assembled %s document: %d bytes", result.Variant, len(result.Document))

	if result.Path != "" {
		printSuccess("Rendered %s (%s)", result.Mode, byteCount(len(result.Document)))
		printFile(result.Path)
	} else {
		logger.Infof("Rendered %s: %d bytes", result.Mode, len(result.Document))
	}
	return nil
}
