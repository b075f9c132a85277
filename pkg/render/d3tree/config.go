package d3tree

import (
	"math"
	"strconv"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 900.0

	// DefaultFontSize is the default label font size in pixels.
	DefaultFontSize = 10.0

	// DefaultLinkColour is the default colour of the links between nodes.
	DefaultLinkColour = "#ccc"

	// DefaultNodeColour is the default node fill colour.
	DefaultNodeColour = "#3182bd"

	// DefaultTextColour is the default label colour.
	DefaultTextColour = "#3182bd"

	// DefaultOpacity is the default node and label opacity, in (0, 1].
	DefaultOpacity = 0.9

	// DefaultDiameter is the default diameter of the radial layout in pixels.
	DefaultDiameter = 980.0

	// DefaultScriptSource is the external D3 library the document references.
	DefaultScriptSource = "http://d3js.org/d3.v3.min.js"
)

// Config bundles every render option of a single document build. It is
// created once per invocation by [NewConfig] and never mutated afterwards;
// colour values are opaque CSS colour-spec strings passed through verbatim.
type Config struct {
	Height       float64 // canvas height in pixels
	Width        float64 // canvas width in pixels
	FontSize     float64 // label font size in pixels
	LinkColour   string  // link stroke colour
	NodeColour   string  // node fill colour
	TextColour   string  // label fill colour
	Opacity      float64 // node and label opacity in (0, 1]
	Diameter     float64 // radial layout diameter in pixels
	Zoom         bool    // wire scroll-wheel zoom/pan into the document
	StandAlone   bool    // emit a full page shell instead of a bare fragment
	File         string  // output file path; empty means console output
	Iframe       bool    // additionally emit an iframe snippet (file mode only)
	ScriptSource string  // URL of the client-side rendering library
}

// Option configures a [Config] during construction.
type Option func(*Config)

// WithHeight sets the canvas height in pixels.
func WithHeight(h float64) Option { return func(c *Config) { c.Height = h } }

// WithWidth sets the canvas width in pixels.
func WithWidth(w float64) Option { return func(c *Config) { c.Width = w } }

// WithFontSize sets the label font size in pixels.
func WithFontSize(s float64) Option { return func(c *Config) { c.FontSize = s } }

// WithLinkColour sets the link stroke colour.
func WithLinkColour(colour string) Option { return func(c *Config) { c.LinkColour = colour } }

// WithNodeColour sets the node fill colour.
func WithNodeColour(colour string) Option { return func(c *Config) { c.NodeColour = colour } }

// WithTextColour sets the label fill colour.
func WithTextColour(colour string) Option { return func(c *Config) { c.TextColour = colour } }

// WithOpacity sets the node and label opacity.
func WithOpacity(o float64) Option { return func(c *Config) { c.Opacity = o } }

// WithDiameter sets the diameter of the radial layout.
func WithDiameter(d float64) Option { return func(c *Config) { c.Diameter = d } }

// WithZoom selects the zoomable script variant.
func WithZoom() Option { return func(c *Config) { c.Zoom = true } }

// WithFragment drops the page shell, emitting only style, script, and data.
func WithFragment() Option { return func(c *Config) { c.StandAlone = false } }

// WithFile directs output to the given file instead of the console.
func WithFile(path string) Option { return func(c *Config) { c.File = path } }

// WithIframe additionally emits an iframe snippet referencing the output
// file. Requires standalone output.
func WithIframe() Option { return func(c *Config) { c.Iframe = true } }

// WithScriptSource overrides the URL of the client-side rendering library.
func WithScriptSource(url string) Option { return func(c *Config) { c.ScriptSource = url } }

// NewConfig builds a Config from the documented defaults and the given
// options. Standalone output is on by default.
func NewConfig(opts ...Option) Config {
	c := Config{
		Height:       DefaultHeight,
		Width:        DefaultWidth,
		FontSize:     DefaultFontSize,
		LinkColour:   DefaultLinkColour,
		NodeColour:   DefaultNodeColour,
		TextColour:   DefaultTextColour,
		Opacity:      DefaultOpacity,
		Diameter:     DefaultDiameter,
		StandAlone:   true,
		ScriptSource: DefaultScriptSource,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LinkOpacity is the stroke opacity of links, half the node opacity.
func (c Config) LinkOpacity() float64 {
	return c.Opacity * 0.5
}

// FontSizeBig is the enlarged label size used for mouseover emphasis.
func (c Config) FontSizeBig() float64 {
	return c.FontSize * 1.9
}

// FrameHeight is the height of the iframe wrapping the document: the canvas
// height plus a 7% margin for the page chrome.
func (c Config) FrameHeight() float64 {
	return c.Height + c.Height*0.07
}

// FrameWidth is the width of the iframe wrapping the document: the canvas
// width plus a 3% margin.
func (c Config) FrameWidth() float64 {
	return c.Width + c.Width*0.03
}

// Variant returns the script variant selected by the Zoom flag.
func (c Config) Variant() Variant {
	if c.Zoom {
		return VariantZoom
	}
	return VariantStatic
}

// formatNumber renders a numeric option the way it appears in the document:
// no exponent, no trailing zeros. Values are rounded to a microdot so that
// derived geometry like 900*1.03 prints as 927 rather than a float artifact.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}
