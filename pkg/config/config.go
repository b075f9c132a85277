// Package config loads optional render defaults from a TOML file.
//
// The file carries a single [render] table whose keys mirror the render
// flags of the CLI. Every key is optional; unset keys fall back to the
// built-in defaults, and explicit command-line flags override both.
//
//	[render]
//	height = 500
//	width = 700
//	link_colour = "#999"
//	zoom = true
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/horiring/d3Network/pkg/errors"
	"github.com/horiring/d3Network/pkg/render/d3tree"
)

// DefaultPath is the defaults file looked up in the working directory when
// no --config flag is given.
const DefaultPath = "d3network.toml"

// File is the decoded defaults file.
type File struct {
	Render Render `toml:"render"`
}

// Render mirrors the render options. Pointer fields distinguish "unset"
// from an explicit zero value.
type Render struct {
	Height       *float64 `toml:"height"`
	Width        *float64 `toml:"width"`
	FontSize     *float64 `toml:"fontsize"`
	LinkColour   *string  `toml:"link_colour"`
	NodeColour   *string  `toml:"node_colour"`
	TextColour   *string  `toml:"text_colour"`
	Opacity      *float64 `toml:"opacity"`
	Diameter     *float64 `toml:"diameter"`
	Zoom         *bool    `toml:"zoom"`
	StandAlone   *bool    `toml:"standalone"`
	Iframe       *bool    `toml:"iframe"`
	ScriptSource *string  `toml:"script_source"`
}

// Load reads and decodes a defaults file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return &f, nil
}

// LoadDefault loads [DefaultPath] if it exists. A missing file is not an
// error; it returns an empty File.
func LoadDefault() (*File, error) {
	f, err := Load(DefaultPath)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return &File{}, nil
	}
	return f, err
}

// Options converts the set fields into render options, in a fixed order so
// repeated loads behave identically.
func (r Render) Options() []d3tree.Option {
	var opts []d3tree.Option
	if r.Height != nil {
		opts = append(opts, d3tree.WithHeight(*r.Height))
	}
	if r.Width != nil {
		opts = append(opts, d3tree.WithWidth(*r.Width))
	}
	if r.FontSize != nil {
		opts = append(opts, d3tree.WithFontSize(*r.FontSize))
	}
	if r.LinkColour != nil {
		opts = append(opts, d3tree.WithLinkColour(*r.LinkColour))
	}
	if r.NodeColour != nil {
		opts = append(opts, d3tree.WithNodeColour(*r.NodeColour))
	}
	if r.TextColour != nil {
		opts = append(opts, d3tree.WithTextColour(*r.TextColour))
	}
	if r.Opacity != nil {
		opts = append(opts, d3tree.WithOpacity(*r.Opacity))
	}
	if r.Diameter != nil {
		opts = append(opts, d3tree.WithDiameter(*r.Diameter))
	}
	if r.Zoom != nil && *r.Zoom {
		opts = append(opts, d3tree.WithZoom())
	}
	if r.StandAlone != nil && !*r.StandAlone {
		opts = append(opts, d3tree.WithFragment())
	}
	if r.Iframe != nil && *r.Iframe {
		opts = append(opts, d3tree.WithIframe())
	}
	if r.ScriptSource != nil {
		opts = append(opts, d3tree.WithScriptSource(*r.ScriptSource))
	}
	return opts
}
