package d3tree

import (
	"regexp"
	"strings"

	"github.com/horiring/d3Network/pkg/errors"
)

// Blocks holds the four substituted template roles of one document build.
// Blocks are transient: produced by [Compose] and consumed by the assembler
// within a single call.
type Blocks struct {
	PageHead     string
	StyleSheet   string
	ScriptPrefix string
	ScriptSuffix string
}

// placeholderPattern matches the {{name}} placeholders of the catalog.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z]+)\}\}`)

// Compose substitutes every placeholder of the four template roles with the
// corresponding Config value or a value derived from it. Derived values are
// computed once and reused everywhere they appear: the link opacity is half
// the node opacity, and the mouseover font size is 1.9x the label size.
//
// An unresolved placeholder means the catalog and the binding set have
// drifted apart; it fails with [errors.ErrCodeTemplate] and is an internal
// fault, not a user error.
func Compose(cfg Config, v Variant) (Blocks, error) {
	vals := bindings(cfg)

	var b Blocks
	var err error
	if b.PageHead, err = substitute(pageHeadTemplate, vals); err != nil {
		return Blocks{}, err
	}
	if b.StyleSheet, err = substitute(styleSheetTemplate, vals); err != nil {
		return Blocks{}, err
	}
	if b.ScriptPrefix, err = substitute(scriptPrefixTemplate, vals); err != nil {
		return Blocks{}, err
	}
	if b.ScriptSuffix, err = substitute(scriptSuffixTemplate(v), vals); err != nil {
		return Blocks{}, err
	}
	return b, nil
}

// bindings enumerates the closed placeholder set of the catalog.
func bindings(cfg Config) map[string]string {
	return map[string]string{
		"height":      formatNumber(cfg.Height),
		"width":       formatNumber(cfg.Width),
		"fontsize":    formatNumber(cfg.FontSize),
		"fontsizeBig": formatNumber(cfg.FontSizeBig()),
		"linkColour":  cfg.LinkColour,
		"nodeColour":  cfg.NodeColour,
		"textColour":  cfg.TextColour,
		"opacity":     formatNumber(cfg.Opacity),
		"linkOpacity": formatNumber(cfg.LinkOpacity()),
		"diameter":    formatNumber(cfg.Diameter),
		"d3Script":    cfg.ScriptSource,
	}
}

// substitute replaces every {{name}} in tmpl with its bound value.
// All placeholders must resolve; unknown names are collected and reported
// together so a catalog mismatch surfaces in a single error.
func substitute(tmpl string, vals map[string]string) (string, error) {
	var missing []string
	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[2 : len(m)-2]
		v, ok := vals[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		return "", errors.New(errors.ErrCodeTemplate, "unresolved placeholder(s): %s", strings.Join(missing, ", "))
	}
	return out, nil
}
