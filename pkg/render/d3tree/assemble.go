package d3tree

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/horiring/d3Network/pkg/errors"
	"github.com/horiring/d3Network/pkg/observability"
)

// OutputMode identifies the destination and framing of one document build.
// It is resolved once from the configuration before any rendering work.
type OutputMode int

const (
	// ModeConsoleFragment emits style+script+tree to the console, no shell.
	ModeConsoleFragment OutputMode = iota

	// ModeConsoleStandalone emits a full document to the console.
	ModeConsoleStandalone

	// ModeFileFragment writes a fragment to the named file.
	ModeFileFragment

	// ModeFileStandalone writes a full document to the named file.
	ModeFileStandalone

	// ModeFileStandaloneIframe writes a full document to the named file and
	// emits an iframe snippet referencing it to the console.
	ModeFileStandaloneIframe
)

// String returns a short human-readable mode name.
func (m OutputMode) String() string {
	switch m {
	case ModeConsoleFragment:
		return "console fragment"
	case ModeConsoleStandalone:
		return "console standalone"
	case ModeFileFragment:
		return "file fragment"
	case ModeFileStandalone:
		return "file standalone"
	case ModeFileStandaloneIframe:
		return "file standalone + iframe"
	default:
		return "unknown"
	}
}

// Auto-generated output file names: fixed prefix, random token, fixed
// extension. Generation applies only when iframe output is requested
// without an explicit file.
const (
	autoFilePrefix  = "d3tree-"
	autoFileExt     = ".html"
	autoTokenLength = 5
)

// Result describes a finished document build. The document bytes are
// returned regardless of destination so embedding callers can reuse them
// without re-rendering.
type Result struct {
	Mode     OutputMode // resolved output mode
	Path     string     // output file, empty for console modes
	Document []byte     // the assembled document or fragment
	Iframe   string     // iframe snippet, empty unless iframe mode
	Variant  Variant    // script variant baked into the document
}

// Assembler orchestrates validation, serialization, template composition,
// and output dispatch. The zero options produce an assembler writing console
// output to stdout with UUID-backed file-name tokens.
type Assembler struct {
	console io.Writer
	tokens  TokenSource
}

// AssemblerOption configures an [Assembler].
type AssemblerOption func(*Assembler)

// WithConsole redirects the default output channel (fragment/document
// emission and the iframe snippet) to w.
func WithConsole(w io.Writer) AssemblerOption {
	return func(a *Assembler) { a.console = w }
}

// WithTokenSource replaces the random token source used for auto-generated
// file names.
func WithTokenSource(ts TokenSource) AssemblerOption {
	return func(a *Assembler) {
		if ts != nil {
			a.tokens = ts
		}
	}
}

// NewAssembler creates an assembler with the given options.
func NewAssembler(opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		console: os.Stdout,
		tokens:  uuidToken,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Render builds the document for v under cfg and dispatches it according to
// the resolved output mode. The call either fully succeeds, producing
// exactly one coherent output, or fails before anything is written.
//
// Validation order: option conflicts first, then the script source, then
// output-name generation, then the root-container check. All failures carry
// a code from pkg/errors.
func (a *Assembler) Render(v any, cfg Config) (*Result, error) {
	hooks := observability.Render()
	start := time.Now()

	if cfg.Iframe && !cfg.StandAlone {
		return nil, errors.New(errors.ErrCodeConfigConflict, "iframe output requires standalone output")
	}
	if err := errors.ValidateScriptSource(cfg.ScriptSource); err != nil {
		return nil, err
	}

	path := cfg.File
	if path == "" && cfg.Iframe {
		path = autoFilePrefix + a.tokens(autoTokenLength) + autoFileExt
	}
	if path != "" {
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
	}

	serializeStart := time.Now()
	assignment, err := SerializeAssignment(v)
	hooks.OnSerializeComplete(len(assignment), time.Since(serializeStart), err)
	if err != nil {
		return nil, err
	}

	variant := cfg.Variant()
	composeStart := time.Now()
	blocks, err := Compose(cfg, variant)
	hooks.OnComposeComplete(string(variant), time.Since(composeStart), err)
	if err != nil {
		return nil, err
	}

	mode := resolveMode(path != "", cfg.StandAlone, cfg.Iframe)
	doc := assemble(blocks, assignment, cfg.StandAlone)

	result := &Result{
		Mode:     mode,
		Path:     path,
		Document: doc,
		Variant:  variant,
	}

	if err := a.dispatch(result, cfg, hooks); err != nil {
		hooks.OnAssembleComplete(mode.String(), len(doc), time.Since(start), err)
		return nil, err
	}

	hooks.OnAssembleComplete(mode.String(), len(doc), time.Since(start), nil)
	return result, nil
}

// resolveMode maps the three output selectors onto the mode table. The
// iframe/non-standalone conflict is rejected before this point, and iframe
// without a file has already produced an auto-generated name, so the three
// booleans cover every remaining combination exactly once.
func resolveMode(fileSet, standAlone, iframe bool) OutputMode {
	switch {
	case !fileSet && !standAlone:
		return ModeConsoleFragment
	case !fileSet && standAlone:
		return ModeConsoleStandalone
	case fileSet && !standAlone:
		return ModeFileFragment
	case fileSet && standAlone && !iframe:
		return ModeFileStandalone
	default:
		return ModeFileStandaloneIframe
	}
}

// assemble concatenates the blocks in the fixed document order: page head
// (standalone only), stylesheet, script prefix, tree assignment, script
// suffix, closing body marker (standalone only).
func assemble(b Blocks, assignment string, standAlone bool) []byte {
	var buf bytes.Buffer
	if standAlone {
		buf.WriteString(b.PageHead)
	}
	buf.WriteString(b.StyleSheet)
	buf.WriteString(b.ScriptPrefix)
	buf.WriteString(assignment)
	buf.WriteString("\n")
	buf.WriteString(b.ScriptSuffix)
	if standAlone {
		buf.WriteString(bodyCloseMarker)
	}
	return buf.Bytes()
}

// dispatch performs the output side effects for the resolved mode and fills
// in the iframe snippet when one is emitted.
func (a *Assembler) dispatch(r *Result, cfg Config, hooks observability.RenderHooks) error {
	switch r.Mode {
	case ModeConsoleFragment, ModeConsoleStandalone:
		n, err := a.console.Write(r.Document)
		hooks.OnWrite("console", n, err)
		if err != nil {
			return errors.Wrap(errors.ErrCodeWrite, err, "write console output")
		}
		return nil

	case ModeFileFragment, ModeFileStandalone, ModeFileStandaloneIframe:
		if err := os.WriteFile(r.Path, r.Document, 0o644); err != nil {
			hooks.OnWrite(r.Path, 0, err)
			return errors.Wrap(errors.ErrCodeWrite, err, "write %s", r.Path)
		}
		hooks.OnWrite(r.Path, len(r.Document), nil)

		if r.Mode == ModeFileStandaloneIframe {
			r.Iframe = iframeSnippet(r.Path, cfg)
			n, err := io.WriteString(a.console, r.Iframe+"\n")
			hooks.OnWrite("console", n, err)
			if err != nil {
				return errors.Wrap(errors.ErrCodeWrite, err, "write iframe snippet")
			}
		}
		return nil

	default:
		return errors.New(errors.ErrCodeInternal, "unhandled output mode %d", r.Mode)
	}
}

// iframeSnippet builds the single-line reference pointing at the written
// file, sized to the derived frame dimensions.
func iframeSnippet(path string, cfg Config) string {
	return fmt.Sprintf("<iframe src='%s' height=%s width=%s></iframe>",
		path, formatNumber(cfg.FrameHeight()), formatNumber(cfg.FrameWidth()))
}
