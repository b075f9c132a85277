package cli

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/horiring/d3Network/pkg/config"
	"github.com/horiring/d3Network/pkg/observability"
	"github.com/horiring/d3Network/pkg/render/d3tree"
	"github.com/horiring/d3Network/pkg/tree"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address
	configPath string // optional TOML defaults file
	zoom       bool   // zoomable script variant
}

// newServeCmd creates the serve command for previewing a rendered tree.
// The document is assembled once at startup and served from memory: the
// standalone page at / and the bare fragment at /fragment.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: "127.0.0.1:8840"}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Preview a rendered tree over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML defaults file (default: ./"+config.DefaultPath+" if present)")
	cmd.Flags().BoolVar(&opts.zoom, "zoom", false, "enable scroll-wheel zoom and pan")

	return cmd
}

// previewDocuments renders the standalone page and the bare fragment once.
// Both share the defaults-file options; file and iframe output is forced off
// since the preview lives in memory.
func previewDocuments(root *tree.Node, opts *serveOpts) (page, fragment []byte, err error) {
	var f *config.File
	if opts.configPath != "" {
		f, err = config.Load(opts.configPath)
	} else {
		f, err = config.LoadDefault()
	}
	if err != nil {
		return nil, nil, err
	}

	base := f.Render.Options()
	if opts.zoom {
		base = append(base, d3tree.WithZoom())
	}

	a := d3tree.NewAssembler(d3tree.WithConsole(io.Discard))

	pageCfg := d3tree.NewConfig(base...)
	pageCfg.StandAlone = true
	pageCfg.File = ""
	pageCfg.Iframe = false
	pageResult, err := a.Render(root, pageCfg)
	if err != nil {
		return nil, nil, err
	}

	fragCfg := pageCfg
	fragCfg.StandAlone = false
	fragResult, err := a.Render(root, fragCfg)
	if err != nil {
		return nil, nil, err
	}

	return pageResult.Document, fragResult.Document, nil
}

// newServeRouter builds the preview router serving the pre-rendered bytes.
func newServeRouter(ctx context.Context, page, fragment []byte) *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestLogger(ctx))

	serveBytes := func(body []byte) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(body)
		}
	}

	r.Get("/", serveBytes(page))
	r.Get("/fragment", serveBytes(fragment))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "ok")
	})

	return r
}

// requestLogger logs each request at debug level and feeds the serve hooks.
func requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := loggerFromContext(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)
			elapsed := time.Since(start)
			logger.Debugf("%s %s -> %d (%s)", req.Method, req.URL.Path, ww.Status(), elapsed.Round(time.Microsecond))
			observability.Serve().OnRequest(req.Method, req.URL.Path, ww.Status(), elapsed)
		})
	}
}

// runServe renders the tree and serves the preview until the context is
// cancelled.
func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	root, err := loadTree(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded tree: %d nodes, depth %d", root.Count(), root.Depth())

	page, fragment, err := previewDocuments(root, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newServeRouter(ctx, page, fragment),
		ReadHeaderTimeout: 5 * time.Second,
	}

	printSuccess("Previewing %d nodes", root.Count())
	printServing("http://" + opts.addr + "/")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			printError("Shutdown: %v", err)
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
