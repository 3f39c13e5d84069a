package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/dashwright/dashwright/pkg/adapters/httpserve"
)

// ServeOptions contains all the configuration for the serve command.
type ServeOptions struct {
	SiteDir string
	Addr    string
	Debug   bool
}

// ExecuteServe runs a preview server over a generated site directory until
// the process is interrupted.
func ExecuteServe(ctx context.Context, opts ServeOptions) error {
	logger := createLogger(opts.Debug)

	if info, err := os.Stat(opts.SiteDir); err != nil || !info.IsDir() {
		return fmt.Errorf("site directory %q does not exist; run build first", opts.SiteDir)
	}

	server := httpserve.New(opts.SiteDir, httpserve.WithLogger(logger))

	sc := NewSignalContext(ctx)
	defer sc.Cancel()

	httpServer := &http.Server{Addr: opts.Addr, Handler: server.Handler()}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Serving %s on http://localhost%s\n", opts.SiteDir, opts.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sc.Done():
		if sig := sc.Signal(); sig != nil {
			logger.Info("shutting down", "signal", sig.String())
		}
		return httpServer.Shutdown(context.Background())
	}
}
