package kit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 5 * time.Second

func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// RunHTTPServer serves srv inside g until ctx is done, then shuts it down
// within shutdownTimeout.
func RunHTTPServer(ctx context.Context, g *errgroup.Group, srv *http.Server, log *zap.Logger, shutdownTimeout time.Duration) {
	g.Go(func() error {
		<-ctx.Done()

		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		log.Info("http server stopping", zap.String("addr", srv.Addr))
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("http server starting", zap.String("addr", srv.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	})
}
