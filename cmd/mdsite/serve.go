package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdsite/internal/hints"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// runServe compiles the site and serves it until ctx is canceled.
// Requests that match no route are served from the static directory.
func runServe(ctx context.Context, args []string, env *Environment) error {
	cmd, err := parseCommand("serve", args, printServeUsage, env)
	if err != nil {
		return err
	}
	cfg, logger, err := cmd.prepare(env)
	if err != nil {
		return err
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	undo, _ := maxprocs.Set(maxprocs.Logger(logger.Debugf))
	defer undo()

	routes, err := compileSite(cfg, logger)
	if err != nil {
		return err
	}

	handler := accessLog(routes.Handler(staticHandler(cfg.StaticDir)), logger)
	return serve(ctx, cfg.Address, handler, env, logger)
}

// serve runs an HTTP server for handler on address. When ctx is canceled
// the server stops accepting connections and waits up to shutdownTimeout
// for in-flight requests.
func serve(ctx context.Context, address string, handler http.Handler, env *Environment, logger *logrus.Logger) error {
	ln, err := env.Listen("tcp", address)
	if err != nil {
		return withHint(fmt.Errorf("%w: %w", ErrListen, err), hints.ForListen(address))
	}

	errorLog := logger.WriterLevel(logrus.WarnLevel)
	defer errorLog.Close()

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          log.New(errorLog, "", 0),
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	logger.WithField("address", ln.Addr().String()).Info("listening")

	select {
	case err := <-errc:
		return fmt.Errorf("%w: %w", ErrServe, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%w: shutdown: %w", ErrServe, err)
	}
	return nil
}

// staticHandler serves the files under dir. Directories are reported as
// missing, so no listing is ever served.
func staticHandler(dir string) http.Handler {
	return http.FileServer(fileOnlyFS{http.Dir(dir)})
}

type fileOnlyFS struct {
	fs http.FileSystem
}

func (f fileOnlyFS) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
