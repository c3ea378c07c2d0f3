package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/tillpoint/posaccess/pkg/logger"
)

// Server is an http.Server with eager binding and graceful shutdown.
type Server struct {
	opts options

	mu       sync.Mutex
	srv      *http.Server
	addr     net.Addr
	ready    chan struct{}
	shutdown sync.Once
}

// New returns a Server listening on :8080 unless WithAddr says otherwise.
func New(opts ...Option) *Server {
	o := options{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Server{opts: o, ready: make(chan struct{})}
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the bound address, or nil before Ready is closed.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run binds the listener and serves handler until ctx is done or the
// process receives SIGINT or SIGTERM. A nil handler answers 404.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.opts.readHeaderTimeout,
		ReadTimeout:       s.opts.readTimeout,
		WriteTimeout:      s.opts.writeTimeout,
		IdleTimeout:       s.opts.idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.opts.logger.Handler(), slog.LevelWarn),
	}
	s.addr = ln.Addr()
	srv := s.srv
	s.mu.Unlock()
	close(s.ready)

	log := s.opts.logger
	log.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.stopAndWait(serveErr)
	case received := <-sig:
		log.Info("http server received signal", slog.String("signal", received.String()))
		runErr = s.stopAndWait(serveErr)
	case runErr = <-serveErr:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		log.Error("http server stopped with error", logger.Error(runErr))
		return errors.Join(ErrStart, runErr)
	}
	log.Info("http server stopped")
	return nil
}

func (s *Server) stopAndWait(serveErr <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		return err
	}
	return <-serveErr
}

// Shutdown drains in-flight requests. Calls after the first are no-ops,
// as is calling it before Run.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
	})
	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
