package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*options)

type options struct {
	addr              string
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
}

// WithAddr sets the listen address. Use "127.0.0.1:0" for an ephemeral port.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr: empty address")
	}
	return func(o *options) { o.addr = addr }
}

func positive(name string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + name + ": duration must be > 0")
	}
}

// WithReadHeaderTimeout bounds the time spent reading request headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	positive("WithReadHeaderTimeout", d)
	return func(o *options) { o.readHeaderTimeout = d }
}

// WithReadTimeout bounds the time spent reading the whole request.
func WithReadTimeout(d time.Duration) Option {
	positive("WithReadTimeout", d)
	return func(o *options) { o.readTimeout = d }
}

// WithWriteTimeout bounds the time spent writing the response.
func WithWriteTimeout(d time.Duration) Option {
	positive("WithWriteTimeout", d)
	return func(o *options) { o.writeTimeout = d }
}

// WithIdleTimeout bounds how long keep-alive connections stay idle.
func WithIdleTimeout(d time.Duration) Option {
	positive("WithIdleTimeout", d)
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	positive("WithShutdownTimeout", d)
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the logger for lifecycle events. Nil discards them.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
