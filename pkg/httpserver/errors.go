package httpserver

import "errors"

var (
	// ErrStart indicates that the listener could not be bound or the server failed while serving.
	ErrStart = errors.New("httpserver: failed to start")
	// ErrShutdown indicates that graceful shutdown did not complete.
	ErrShutdown = errors.New("httpserver: failed to shut down gracefully")
	// ErrAlreadyRunning is returned by Run when the server is already serving.
	ErrAlreadyRunning = errors.New("httpserver: already running")
)
