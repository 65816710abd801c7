// Package server wraps http.Server with the timeouts every listener in this
// service should carry.
package server

import (
	"net/http"
	"time"
)

// New constructs an *http.Server:
//
//	ReadTimeout   10s, abort slow-loris headers
//	WriteTimeout  15s, cap total response time
//	IdleTimeout   60s, drop idle keep-alives
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
