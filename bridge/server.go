// Copyright 2017 Francisco Souza. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge exposes the shellbridge command surface to a webview front
// end.
//
// Commands can be invoked in-process with Server.Invoke, or over HTTP by
// POSTing the JSON arguments to /invoke/{command}.
package bridge

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/shellbridge/shellbridge/internal/fileattr"
	"github.com/shellbridge/shellbridge/internal/opener"
	"github.com/shellbridge/shellbridge/window"
)

// Server is the command bridge.
//
// It holds no state of its own: files are checked and windows are looked up
// again on every command.
type Server struct {
	attrs    fileattr.Attributes
	opener   opener.Opener
	runtime  window.Runtime
	logger   *slog.Logger
	commands map[string]command
	mux      *mux.Router
	handler  http.Handler
	srv      *http.Server
	url      string

	allowedOrigins []string
}

// Options are used to configure the server on creation.
type Options struct {
	Host       string
	Port       uint16
	NoListener bool

	// AllowedOrigins lists the webview origins allowed to call the bridge
	// from a browser context. Use "*" to allow any origin. Requests carrying
	// any other Origin header are rejected, and CORS is disabled when empty.
	AllowedOrigins []string

	// Writer receives the access log of the HTTP bridge.
	Writer io.Writer

	// Logger receives the debug log of failed commands. Defaults to a
	// discarding logger.
	Logger *slog.Logger

	// Runtime is the hosting window runtime. When nil, the server uses an
	// in-memory runtime without any windows, where a forced close exits the
	// process.
	Runtime window.Runtime

	// OpenerProgram overrides the program used by open_folder.
	OpenerProgram string

	attributes fileattr.Attributes
	opener     opener.Opener
}

// NewServer creates a new instance of the server bound to the given window
// runtime, listening on a random local port.
//
// If the server fails to start, this function panics.
func NewServer(rt window.Runtime) *Server {
	s, err := NewServerWithOptions(Options{Runtime: rt})
	if err != nil {
		panic(err)
	}
	return s
}

// NewServerWithOptions creates a new server configured according to the
// provided options.
func NewServerWithOptions(options Options) (*Server, error) {
	s := &Server{
		attrs:   options.attributes,
		opener:  options.opener,
		runtime: options.Runtime,
		logger:  options.Logger,

		allowedOrigins: options.AllowedOrigins,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.attrs == nil {
		s.attrs = fileattr.New()
	}
	if s.opener == nil {
		s.opener = opener.New(opener.Options{Program: options.OpenerProgram, Logger: s.logger})
	}
	if s.runtime == nil {
		s.runtime = window.NewMemoryRuntime(nil)
	}
	s.commands = s.buildCommands()
	s.buildMuxer()

	var handler http.Handler = s.mux
	if len(options.AllowedOrigins) > 0 {
		handler = handlers.CORS(
			handlers.AllowedOrigins(options.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(handler)
	}
	if options.Writer != nil {
		handler = handlers.LoggingHandler(options.Writer, handler)
	}
	s.handler = handler

	if !options.NoListener {
		host := options.Host
		if host == "" {
			host = "127.0.0.1"
		}
		listener, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(int(options.Port))))
		if err != nil {
			return nil, fmt.Errorf("failed to listen: %w", err)
		}
		s.srv = &http.Server{Handler: s.handler}
		s.url = "http://" + listener.Addr().String()
		go s.srv.Serve(listener)
	}
	return s, nil
}

func (s *Server) buildMuxer() {
	s.mux = mux.NewRouter()
	s.mux.Use(s.checkOrigin)
	s.mux.Path("/_internal/healthcheck").Methods(http.MethodGet).HandlerFunc(s.healthcheck)
	s.mux.Path("/commands").Methods(http.MethodGet).HandlerFunc(jsonToHTTPHandler(s.listCommands))
	s.mux.Path("/invoke/{command}").Methods(http.MethodPost).HandlerFunc(jsonToHTTPHandler(s.invokeCommand))
}

// Stop stops the server, closing all connections.
func (s *Server) Stop() {
	if s.srv != nil {
		s.srv.Close()
	}
}

// URL returns the server URL, or an empty string when the server was
// created with NoListener.
func (s *Server) URL() string {
	return s.url
}

// HTTPHandler returns an HTTP handler that serves the bridge. It can be
// used to mount the bridge in an existing server.
func (s *Server) HTTPHandler() http.Handler {
	return s.handler
}

func (s *Server) healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
