// Package fakeapi serves a scriptable stand-in for the storefront API in tests.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"storefront/config"

	"github.com/labstack/echo/v4"
)

// Call is one request received by the fake API.
type Call struct {
	Method        string
	Path          string
	RawQuery      string
	Body          []byte
	Authorization string
	RequestID     string
}

// DecodeBody unmarshals the recorded request body into v.
func (c Call) DecodeBody(t testing.TB, v any) {
	t.Helper()

	if err := json.Unmarshal(c.Body, v); err != nil {
		t.Fatalf("decode %s %s body: %v", c.Method, c.Path, err)
	}
}

// Server is an echo server behind httptest that records every call.
type Server struct {
	*httptest.Server

	echo *echo.Echo

	mu       sync.Mutex
	calls    []Call
	handlers map[string]echo.HandlerFunc
}

// New starts a fake API that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		echo:     echo.New(),
		handlers: make(map[string]echo.HandlerFunc),
	}
	s.echo.HideBanner = true
	s.echo.Use(s.record)
	s.Server = httptest.NewServer(s.echo)
	t.Cleanup(s.Close)

	return s
}

// Config returns a client config pointing at the fake API.
func (s *Server) Config() *config.Config {
	cfg := &config.Config{}
	cfg.API.BaseURL = s.URL
	cfg.API.Timeout = 5 * time.Second
	cfg.Storefront.PublicURL = "https://shop.example.com"
	cfg.Storefront.QRSize = 128

	return cfg
}

// Handle routes method and path (echo syntax, e.g. /cart/items/:id) to h,
// replacing any previous handler for the same route.
func (s *Server) Handle(method, path string, h echo.HandlerFunc) {
	key := method + " " + path

	s.mu.Lock()
	_, registered := s.handlers[key]
	s.handlers[key] = h
	s.mu.Unlock()

	if !registered {
		s.echo.Add(method, path, func(c echo.Context) error {
			s.mu.Lock()
			current := s.handlers[key]
			s.mu.Unlock()

			return current(c)
		})
	}
}

// Reply answers method and path with a fixed status and JSON body.
// A nil body produces an empty response.
func (s *Server) Reply(method, path string, status int, body any) {
	s.Handle(method, path, func(c echo.Context) error {
		if body == nil {
			return c.NoContent(status)
		}

		return c.JSON(status, body)
	})
}

// Fail answers method and path with an API error envelope.
func (s *Server) Fail(method, path string, status int, message string) {
	s.Reply(method, path, status, map[string]string{"error": message})
}

// Calls returns every recorded call in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Call(nil), s.calls...)
}

// CallsTo returns the recorded calls matching method and the concrete request path.
func (s *Server) CallsTo(method, path string) []Call {
	var matched []Call
	for _, call := range s.Calls() {
		if call.Method == method && call.Path == path {
			matched = append(matched, call)
		}
	}

	return matched
}

// Reset forgets recorded calls.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = nil
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		var body []byte
		if req.Body != nil {
			body, _ = io.ReadAll(req.Body)
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method:        req.Method,
			Path:          req.URL.Path,
			RawQuery:      req.URL.RawQuery,
			Body:          body,
			Authorization: req.Header.Get("Authorization"),
			RequestID:     req.Header.Get("X-Request-Id"),
		})
		s.mu.Unlock()

		return next(c)
	}
}

// NotFound is a handler answering 404 with the API error envelope.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
}
