// Package middleware provides HTTP middleware for request ids, access logs and metrics.
package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"labquest-backend/internal/metrics"
)

type ctxKey string

const (
	requestIDKey    ctxKey = "request_id"
	RequestIDHeader        = "X-Request-Id"
)

var recordHTTPRequest = metrics.RecordHTTPRequest

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Chain applies mws so that the first one is the outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func RequestIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(requestIDKey).(string); ok {
		return s
	}
	return ""
}

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, rid)))
	})
}

func Logging(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			logger.Printf(
				"rid=%s method=%s path=%s status=%d dur=%s",
				RequestIDFromContext(r.Context()),
				r.Method,
				r.URL.Path,
				rw.statusCode,
				time.Since(start),
			)
		})
	}
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		recordHTTPRequest(r.Method, normalizeEndpoint(r.URL.Path), strconv.Itoa(rw.statusCode), time.Since(start))
	})
}

// normalizeEndpoint collapses task ids so label cardinality stays bounded.
func normalizeEndpoint(path string) string {
	trimmed := strings.TrimSuffix(path, "/")

	switch {
	case strings.HasPrefix(trimmed, "/tasks/"):
		rest := strings.TrimPrefix(trimmed, "/tasks/")
		if strings.HasSuffix(rest, "/status") {
			return "/tasks/:id/status"
		}
		return "/tasks/:id"
	case trimmed == "":
		return "/"
	default:
		return trimmed
	}
}
