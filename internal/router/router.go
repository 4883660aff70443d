package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/agendafacil/service-agenda-go/internal/auth"
	"github.com/agendafacil/service-agenda-go/internal/empresa"
	empresarepo "github.com/agendafacil/service-agenda-go/internal/empresa/repo"
	"github.com/agendafacil/service-agenda-go/internal/user"
	userrepo "github.com/agendafacil/service-agenda-go/internal/user/repo"
	"github.com/agendafacil/service-agenda-go/pkg/utilities"
)

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if lrw.status == 0 {
		lrw.status = http.StatusOK
	}
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// LoggingMiddleware returns a middleware that logs requests at debug level using the provided sugared logger.
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := &loggingResponseWriter{ResponseWriter: w}
			next.ServeHTTP(lrw, r)
			dur := time.Since(start)
			// ensure status is set
			status := lrw.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debugw("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(dur.Microseconds())/1000.0,
				"size", lrw.size,
				"request_id", r.Header.Get("X-Request-Id"),
			)
		})
	}
}

// RequestIDMiddleware tags each request with a correlation id, echoed back in
// the response headers and picked up by the request log.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = utilities.NewRequestID()
				r.Header.Set("X-Request-Id", id)
			}
			w.Header().Set("X-Request-Id", id)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware returns a middleware that sets common HTTP security headers.
// It is intentionally simple and conservative so it works with most setups.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Clickjacking protection
			w.Header().Set("X-Frame-Options", "DENY")

			// Referrer policy
			w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")

			// allow none for camera, microphone, geolocation by default
			w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

			if w.Header().Get("Content-Security-Policy") == "" {
				w.Header().Set("Content-Security-Policy", "default-src 'self'; object-src 'none'; base-uri 'self';")
			}

			// HSTS - instruct browsers to use HTTPS for future requests. Only set if request is over TLS.
			if r.TLS != nil {
				// 30 days by default
				w.Header().Set("Strict-Transport-Security", "max-age=2592000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RegisterRoutes mounts HTTP handlers using the standard library's http.ServeMux.
// This keeps the project stdlib-only for routing while keeping wiring simple
// and testable. Protected routes are wrapped with the auth middleware.
func RegisterRoutes(logger *zap.SugaredLogger, db *sqlx.DB, tokens *auth.Service, verifier auth.PasswordVerifier) http.Handler {
	mux := http.NewServeMux()

	// service metadata
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "SaaS Agendamento API",
			"version": "1.0.0",
			"status":  "running",
			"endpoints": map[string]string{
				"health":   "/api/health",
				"login":    "/api/users/login",
				"empresas": "/api/empresas",
				"profile":  "/api/users/profile",
			},
		})
	})

	// health
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Warnw("health ping failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"status":  "ERROR",
				"message": "Erro de conexão com o banco",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "OK",
			"message":   "Servidor funcionando",
			"database":  "PostgreSQL conectado",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	userSvc := user.NewService(userrepo.NewUserRepo(db), empresarepo.NewEmpresaRepo(db), verifier)
	userHandler := user.NewHandler(userSvc, tokens, logger)

	empresaSvc := empresa.NewService(empresarepo.NewEmpresaRepo(db))
	empresaHandler := empresa.NewHandler(empresaSvc, logger)

	protect := auth.Middleware(tokens, logger)

	mux.HandleFunc("POST /api/users/login", userHandler.Login)
	mux.HandleFunc("GET /api/empresas", empresaHandler.List)
	mux.HandleFunc("GET /api/empresas/{id}", empresaHandler.Get)
	mux.Handle("GET /api/users/profile", protect(http.HandlerFunc(userHandler.GetProfile)))
	mux.Handle("PUT /api/users/profile", protect(http.HandlerFunc(userHandler.UpdateProfile)))
	mux.HandleFunc("GET /api/users/funcionarios/{empresaId}", userHandler.Funcionarios)

	// wrap with security headers middleware then logging, request id outermost
	handler := RequestIDMiddleware()(LoggingMiddleware(logger)(SecurityHeadersMiddleware()(mux)))
	return handler
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
