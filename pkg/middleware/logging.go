package middleware

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/alioth/insurance-sales-api/internal/domain"
	"github.com/alioth/insurance-sales-api/pkg/apiErrors"
	"github.com/alioth/insurance-sales-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

type contextKeyTrace string

const requestTraceKey contextKeyTrace = "requestTrace"

// requestTrace é preenchido ao longo da cadeia: o AuthMiddleware registra o
// vendedor autenticado e o router o padrão de rota casado
type requestTrace struct {
	route      string
	memberCode int64
	memberRank domain.MemberRank
}

func withRequestTrace(ctx context.Context) (context.Context, *requestTrace) {
	trace := &requestTrace{}
	return context.WithValue(ctx, requestTraceKey, trace), trace
}

func requestTraceFrom(ctx context.Context) *requestTrace {
	trace, _ := ctx.Value(requestTraceKey).(*requestTrace)
	return trace
}

// TraceRoute registra o padrão de rota que atendeu a requisição
func TraceRoute(ctx context.Context, pattern string) {
	if trace := requestTraceFrom(ctx); trace != nil {
		trace.route = pattern
	}
}

func traceMember(ctx context.Context, claims *domain.Claims) {
	if trace := requestTraceFrom(ctx); trace != nil && claims != nil {
		trace.memberCode = claims.MemberCode
		trace.memberRank = claims.MemberRank
	}
}

func (t *requestTrace) fields() log.Fields {
	fields := log.Fields{}
	if t.route != "" {
		fields["route"] = t.route
	}
	if t.memberCode != 0 {
		fields["member_code"] = t.memberCode
		fields["member_rank"] = t.memberRank
	}
	return fields
}

// LoggingMiddleware registra cada requisição HTTP com o vendedor autenticado
// e a rota casada
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			ctx, trace := withRequestTrace(ctx)
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"remote_addr":    r.RemoteAddr,
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"user_agent":     r.UserAgent(),
			}).Debug("Requisição iniciada")

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			fields := trace.fields()
			fields["correlation_id"] = correlationID
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = responseTime.Milliseconds()

			logger := log.L.WithFields(fields)
			switch {
			case lrw.statusCode >= 500:
				logger.Error("Requisição finalizada com erro")
			case lrw.statusCode >= 400:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada com sucesso")
			}

			if responseTime > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", responseTime)
			}
		})
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde SRV_001
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": err,
						"method":      r.Method,
						"path":        r.URL.Path,
					})
					logger.Error("Erro não tratado na aplicação")
					logger.WithField("stack_trace", string(stack[:stackSize])).Debug("Stack trace do erro")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
