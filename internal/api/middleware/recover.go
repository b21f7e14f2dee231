package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
)

// Recoverer is the last-resort handler for panics that escape a request
// handler. It logs the panic and answers with the generic 500 envelope;
// nothing about the failure reaches the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("panic recovered in request handler",
					slog.Any("panic", rec),
					slog.String("trace_id", shared.GetTraceID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				shared.RespondWithMessage(w, r, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
