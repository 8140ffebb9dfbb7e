package httpserver

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
)

var errInternal = errors.New("internal server error")

// recoverer turns a handler panic into a 500 with the usual error envelope
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			zerolog.Ctx(r.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			if r.Header.Get("Connection") != "Upgrade" {
				writeError(w, http.StatusInternalServerError, errInternal)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
