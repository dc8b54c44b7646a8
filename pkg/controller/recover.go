package controller

import (
	"encoding/json"
	"fmt"
	"myblog/pkg/logger"
	"net/http"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
)

// WithRecover returns a middleware that turns a panic in next into a 500
// response using the API envelope, so clients never see a dropped connection.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint: errorlint
				panic(rec)
			}

			logger.Error(r.Context(), "Recovered from panic",
				zap.String("panic", fmt.Sprint(rec)),
				zap.ByteString("stack", debug.Stack()),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code":      http.StatusInternalServerError,
				"message":   "internal error",
				"data":      nil,
				"timestamp": time.Now().UnixMilli(),
			})
		}()

		next.ServeHTTP(w, r)
	})
}
