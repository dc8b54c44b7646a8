package v1handler

import (
	"fmt"
	"myblog/pkg/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// MetadataPath serves link previews. It is public and also mounted outside /v1.
const MetadataPath = "/url-metadata/fetch"

func (h *Handler) metadataRoutes() {
	h.mux.HandleFunc("GET /v1"+MetadataPath, h.FetchMetadata)
	h.mux.HandleFunc("GET "+MetadataPath, h.FetchMetadata)
}

// FetchMetadata always answers 200. The payload reports whether the preview
// could be built; code is 500 only when the resolver itself broke.
func (h *Handler) FetchMetadata(w http.ResponseWriter, r *http.Request) {
	res := Response{Code: http.StatusOK, Message: "success"}

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context(), "metadata resolver panicked", zap.Any("panic", rec))
				res = Response{Code: http.StatusInternalServerError, Message: fmt.Sprintf("failed to fetch metadata: %v", rec)}
			}
		}()

		res.Data = h.deps.Resolver.Resolve(r.Context(), r.URL.Query().Get("url"))
	}()

	res.Timestamp = time.Now().UnixMilli()
	writeJSON(w, http.StatusOK, res)
}
