package httpserver

import (
	"io"

	"github.com/gin-gonic/gin"

	"warung-pos/internal/feed"
)

// catalogFeedHandler streams catalog snapshots as server-sent events. The
// subscription ends when the client disconnects or the watcher stops.
func catalogFeedHandler(watcher *feed.Watcher[feed.CatalogSnapshot]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-cache")
		updates := watcher.Subscribe(c.Request.Context())
		c.Stream(func(w io.Writer) bool {
			snapshot, ok := <-updates
			if !ok {
				return false
			}
			c.SSEvent("catalog", snapshot)
			return true
		})
	}
}
