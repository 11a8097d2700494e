package staff

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

const streamHeartbeatInterval = 30 * time.Second

// StreamOrders 以 SSE 推送履约看板快照
// 订阅快照更新信号而非原始变更频道，保证推送帧总包含触发它的变更。
func (h *Handler) StreamOrders(c *gin.Context) {
	if _, ok := getIdentity(c); !ok {
		return
	}

	signals, unsubscribe := h.LiveView.Updates()
	defer unsubscribe()

	heartbeat := time.NewTicker(streamHeartbeatInterval)
	defer heartbeat.Stop()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.SSEvent("board", gin.H{"board": h.LiveView.StatusBoard()})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-signals:
			c.SSEvent("board", gin.H{"board": h.LiveView.StatusBoard()})
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}
