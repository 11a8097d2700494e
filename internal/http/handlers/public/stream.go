package public

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

const streamHeartbeatInterval = 30 * time.Second

// StreamOrders 以 SSE 推送当前用户订单快照
// 连接建立后先推一帧全量，之后每次快照更新完成推一帧；客户端只整帧替换。
func (h *Handler) StreamOrders(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}

	signals, unsubscribe := h.LiveView.Updates()
	defer unsubscribe()

	heartbeat := time.NewTicker(streamHeartbeatInterval)
	defer heartbeat.Stop()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.SSEvent("orders", gin.H{"orders": h.LiveView.OwnerOrders(identity.UserID)})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-signals:
			c.SSEvent("orders", gin.H{"orders": h.LiveView.OwnerOrders(identity.UserID)})
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}
