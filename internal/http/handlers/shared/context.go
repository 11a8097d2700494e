package shared

import (
	"github.com/pizza-palace/internal/auth"
	"github.com/pizza-palace/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ContextKeyIdentity 请求身份在 gin 上下文中的键
const ContextKeyIdentity = "identity"

// GetIdentity 从上下文提取请求身份，缺失或非法时直接写 401 响应
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(ContextKeyIdentity)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	if !ok || !identity.Valid() {
		response.Unauthorized(c, "authentication required")
		return auth.Identity{}, false
	}
	return identity, true
}
