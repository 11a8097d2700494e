package staff

import (
	"github.com/pizza-palace/internal/auth"
	handlershared "github.com/pizza-palace/internal/http/handlers/shared"
	"github.com/pizza-palace/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 员工侧接口处理器入口
// 员工身份按邮箱后缀在每次请求时重新判定，路由层与业务层各查一次，判定失败即拒绝。
type Handler struct {
	*provider.Container
}

// New 创建员工侧处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func getIdentity(c *gin.Context) (auth.Identity, bool) {
	return handlershared.GetIdentity(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
