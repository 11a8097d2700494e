package public

import (
	"github.com/pizza-palace/internal/auth"
	handlershared "github.com/pizza-palace/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getIdentity(c *gin.Context) (auth.Identity, bool) {
	return handlershared.GetIdentity(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
