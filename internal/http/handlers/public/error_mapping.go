package public

import (
	"errors"

	"github.com/pizza-palace/internal/http/response"
	"github.com/pizza-palace/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrToppingNotAvailable, code: response.CodeBadRequest, msg: "topping not available"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "invalid quantity"},
	{target: service.ErrLoadFailed, code: response.CodeInternal, msg: "cart unavailable"},
}

var orderSubmitErrorRules = []mappedHandlerError{
	{target: service.ErrAuthenticationRequired, code: response.CodeUnauthorized, msg: "authentication required"},
	{target: service.ErrSubmissionFailed, code: response.CodeInternal, msg: "order submission failed"},
	{target: service.ErrLoadFailed, code: response.CodeInternal, msg: "cart unavailable"},
}

var orderQueryErrorRules = []mappedHandlerError{
	{target: service.ErrAuthenticationRequired, code: response.CodeUnauthorized, msg: "authentication required"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
}

func respondCartMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart update failed")
}

func respondOrderSubmitError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderSubmitErrorRules, response.CodeInternal, "order submission failed")
}

func respondOrderQueryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderQueryErrorRules, response.CodeInternal, "order fetch failed")
}
