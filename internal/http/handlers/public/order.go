package public

import (
	"strconv"

	"github.com/pizza-palace/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SubmitOrder 提交当前购物车为新订单
// 空购物车不是错误：不产生订单，响应 submitted=false。
func (h *Handler) SubmitOrder(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Submit(c.Request.Context(), identity)
	if err != nil {
		respondOrderSubmitError(c, err)
		return
	}
	if order == nil {
		response.Success(c, gin.H{"submitted": false})
		return
	}
	response.Success(c, gin.H{"submitted": true, "order": order})
}

// ListOrders 获取当前用户订单列表，最新在前
func (h *Handler) ListOrders(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListForUser(identity)
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}

// GetOrder 获取当前用户订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetForUser(identity, orderID)
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}
	response.Success(c, order)
}

func parseOrderID(c *gin.Context) (uint, bool) {
	rawID := c.Param("id")
	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return 0, false
	}
	return uint(orderID), true
}
