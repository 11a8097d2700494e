package staff

import (
	"errors"
	"strconv"

	"github.com/pizza-palace/internal/constants"
	"github.com/pizza-palace/internal/http/response"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 获取履约看板：全部订单按状态分组，空组保留
func (h *Handler) ListOrders(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListAll(identity)
	if err != nil {
		respondStaffOrderError(c, err)
		return
	}
	board := make(map[string][]models.Order, len(constants.OrderStatuses))
	for _, status := range constants.OrderStatuses {
		board[status] = []models.Order{}
	}
	for _, order := range orders {
		board[order.Status] = append(board[order.Status], order)
	}
	response.Success(c, gin.H{"board": board})
}

// AdvanceOrder 将订单推进到下一状态
func (h *Handler) AdvanceOrder(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	rawID := c.Param("id")
	orderID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}
	order, err := h.OrderService.AdvanceStatus(c.Request.Context(), identity, uint(orderID))
	if err != nil {
		respondStaffOrderError(c, err)
		return
	}
	response.Success(c, order)
}

func respondStaffOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		respondError(c, response.CodeUnauthorized, "authentication required", nil)
	case errors.Is(err, service.ErrAuthorizationDenied):
		respondError(c, response.CodeForbidden, "staff access required", nil)
	case errors.Is(err, service.ErrOrderNotFound):
		respondError(c, response.CodeNotFound, "order not found", nil)
	case errors.Is(err, service.ErrOrderStatusTerminal):
		respondError(c, response.CodeBadRequest, "order already completed", nil)
	case errors.Is(err, service.ErrOrderStatusInvalid):
		respondError(c, response.CodeBadRequest, "order status invalid", nil)
	default:
		respondError(c, response.CodeInternal, "order update failed", err)
	}
}
