package public

import (
	"strconv"

	"github.com/pizza-palace/internal/http/response"
	"github.com/pizza-palace/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID  uint   `json:"product_id" binding:"required"`
	Quantity   int    `json:"quantity"`
	ToppingIDs []uint `json:"topping_ids"`
	Notes      string `json:"notes"`
}

// UpdateCartItemRequest 改数量请求；数量统一由购物车聚合钳制到下限
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Get(c.Request.Context(), identity.UserID)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, cart)
}

// AddCartItem 加入商品
func (h *Handler) AddCartItem(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	cart, err := h.CartService.AddItem(c.Request.Context(), identity.UserID, service.AddItemInput{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		ToppingIDs: req.ToppingIDs,
		Notes:      req.Notes,
	})
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, cart)
}

// UpdateCartItem 替换行项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	cart, err := h.CartService.UpdateQuantity(c.Request.Context(), identity.UserID, productID, req.Quantity)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, cart)
}

// DeleteCartItem 移除行项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.RemoveItem(c.Request.Context(), identity.UserID, productID)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, cart)
}

func parseProductID(c *gin.Context) (uint, bool) {
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return 0, false
	}
	return uint(productID), true
}
