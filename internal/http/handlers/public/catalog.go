package public

import (
	"github.com/pizza-palace/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCatalog 获取菜单快照：分类、上架商品与可选配料
func (h *Handler) GetCatalog(c *gin.Context) {
	snapshot, err := h.CatalogService.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "catalog fetch failed", err)
		return
	}
	response.Success(c, snapshot)
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	snapshot, err := h.CatalogService.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "catalog fetch failed", err)
		return
	}
	response.Success(c, gin.H{"categories": snapshot.Categories})
}

// GetProducts 获取上架商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	snapshot, err := h.CatalogService.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "catalog fetch failed", err)
		return
	}
	response.Success(c, gin.H{"products": snapshot.Products})
}

// GetToppings 获取可选配料列表
func (h *Handler) GetToppings(c *gin.Context) {
	snapshot, err := h.CatalogService.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "catalog fetch failed", err)
		return
	}
	response.Success(c, gin.H{"toppings": snapshot.Toppings})
}
