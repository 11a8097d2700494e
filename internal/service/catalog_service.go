package service

import (
	"context"
	"time"

	"github.com/pizza-palace/internal/cache"
	"github.com/pizza-palace/internal/constants"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/repository"
)

// CatalogSnapshot 菜单快照：分类、上架商品与可选配料的一次性读取结果
type CatalogSnapshot struct {
	Categories []models.Category `json:"categories"`
	Products   []models.Product  `json:"products"`
	Toppings   []models.Topping  `json:"toppings"`
}

// CatalogService 菜单业务服务
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	toppingRepo  repository.ToppingRepository
	cacheTTL     time.Duration
}

// NewCatalogService 创建菜单服务
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	toppingRepo repository.ToppingRepository,
	cacheTTLSeconds int,
) *CatalogService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		toppingRepo:  toppingRepo,
		cacheTTL:     ttl,
	}
}

// Snapshot 获取菜单快照，优先走缓存
// 缓存读写失败只记录日志，不影响数据库兜底路径。
func (s *CatalogService) Snapshot(ctx context.Context) (*CatalogSnapshot, error) {
	var cached CatalogSnapshot
	hit, err := cache.GetJSON(ctx, constants.CacheKeyCatalog, &cached)
	if err != nil {
		logger.Warnw("catalog_cache_read_failed", "error", err)
	}
	if hit {
		return &cached, nil
	}

	snapshot, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, constants.CacheKeyCatalog, snapshot, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "error", err)
	}
	return snapshot, nil
}

// InvalidateCache 清除菜单快照缓存
func (s *CatalogService) InvalidateCache(ctx context.Context) {
	if err := cache.Del(ctx, constants.CacheKeyCatalog); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "error", err)
	}
}

func (s *CatalogService) loadSnapshot() (*CatalogSnapshot, error) {
	categories, err := s.categoryRepo.ListOrdered()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	toppings, err := s.toppingRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return &CatalogSnapshot{
		Categories: categories,
		Products:   products,
		Toppings:   toppings,
	}, nil
}
