package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/pizza-palace/internal/cache"
	"github.com/pizza-palace/internal/constants"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/repository"
)

// CartService 购物车业务服务
// 聚合以整体文档形式按用户读写：每次变更都读出完整购物车、
// 在内存中应用操作、再整体写回，绝不做局部更新。
// Redis 未启用时退化为进程内存储，语义不变。
type CartService struct {
	productRepo repository.ProductRepository
	toppingRepo repository.ToppingRepository

	mu    sync.Mutex
	local map[string]*models.Cart
}

// NewCartService 创建购物车服务
func NewCartService(productRepo repository.ProductRepository, toppingRepo repository.ToppingRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
		toppingRepo: toppingRepo,
		local:       make(map[string]*models.Cart),
	}
}

// CartView 购物车对外视图，总额随内容一同返回
type CartView struct {
	Items []models.CartLineItem `json:"items"`
	Total models.Money          `json:"total"`
}

func cartKey(userID string) string {
	return fmt.Sprintf("%s:%s", constants.CacheKeyCartPrefix, userID)
}

func (s *CartService) load(ctx context.Context, userID string) (*models.Cart, error) {
	if !cache.Enabled() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if cart, ok := s.local[userID]; ok {
			copied := *cart
			copied.Items = append([]models.CartLineItem{}, cart.Items...)
			return &copied, nil
		}
		return models.NewCart(), nil
	}

	cart := models.NewCart()
	hit, err := cache.GetJSON(ctx, cartKey(userID), cart)
	if err != nil {
		logger.Errorw("cart_load_failed", "user_id", userID, "error", err)
		return nil, ErrLoadFailed
	}
	if !hit {
		return models.NewCart(), nil
	}
	if cart.Items == nil {
		cart.Items = []models.CartLineItem{}
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, userID string, cart *models.Cart) error {
	if !cache.Enabled() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.local[userID] = cart
		return nil
	}
	if err := cache.SetJSON(ctx, cartKey(userID), cart, 0); err != nil {
		logger.Errorw("cart_save_failed", "user_id", userID, "error", err)
		return ErrLoadFailed
	}
	return nil
}

func (s *CartService) view(cart *models.Cart) *CartView {
	return &CartView{
		Items: cart.Items,
		Total: cart.Total(),
	}
}

// Get 获取当前用户购物车
func (s *CartService) Get(ctx context.Context, userID string) (*CartView, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// AddItemInput 加购输入
type AddItemInput struct {
	ProductID  uint
	Quantity   int
	ToppingIDs []uint
	Notes      string
}

// AddItem 加入商品
// 商品与配料都按当前上架状态校验并取实时快照入车。
func (s *CartService) AddItem(ctx context.Context, userID string, input AddItemInput) (*CartView, error) {
	product, err := s.productRepo.GetActiveByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotAvailable
	}

	toppings, err := s.resolveToppings(input.ToppingIDs)
	if err != nil {
		return nil, err
	}

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.AddItem(*product, input.Quantity, toppings, input.Notes)
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// UpdateQuantity 替换行项数量
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID uint, quantity int) (*CartView, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.UpdateQuantity(productID, quantity)
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// RemoveItem 移除行项
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID uint) (*CartView, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(productID)
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.save(ctx, userID, models.NewCart())
}

func (s *CartService) resolveToppings(ids []uint) ([]models.Topping, error) {
	if len(ids) == 0 {
		return []models.Topping{}, nil
	}
	toppings, err := s.toppingRepo.ListActiveByIDs(ids)
	if err != nil {
		return nil, err
	}
	found := make(map[uint]bool, len(toppings))
	for _, topping := range toppings {
		found[topping.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, ErrToppingNotAvailable
		}
	}
	return toppings, nil
}
