package service

import (
	"context"

	"github.com/pizza-palace/internal/auth"
	"github.com/pizza-palace/internal/constants"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/notify"
	"github.com/pizza-palace/internal/queue"
	"github.com/pizza-palace/internal/repository"
)

// OrderService 订单业务服务
type OrderService struct {
	orderRepo        repository.OrderRepository
	cartService      *CartService
	notifier         notify.Notifier
	queueClient      *queue.Client
	staffEmailDomain string
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartService *CartService,
	notifier notify.Notifier,
	queueClient *queue.Client,
	staffEmailDomain string,
) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		cartService:      cartService,
		notifier:         notifier,
		queueClient:      queueClient,
		staffEmailDomain: staffEmailDomain,
	}
}

// Submit 提交当前购物车为新订单
// 空购物车不产生订单，返回 (nil, nil)。
// 三步写入按顺序执行且不在同一事务内：主记录成功而子记录失败时，
// 订单保留在库中并记录日志，购物车不清空，调用方收到 ErrSubmissionFailed。
func (s *OrderService) Submit(ctx context.Context, identity auth.Identity) (*models.Order, error) {
	if !identity.Valid() {
		return nil, ErrAuthenticationRequired
	}

	cartView, err := s.cartService.Get(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if len(cartView.Items) == 0 {
		return nil, nil
	}

	order := models.Order{
		UserID:      identity.UserID,
		UserEmail:   identity.Email,
		Status:      constants.OrderStatusPending,
		TotalAmount: cartView.Total,
	}
	if err := s.orderRepo.CreateShell(&order); err != nil {
		logger.Errorw("order_submit_shell_failed", "user_id", identity.UserID, "error", err)
		return nil, ErrSubmissionFailed
	}

	items := make([]models.OrderItem, 0, len(cartView.Items))
	for _, line := range cartView.Items {
		items = append(items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			Notes:     line.Notes,
		})
	}
	if err := s.orderRepo.CreateItems(items); err != nil {
		logger.Errorw("order_submit_items_failed", "order_id", order.ID, "user_id", identity.UserID, "error", err)
		return nil, ErrSubmissionFailed
	}

	associations := make([]models.OrderItemTopping, 0)
	for i, line := range cartView.Items {
		for _, topping := range line.Toppings {
			associations = append(associations, models.OrderItemTopping{
				OrderItemID: items[i].ID,
				ToppingID:   topping.ID,
			})
		}
	}
	if err := s.orderRepo.CreateItemToppings(associations); err != nil {
		logger.Errorw("order_submit_toppings_failed", "order_id", order.ID, "user_id", identity.UserID, "error", err)
		return nil, ErrSubmissionFailed
	}

	if err := s.cartService.Clear(ctx, identity.UserID); err != nil {
		logger.Warnw("order_submit_cart_clear_failed", "order_id", order.ID, "user_id", identity.UserID, "error", err)
	}
	s.publishOrdersChanged(ctx)
	if err := s.queueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: order.ID,
		Status:  order.Status,
	}); err != nil {
		logger.Warnw("order_status_notify_enqueue_failed", "order_id", order.ID, "error", err)
	}

	logger.Infow("order_submitted", "order_id", order.ID, "user_id", identity.UserID, "total", order.TotalAmount.String())

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil || created == nil {
		return &order, nil
	}
	return created, nil
}

// GetForUser 获取当前用户订单详情
// 他人订单与不存在的订单同样返回 ErrOrderNotFound，不暴露存在性。
func (s *OrderService) GetForUser(identity auth.Identity, orderID uint) (*models.Order, error) {
	if !identity.Valid() {
		return nil, ErrAuthenticationRequired
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != identity.UserID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForUser 获取当前用户全部订单，最新在前
func (s *OrderService) ListForUser(identity auth.Identity) ([]models.Order, error) {
	if !identity.Valid() {
		return nil, ErrAuthenticationRequired
	}
	return s.orderRepo.List(repository.OrderListFilter{UserID: identity.UserID})
}

// ListAll 获取全部订单（员工视角），最新在前
func (s *OrderService) ListAll(identity auth.Identity) ([]models.Order, error) {
	if !identity.Valid() {
		return nil, ErrAuthenticationRequired
	}
	if !auth.IsStaff(identity, s.staffEmailDomain) {
		return nil, ErrAuthorizationDenied
	}
	return s.orderRepo.List(repository.OrderListFilter{})
}

func (s *OrderService) publishOrdersChanged(ctx context.Context) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, constants.ChannelOrdersChanged); err != nil {
		logger.Warnw("orders_changed_publish_failed", "error", err)
	}
}
