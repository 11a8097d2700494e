package service

import (
	"context"

	"github.com/pizza-palace/internal/auth"
	"github.com/pizza-palace/internal/constants"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/queue"
)

// nextStatus 状态线性流转表：每个状态至多一个后继，completed 为终态
var nextStatus = map[string]string{
	constants.OrderStatusPending:   constants.OrderStatusPreparing,
	constants.OrderStatusPreparing: constants.OrderStatusReady,
	constants.OrderStatusReady:     constants.OrderStatusCompleted,
}

// NextStatus 查询给定状态的后继状态，终态或未知状态返回空串
func NextStatus(status string) string {
	return nextStatus[status]
}

// AdvanceStatus 将订单推进到下一状态
// 只有员工可以推进；推进不接受目标状态参数，始终走唯一后继。
func (s *OrderService) AdvanceStatus(ctx context.Context, identity auth.Identity, orderID uint) (*models.Order, error) {
	if !identity.Valid() {
		return nil, ErrAuthenticationRequired
	}
	if !auth.IsStaff(identity, s.staffEmailDomain) {
		return nil, ErrAuthorizationDenied
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	next := NextStatus(order.Status)
	if next == "" {
		if order.Status == constants.OrderStatusCompleted {
			return nil, ErrOrderStatusTerminal
		}
		return nil, ErrOrderStatusInvalid
	}

	if err := s.orderRepo.UpdateStatus(order.ID, next); err != nil {
		return nil, err
	}
	order.Status = next

	logger.Infow("order_status_advanced", "order_id", order.ID, "status", next, "operator", identity.Email)

	s.publishOrdersChanged(ctx)
	if err := s.queueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: order.ID,
		Status:  next,
	}); err != nil {
		logger.Warnw("order_status_notify_enqueue_failed", "order_id", order.ID, "error", err)
	}
	return order, nil
}
