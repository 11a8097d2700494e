package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pizza-palace/internal/constants"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/provider"
	"github.com/pizza-palace/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusNotify, c.handleOrderStatusNotify)
}

// handleOrderStatusNotify 处理订单状态通知任务
// 通知出口目前是结构化日志加按用户频道广播，接收方（邮件、推送）由下游对接。
func (c *Consumer) handleOrderStatusNotify(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_notify_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_notify_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_notify_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	receiverEmail := strings.TrimSpace(order.UserEmail)
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_notify_skip_empty_receiver", "order_id", order.ID)
		return nil
	}
	logger.Infow("order_status_notification_sent",
		"order_id", order.ID,
		"status", status,
		"receiver", receiverEmail,
		"total", order.TotalAmount.String(),
		"items", len(order.Items),
	)
	if c.Notifier != nil && strings.TrimSpace(order.UserID) != "" {
		channel := constants.ChannelUserNotifyPrefix + ":" + order.UserID
		if err := c.Notifier.Publish(ctx, channel); err != nil {
			logger.Warnw("worker_order_status_notify_publish_failed", "order_id", order.ID, "channel", channel, "error", err)
		}
	}
	return nil
}
