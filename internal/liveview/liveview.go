// Package liveview 维护订单的进程内实时快照。
// 收到变更信号后整体重载，而非增量修补：重载是幂等的，
// 信号丢失或合并只影响时效，不影响最终一致。
package liveview

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pizza-palace/internal/constants"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/notify"
	"github.com/pizza-palace/internal/repository"
)

// View 订单实时快照
type View struct {
	orderRepo repository.OrderRepository
	notifier  notify.Notifier

	// generation 单调递增的加载代号，晚代结果覆盖早代，防止并发重载乱序回写
	generation atomic.Uint64

	mu          sync.RWMutex
	applied     uint64
	orders      []models.Order
	subscribers []chan struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

// New 创建实时快照
func New(orderRepo repository.OrderRepository, notifier notify.Notifier) *View {
	return &View{
		orderRepo: orderRepo,
		notifier:  notifier,
		orders:    []models.Order{},
	}
}

// Start 加载初始快照并开始监听变更信号
func (v *View) Start(ctx context.Context) error {
	if err := v.Reload(); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.done = make(chan struct{})

	signals, unsubscribe := v.notifier.Subscribe(runCtx, constants.ChannelOrdersChanged)
	go func() {
		defer close(v.done)
		defer unsubscribe()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-signals:
				if err := v.Reload(); err != nil {
					logger.Warnw("liveview_reload_failed", "error", err)
				}
			}
		}
	}()
	return nil
}

// Stop 停止监听
func (v *View) Stop() {
	if v.cancel != nil {
		v.cancel()
	}
	if v.done != nil {
		<-v.done
	}
}

// Reload 重新读取全部订单并替换快照
func (v *View) Reload() error {
	generation := v.generation.Add(1)
	orders, err := v.orderRepo.List(repository.OrderListFilter{})
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if generation < v.applied {
		return nil
	}
	v.applied = generation
	v.orders = orders
	for _, subscriber := range v.subscribers {
		select {
		case subscriber <- struct{}{}:
		default:
		}
	}
	return nil
}

// Updates 订阅快照更新信号：每次重载写入快照之后才触发，信号可合并。
// 推送方必须订阅这里而不是原始变更频道，否则可能在重载完成前读到旧快照。
func (v *View) Updates() (<-chan struct{}, func()) {
	signals := make(chan struct{}, 1)
	v.mu.Lock()
	v.subscribers = append(v.subscribers, signals)
	v.mu.Unlock()

	cancel := func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, subscriber := range v.subscribers {
			if subscriber == signals {
				v.subscribers = append(v.subscribers[:i], v.subscribers[i+1:]...)
				break
			}
		}
	}
	return signals, cancel
}

// Generation 当前快照代号
func (v *View) Generation() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.applied
}

// OwnerOrders 投影：指定用户的订单，保持快照内顺序（最新在前）
func (v *View) OwnerOrders(userID string) []models.Order {
	v.mu.RLock()
	defer v.mu.RUnlock()
	result := []models.Order{}
	for _, order := range v.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result
}

// StatusBoard 投影：按状态分组的履约看板，分组覆盖全部状态（含空组）
func (v *View) StatusBoard() map[string][]models.Order {
	v.mu.RLock()
	defer v.mu.RUnlock()
	board := make(map[string][]models.Order, len(constants.OrderStatuses))
	for _, status := range constants.OrderStatuses {
		board[status] = []models.Order{}
	}
	for _, order := range v.orders {
		board[order.Status] = append(board[order.Status], order)
	}
	return board
}
