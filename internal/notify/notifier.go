// Package notify 提供表级变更通知通道。
// 信号只表示“有变更发生”，不携带可信载荷，订阅方必须整体重载而不是增量修补。
package notify

import (
	"context"
	"sync"

	"github.com/pizza-palace/internal/cache"
	"github.com/pizza-palace/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Notifier 变更通知接口
type Notifier interface {
	// Publish 发布一次变更信号
	Publish(ctx context.Context, channel string) error
	// Subscribe 订阅变更信号，返回信号通道与取消函数
	Subscribe(ctx context.Context, channel string) (<-chan struct{}, func())
}

// New 创建通知器：Redis 可用时走 pub/sub，否则退化为进程内广播
func New() Notifier {
	if cache.Enabled() {
		return &redisNotifier{client: cache.Client()}
	}
	return NewLocal()
}

// redisNotifier 基于 Redis pub/sub 的跨进程通知实现
type redisNotifier struct {
	client *redis.Client
}

// Publish 发布一次变更信号
func (n *redisNotifier) Publish(ctx context.Context, channel string) error {
	if n == nil || n.client == nil {
		return nil
	}
	return n.client.Publish(ctx, cache.BuildKey(channel), "1").Err()
}

// Subscribe 订阅变更信号
// 信号合并：订阅方处理期间的多次变更折叠为一次，重载是幂等全量操作。
func (n *redisNotifier) Subscribe(ctx context.Context, channel string) (<-chan struct{}, func()) {
	signals := make(chan struct{}, 1)
	if n == nil || n.client == nil {
		return signals, func() {}
	}
	pubsub := n.client.Subscribe(ctx, cache.BuildKey(channel))
	go func() {
		for range pubsub.Channel() {
			select {
			case signals <- struct{}{}:
			default:
			}
		}
		close(signals)
	}()
	cancel := func() {
		if err := pubsub.Close(); err != nil {
			logger.Warnw("notify_unsubscribe_failed", "channel", channel, "error", err)
		}
	}
	return signals, cancel
}

// LocalNotifier 进程内广播实现（Redis 未启用时使用，测试亦复用）
type LocalNotifier struct {
	mu          sync.Mutex
	subscribers map[string][]chan struct{}
}

// NewLocal 创建进程内通知器
func NewLocal() *LocalNotifier {
	return &LocalNotifier{subscribers: make(map[string][]chan struct{})}
}

// Publish 发布一次变更信号
func (n *LocalNotifier) Publish(_ context.Context, channel string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, subscriber := range n.subscribers[channel] {
		select {
		case subscriber <- struct{}{}:
		default:
		}
	}
	return nil
}

// Subscribe 订阅变更信号
func (n *LocalNotifier) Subscribe(_ context.Context, channel string) (<-chan struct{}, func()) {
	signals := make(chan struct{}, 1)
	n.mu.Lock()
	n.subscribers[channel] = append(n.subscribers[channel], signals)
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		subscribers := n.subscribers[channel]
		for i, subscriber := range subscribers {
			if subscriber == signals {
				n.subscribers[channel] = append(subscribers[:i], subscribers[i+1:]...)
				break
			}
		}
	}
	return signals, cancel
}
