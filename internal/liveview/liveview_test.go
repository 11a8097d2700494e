package liveview

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pizza-palace/internal/constants"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/notify"
	"github.com/pizza-palace/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupLiveViewTest(t *testing.T) (*gorm.DB, repository.OrderRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:liveview_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.OrderItemTopping{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db, repository.NewOrderRepository(db)
}

func createTestOrder(t *testing.T, repo repository.OrderRepository, userID, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:      userID,
		Status:      status,
		TotalAmount: models.NewMoneyFromFloat(10.00),
	}
	if err := repo.CreateShell(order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestReloadAndProjections(t *testing.T) {
	_, repo := setupLiveViewTest(t)
	view := New(repo, notify.NewLocal())

	createTestOrder(t, repo, "user-alice", constants.OrderStatusPending)
	createTestOrder(t, repo, "user-alice", constants.OrderStatusReady)
	createTestOrder(t, repo, "user-bob", constants.OrderStatusPending)

	if err := view.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}

	aliceOrders := view.OwnerOrders("user-alice")
	if len(aliceOrders) != 2 {
		t.Fatalf("expected 2 orders for alice, got %d", len(aliceOrders))
	}
	for _, order := range aliceOrders {
		if order.UserID != "user-alice" {
			t.Fatalf("foreign order leaked into owner projection: %+v", order)
		}
	}

	board := view.StatusBoard()
	if len(board) != len(constants.OrderStatuses) {
		t.Fatalf("expected %d status groups, got %d", len(constants.OrderStatuses), len(board))
	}
	if len(board[constants.OrderStatusPending]) != 2 {
		t.Fatalf("expected 2 pending orders, got %d", len(board[constants.OrderStatusPending]))
	}
	if len(board[constants.OrderStatusReady]) != 1 {
		t.Fatalf("expected 1 ready order, got %d", len(board[constants.OrderStatusReady]))
	}
	if len(board[constants.OrderStatusCompleted]) != 0 {
		t.Fatalf("expected empty completed group, got %d", len(board[constants.OrderStatusCompleted]))
	}
}

func TestReloadIsIdempotent(t *testing.T) {
	_, repo := setupLiveViewTest(t)
	view := New(repo, notify.NewLocal())

	createTestOrder(t, repo, "user-alice", constants.OrderStatusPending)
	for i := 0; i < 3; i++ {
		if err := view.Reload(); err != nil {
			t.Fatalf("reload %d: %v", i, err)
		}
	}
	if got := len(view.OwnerOrders("user-alice")); got != 1 {
		t.Fatalf("expected 1 order after repeated reloads, got %d", got)
	}
}

func TestStartRefreshesOnSignal(t *testing.T) {
	_, repo := setupLiveViewTest(t)
	notifier := notify.NewLocal()
	view := New(repo, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := view.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer view.Stop()

	if got := len(view.OwnerOrders("user-alice")); got != 0 {
		t.Fatalf("expected empty initial snapshot, got %d", got)
	}

	createTestOrder(t, repo, "user-alice", constants.OrderStatusPending)
	if err := notifier.Publish(ctx, constants.ChannelOrdersChanged); err != nil {
		t.Fatalf("publish: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(view.OwnerOrders("user-alice")) == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("snapshot did not refresh after change signal")
}

// slowListOrderRepository 人为拖慢全量读取，放大重载窗口
type slowListOrderRepository struct {
	repository.OrderRepository
	delay time.Duration
}

func (r *slowListOrderRepository) List(filter repository.OrderListFilter) ([]models.Order, error) {
	time.Sleep(r.delay)
	return r.OrderRepository.List(filter)
}

func TestUpdatesSignalFollowsReload(t *testing.T) {
	_, repo := setupLiveViewTest(t)
	notifier := notify.NewLocal()
	view := New(&slowListOrderRepository{OrderRepository: repo, delay: 100 * time.Millisecond}, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := view.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer view.Stop()

	signals, unsubscribe := view.Updates()
	defer unsubscribe()

	createTestOrder(t, repo, "user-alice", constants.OrderStatusPending)
	if err := notifier.Publish(ctx, constants.ChannelOrdersChanged); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case <-signals:
		if got := len(view.OwnerOrders("user-alice")); got != 1 {
			t.Fatalf("update signal fired with stale snapshot: got %d orders, want 1", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no update signal after change publish")
	}
}
