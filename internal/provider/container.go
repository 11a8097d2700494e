package provider

import (
	"github.com/pizza-palace/internal/cache"
	"github.com/pizza-palace/internal/config"
	"github.com/pizza-palace/internal/liveview"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/notify"
	"github.com/pizza-palace/internal/queue"
	"github.com/pizza-palace/internal/repository"
	"github.com/pizza-palace/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Notifier    notify.Notifier

	// Repositories
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	ToppingRepo  repository.ToppingRepository
	OrderRepo    repository.OrderRepository

	// Services
	CatalogService *service.CatalogService
	CartService    *service.CartService
	OrderService   *service.OrderService
	LiveView       *liveview.View
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Notifier:    notify.New(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ToppingRepo = repository.NewToppingRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.ProductRepo, c.ToppingRepo, c.Config.Catalog.CacheTTLSeconds)
	c.CartService = service.NewCartService(c.ProductRepo, c.ToppingRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartService, c.Notifier, c.QueueClient, c.Config.Auth.StaffEmailDomain)
	c.LiveView = liveview.New(c.OrderRepo, c.Notifier)
}
