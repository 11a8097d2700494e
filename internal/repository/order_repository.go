package repository

import (
	"errors"

	"github.com/pizza-palace/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
// 提交管道的三步写入按顺序独立执行，不在同一事务内；
// 部分失败遗留的孤儿订单行是既定取舍，由调用方记录而非回滚。
type OrderRepository interface {
	CreateShell(order *models.Order) error
	CreateItems(items []models.OrderItem) error
	CreateItemToppings(associations []models.OrderItemTopping) error
	GetByID(id uint) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) withChildren(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Toppings").
		Preload("Items.Toppings.Topping")
}

// CreateShell 写入订单主记录
func (r *GormOrderRepository) CreateShell(order *models.Order) error {
	return r.db.Create(order).Error
}

// CreateItems 写入订单项
func (r *GormOrderRepository) CreateItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// CreateItemToppings 写入订单项配料关联
// 空集合直接返回，不发出空写入。
func (r *GormOrderRepository) CreateItemToppings(associations []models.OrderItemTopping) error {
	if len(associations) == 0 {
		return nil
	}
	return r.db.Create(&associations).Error
}

// GetByID 获取订单详情，未找到返回 nil
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withChildren(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 获取订单列表（最新在前），子数据在读取时联查
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = applyLimit(query, filter.Limit)
	if err := r.withChildren(query).Order("created_at desc, id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}
