package repository

import (
	"errors"

	"github.com/pizza-palace/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	ListOrdered() ([]models.Category, error)
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// ListOrdered 按排序权重升序获取全部分类
func (r *GormCategoryRepository) ListOrdered() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	ListActive() ([]models.Product, error)
	GetActiveByID(id uint) (*models.Product, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// ListActive 获取全部上架商品
func (r *GormProductRepository) ListActive() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_active = ?", true).Order("category_id asc, id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetActiveByID 获取上架商品，未找到返回 nil
func (r *GormProductRepository) GetActiveByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ToppingRepository 配料数据访问接口
type ToppingRepository interface {
	ListActive() ([]models.Topping, error)
	ListActiveByIDs(ids []uint) ([]models.Topping, error)
}

// GormToppingRepository GORM 实现
type GormToppingRepository struct {
	db *gorm.DB
}

// NewToppingRepository 创建配料仓库
func NewToppingRepository(db *gorm.DB) *GormToppingRepository {
	return &GormToppingRepository{db: db}
}

// ListActive 获取全部可选配料
func (r *GormToppingRepository) ListActive() ([]models.Topping, error) {
	var toppings []models.Topping
	if err := r.db.Where("is_active = ?", true).Order("id asc").Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}

// ListActiveByIDs 按 ID 集合获取可选配料
func (r *GormToppingRepository) ListActiveByIDs(ids []uint) ([]models.Topping, error) {
	toppings := []models.Topping{}
	if len(ids) == 0 {
		return toppings, nil
	}
	if err := r.db.Where("id IN ? AND is_active = ?", ids, true).Order("id asc").Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}
