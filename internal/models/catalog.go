package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 菜单分类表
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`              // 主键
	Name      string         `gorm:"not null" json:"name"`              // 分类名称
	SortOrder int            `gorm:"default:0;index" json:"sort_order"` // 排序权重
	CreatedAt time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                             // 主键
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`                // 分类ID
	Name        string         `gorm:"not null" json:"name"`                             // 商品名称
	Description string         `gorm:"type:text" json:"description,omitempty"`           // 商品描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url,omitempty"`     // 图片地址
	IsActive    bool           `gorm:"default:true;index" json:"active"`                 // 是否上架
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                       // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                   // 软删除时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 关联分类
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// Topping 配料表
type Topping struct {
	ID        uint           `gorm:"primarykey" json:"id"`                             // 主键
	Name      string         `gorm:"not null" json:"name"`                             // 配料名称
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	IsActive  bool           `gorm:"default:true;index" json:"active"`                 // 是否可选
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                          // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                   // 软删除时间
}

// TableName 指定表名
func (Topping) TableName() string {
	return "toppings"
}
