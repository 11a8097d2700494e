package models

import (
	"time"
)

// Order 订单表
// 订单创建后只允许状态字段流转，金额在提交时冻结，订单与子记录不会被删除。
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                     // 主键
	UserID      string    `gorm:"type:varchar(64);index;not null" json:"user_id"`           // 外部认证服务的用户标识
	UserEmail   string    `gorm:"type:varchar(200);index" json:"user_email,omitempty"`      // 下单用户邮箱（员工看板展示）
	Status      string    `gorm:"type:varchar(20);index;not null" json:"status"`            // 订单状态
	TotalAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 提交时冻结的实付金额
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                               // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单项表
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                   // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`                         // 订单ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`                       // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                               // 数量
	UnitPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 下单时刻的商品单价
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`                       // 备注
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                // 创建时间

	Product  *Product           `gorm:"foreignKey:ProductID" json:"product,omitempty"`   // 关联商品（读取时联查名称）
	Toppings []OrderItemTopping `gorm:"foreignKey:OrderItemID" json:"toppings,omitempty"` // 配料关联
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderItemTopping 订单项配料关联表
// 每个选中配料一行；价格不在此冗余，提交时已并入订单总额。
type OrderItemTopping struct {
	ID          uint `gorm:"primarykey" json:"id"`                // 主键
	OrderItemID uint `gorm:"index;not null" json:"order_item_id"` // 订单项ID
	ToppingID   uint `gorm:"index;not null" json:"topping_id"`    // 配料ID

	Topping *Topping `gorm:"foreignKey:ToppingID" json:"topping,omitempty"` // 关联配料（读取时联查名称）
}

// TableName 指定表名
func (OrderItemTopping) TableName() string {
	return "order_item_toppings"
}
