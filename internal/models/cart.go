package models

import (
	"github.com/shopspring/decimal"
)

// CartLineItem 购物车行项
// product 为加入时的商品快照，配料按 ID 去重。
type CartLineItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	Toppings []Topping `json:"toppings"`
	Notes    string    `json:"notes,omitempty"`
}

// Cart 购物车聚合
// 行项按加入顺序排列，同一商品 ID 至多出现一次；聚合整体读写，不做局部持久化。
type Cart struct {
	Items []CartLineItem `json:"items"`
}

// NewCart 创建空购物车
func NewCart() *Cart {
	return &Cart{Items: []CartLineItem{}}
}

// AddItem 加入商品
// 已存在同商品 ID 的行项时只累加数量，原有配料与备注保持不变；数量下限收敛为 1。
func (c *Cart) AddItem(product Product, quantity int, toppings []Topping, notes string) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartLineItem{
		Product:  product,
		Quantity: quantity,
		Toppings: dedupeToppings(toppings),
		Notes:    notes,
	})
}

// RemoveItem 移除商品行项，不存在时为空操作
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity 替换行项数量，数量下限收敛为 1，不存在时为空操作
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
}

// IsEmpty 判断购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total 计算购物车总额：Σ (商品单价 + Σ 配料单价) × 数量
// 纯计算，无副作用，可在每次渲染时调用。
func (c *Cart) Total() Money {
	total := decimal.Zero
	for _, item := range c.Items {
		lineUnit := item.Product.Price.Decimal
		for _, topping := range item.Toppings {
			lineUnit = lineUnit.Add(topping.Price.Decimal)
		}
		total = total.Add(lineUnit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return NewMoneyFromDecimal(total)
}

// LineTotal 计算单个行项小计
func (c CartLineItem) LineTotal() Money {
	unit := c.Product.Price.Decimal
	for _, topping := range c.Toppings {
		unit = unit.Add(topping.Price.Decimal)
	}
	return NewMoneyFromDecimal(unit.Mul(decimal.NewFromInt(int64(c.Quantity))))
}

func dedupeToppings(toppings []Topping) []Topping {
	if len(toppings) == 0 {
		return []Topping{}
	}
	seen := make(map[uint]bool, len(toppings))
	result := make([]Topping, 0, len(toppings))
	for _, topping := range toppings {
		if seen[topping.ID] {
			continue
		}
		seen[topping.ID] = true
		result = append(result, topping)
	}
	return result
}
