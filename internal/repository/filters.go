package repository

import "gorm.io/gorm"

// OrderListFilter 订单列表查询条件
type OrderListFilter struct {
	UserID string
	Status string
	Limit  int
}

func applyLimit(query *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return query.Limit(limit)
	}
	return query
}
