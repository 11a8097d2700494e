package constants

// 订单状态常量（严格线性流转：pending → preparing → ready → completed）
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

// OrderStatuses 员工看板的状态分组顺序
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
}

// 队列常量
const (
	QueueDefault          = "default"
	TaskOrderStatusNotify = "order:status_notify"
)

// 变更通知频道常量
const (
	ChannelOrdersChanged    = "orders:changed"
	ChannelUserNotifyPrefix = "user:notify"
)

// 缓存键常量
const (
	RedisPrefixDefault = "pp"
	CacheKeyCatalog    = "catalog:snapshot"
	CacheKeyCartPrefix = "cart"
)

// 员工邮箱域名默认值（邮箱以该后缀结尾的身份具备履约权限）
const (
	StaffEmailDomainDefault = "@pizzapalace.com"
)
