package service

import "errors"

// 业务错误定义，处理层据此映射响应码
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAuthorizationDenied    = errors.New("authorization denied")
	ErrOrderNotFound          = errors.New("order not found")
	ErrProductNotAvailable    = errors.New("product not available")
	ErrToppingNotAvailable    = errors.New("topping not available")
	ErrSubmissionFailed       = errors.New("order submission failed")
	ErrLoadFailed             = errors.New("load failed")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrOrderStatusTerminal    = errors.New("order status is terminal")
	ErrOrderStatusInvalid     = errors.New("order status invalid")
)
