// Package auth 消费外部认证服务签发的身份。
// 本服务不管理账号与会话，只校验 JWT 并据邮箱后缀判定员工身份。
package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity 当前请求身份
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Valid 判断身份是否可用
func (i Identity) Valid() bool {
	return strings.TrimSpace(i.UserID) != ""
}

// JWTClaims 外部认证服务签发的用户令牌声明
type JWTClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// IsStaff 员工判定：邮箱以组织员工域名后缀结尾
// 每次访问都重新判定，不缓存结果。
func IsStaff(identity Identity, staffEmailDomain string) bool {
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	suffix := strings.ToLower(strings.TrimSpace(staffEmailDomain))
	if email == "" || suffix == "" {
		return false
	}
	if !strings.HasPrefix(suffix, "@") {
		suffix = "@" + suffix
	}
	return strings.HasSuffix(email, suffix)
}
