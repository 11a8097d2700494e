package app

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// HTTPService 把 gin 引擎托管为 Runner 组件，负责门店 API 的接入与优雅停机
type HTTPService struct {
	server *http.Server
}

// NewHTTPService 创建 HTTP 组件
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Name 组件名称
func (s *HTTPService) Name() string {
	return "http"
}

// Start 监听并服务请求，正常关闭不视为错误
func (s *HTTPService) Start(_ context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅停机：等待在途请求（含 SSE 长连接）随上下文截止
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
