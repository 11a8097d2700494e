package app

import (
	"context"
	"errors"

	"github.com/pizza-palace/internal/liveview"
)

// LiveViewService 订单实时快照服务封装
// 实时快照跟随 API 进程生命周期：启动时全量加载，收到变更信号后重载。
type LiveViewService struct {
	name string
	view *liveview.View
}

// NewLiveViewService 创建实时快照服务
func NewLiveViewService(view *liveview.View) *LiveViewService {
	return &LiveViewService{
		name: "liveview",
		view: view,
	}
}

// Name 服务名称
func (s *LiveViewService) Name() string {
	if s == nil || s.name == "" {
		return "liveview"
	}
	return s.name
}

// Start 启动服务并阻塞至上下文取消
func (s *LiveViewService) Start(ctx context.Context) error {
	if s == nil || s.view == nil {
		return errors.New("liveview not initialized")
	}
	if err := s.view.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return ctx.Err()
}

// Stop 停止服务
func (s *LiveViewService) Stop(ctx context.Context) error {
	if s == nil || s.view == nil {
		return nil
	}
	_ = ctx
	s.view.Stop()
	return nil
}
