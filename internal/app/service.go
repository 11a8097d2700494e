package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Service 可托管的长驻组件（HTTP 接入、订单快照、任务消费者）
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 托管一组 Service：任一退出即触发整体停机
type Runner struct {
	services []Service
}

// NewRunner 创建运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// RunWithOptions 绑定系统信号后运行
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 并发启动全部组件，等待首个退出或上下文取消，然后限时停机
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		service := svc
		go func() {
			if service == nil {
				errCh <- errors.New("service is nil")
				return
			}
			if log != nil {
				log.Infow("service_start", "service", service.Name())
			}
			errCh <- service.Start(ctx)
			if log != nil {
				log.Infow("service_exit", "service", service.Name())
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	cancel()
	r.stopAll(stopTimeout, log)

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

// stopAll 限时停掉全部组件，停机失败只记日志不阻断
func (r *Runner) stopAll(stopTimeout time.Duration, log *zap.SugaredLogger) {
	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	for _, svc := range r.services {
		if svc == nil {
			continue
		}
		if err := svc.Stop(stopCtx); err != nil && log != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
}
