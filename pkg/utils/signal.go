package utils

import (
	// 外部依赖
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalContext 返回随 SIGINT/SIGTERM 取消的根 context
func SetupSignalContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
