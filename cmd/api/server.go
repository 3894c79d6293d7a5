package api

import (
	// 外部依赖
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	cobra "github.com/spf13/cobra"

	// 内部引用
	config "github.com/openbench/labbook/internal/config"
	db "github.com/openbench/labbook/pkg/middleware/db"
	logger "github.com/openbench/labbook/pkg/middleware/logger"
	redis "github.com/openbench/labbook/pkg/middleware/redis"
	trace "github.com/openbench/labbook/pkg/middleware/trace"
	utils "github.com/openbench/labbook/pkg/utils"
	web "github.com/openbench/labbook/pkg/web"
)

func NewWeb() *cobra.Command {
	webServer := &cobra.Command{
		Use:  "apiserver",
		Long: `api server start`,

		// stop printing usage when the command errors
		SilenceUsage: true,
		PreRunE:      initWeb,
		RunE:         newRouter,
		PostRunE:     cleanWebResource,
	}

	return webServer
}

func initWeb(cmd *cobra.Command, _ []string) error {
	conf := config.Global()

	trace.InitTrace(cmd.Context(), &trace.InitConfig{
		ServiceName:     conf.Server.Platform + "-" + conf.Server.Service,
		Version:         conf.Trace.Version,
		TraceEndpoint:   conf.Trace.TraceEndpoint,
		MetricEndpoint:  conf.Trace.MetricEndpoint,
		TraceProject:    conf.Trace.TraceProject,
		TraceInstanceID: conf.Trace.TraceInstanceID,
		TraceAK:         conf.Trace.TraceAK,
		TraceSK:         conf.Trace.TraceSK,
	})

	db.InitPostgres(cmd.Context(), &db.Config{
		Host:   conf.Database.Host,
		Port:   conf.Database.Port,
		User:   conf.Database.User,
		PW:     conf.Database.Password,
		DBName: conf.Database.Name,
		LogConf: db.LogConf{
			Level: conf.Log.LogLevel,
		},
	})

	// redis 可选，未配置 host 时跳过
	if conf.Redis.Host != "" {
		redis.InitRedis(cmd.Context(), &redis.Redis{
			Host:     conf.Redis.Host,
			Port:     conf.Redis.Port,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
	}

	return nil
}

func newRouter(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	conf := config.Global()
	if conf.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	g := gin.New()
	web.NewRouter(ctx, g)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		Handler:           g,
		ReadHeaderTimeout: 10 * time.Second,
	}

	utils.SafelyGo(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(shutdownCtx, "shutdown http server err: %+v", err)
		}
	}, func(err error) {
		logger.Errorf(ctx, "shutdown watcher err: %+v", err)
	})

	logger.Infof(ctx, "api server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func cleanWebResource(cmd *cobra.Command, _ []string) error {
	redis.CloseRedis(cmd.Context())
	db.ClosePostgres(cmd.Context())
	trace.CloseTrace()
	return nil
}
