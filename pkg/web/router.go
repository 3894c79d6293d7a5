package web

import (
	// 外部依赖
	"context"

	cors "github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	// 内部引用
	config "github.com/openbench/labbook/internal/config"
	logger "github.com/openbench/labbook/pkg/middleware/logger"
	experiment "github.com/openbench/labbook/pkg/web/views/experiment"
	health "github.com/openbench/labbook/pkg/web/views/health"
	project "github.com/openbench/labbook/pkg/web/views/project"
	reagent "github.com/openbench/labbook/pkg/web/views/reagent"
)

func NewRouter(ctx context.Context, g *gin.Engine) {
	installMiddleware(g)
	InstallURL(ctx, g)
}

func installMiddleware(g *gin.Engine) {
	// 让 handler 内用 *gin.Context 当 context.Context 时能拿到请求上下文
	g.ContextWithFallback = true
	g.Use(gin.Recovery())
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(config.Global().Server.Service))
	g.Use(logger.LogWithWriter())
}

func InstallURL(_ context.Context, g *gin.Engine) {
	g.GET("/health", health.Health)
	g.GET("/health/live", health.Live)
	g.GET("/health/ready", health.Ready)
	g.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	projectHandle := project.NewHandle()
	{
		projects := g.Group("/projects")
		projects.GET("", projectHandle.List)
		projects.GET("/:id", projectHandle.Get)
		projects.GET("/pathToProject/:id", projectHandle.PathToProject)
		projects.POST("", projectHandle.Create)
	}

	experimentHandle := experiment.NewHandle()
	{
		experiments := g.Group("/experiments")
		experiments.POST("", experimentHandle.Create)
		experiments.GET("/:id", experimentHandle.Get)
		experiments.POST("/assignReagentToExperiment", experimentHandle.AssignReagent)
	}

	reagentHandle := reagent.NewHandle()
	{
		reagents := g.Group("/reagents")
		reagents.GET("", reagentHandle.Find)
		reagents.GET("/getSimilarReagentsByName", reagentHandle.Similar)
		reagents.POST("/addReagent", reagentHandle.Add)
		reagents.GET("/lookupCompound", reagentHandle.LookupCompound)
	}
}
