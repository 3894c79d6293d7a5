package health

import (
	// 外部依赖
	"net/http"

	gin "github.com/gin-gonic/gin"

	// 内部引用
	db "github.com/openbench/labbook/pkg/middleware/db"
	redis "github.com/openbench/labbook/pkg/middleware/redis"
)

func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func Live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Ready 就绪探针，依赖全部可达才返回 200
func Ready(ctx *gin.Context) {
	checks := gin.H{}
	healthy := true

	if ins := db.DB(); ins != nil {
		if sqlDB, err := ins.DBIns().DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			checks["database"] = "down"
			healthy = false
		} else {
			checks["database"] = "up"
		}
	} else {
		checks["database"] = "down"
		healthy = false
	}

	// redis 未配置时不参与就绪判定
	if client := redis.GetClient(); client != nil {
		if err := client.Ping(ctx).Err(); err != nil {
			checks["redis"] = "down"
			healthy = false
		} else {
			checks["redis"] = "up"
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, gin.H{"status": checks})
}
