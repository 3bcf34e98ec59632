package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hackflow/hackflow-api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)

	if err := logger.Initialize(logger.Config{Level: "debug", Environment: "development"}); err != nil {
		panic(err)
	}
}
