package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/teamadmin/internal/server"
	"github.com/dmitrijs2005/teamadmin/internal/server/config"
)

func main() {

	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	logger := server.NewDefaultLogger()

	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, logger)

	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
