// @title UTME Prep 后端 API
// @version 1.0
// @description 100天备考题目获取管线的后端服务器。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"utme_prep_backend/internal/app"
	"utme_prep_backend/internal/config"
	"utme_prep_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
