package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"utme_prep_backend/internal/config"
	"utme_prep_backend/internal/controller"
	"utme_prep_backend/internal/service"
	"utme_prep_backend/pkg/logger"
	"utme_prep_backend/pkg/monitoring"
	"utme_prep_backend/pkg/security"
	"utme_prep_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	services *services
}

type services struct {
	fetcher    *service.FetcherService
	normalizer *service.NormalizerService
	validator  *service.ValidatorService
	cache      *service.SubjectCache
	resolver   *service.ResolverService
}

type controllers struct {
	quiz       *controller.QuizController
	cluster    *controller.ClusterController
	validation *controller.ValidationController
	health     *controller.HealthController
}

func (a *App) initServices(cfg *config.Config) *services {
	s := &services{}

	s.fetcher = service.NewFetcherService(cfg)
	s.normalizer = service.NewNormalizerService()
	s.validator = service.NewValidatorService(cfg)
	s.cache = service.NewSubjectCache()
	s.resolver = service.NewResolverService(cfg, s.fetcher, s.normalizer, s.validator, s.cache)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		quiz:       controller.NewQuizController(s.resolver, a.Config),
		cluster:    controller.NewClusterController(s.resolver),
		validation: controller.NewValidationController(s.validator),
		health:     controller.NewHealthController(s.cache),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	services := app.initServices(cfg)
	app.services = services
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("utme-prep-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
