package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studytrack_backend/internal/config"
	"studytrack_backend/internal/controller"
	"studytrack_backend/internal/repository"
	"studytrack_backend/internal/service"
	"studytrack_backend/pkg/database"
	"studytrack_backend/pkg/logger"
	"studytrack_backend/pkg/monitoring"
	"studytrack_backend/pkg/security"
	"studytrack_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	limiter         *security.RateLimiter
	configCallbacks []func(*config.Config)
}

type repositories struct {
	snapshot *repository.SnapshotRepository
	card     *repository.CardRepository
	question *repository.QuestionRepository
	quote    *repository.QuoteRepository
}

type services struct {
	notifier  *service.LogNotifier
	streak    *service.StreakService
	study     *service.StudySessionService
	quiz      *service.QuizService
	pomodoro  *service.PomodoroService
	quote     *service.QuoteService
	dashboard *service.DashboardService
}

type controllers struct {
	study     *controller.StudySessionController
	quiz      *controller.QuizController
	streak    *controller.StreakController
	pomodoro  *controller.PomodoroController
	quote     *controller.QuoteController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新回调入口
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		snapshot: repository.NewSnapshotRepository(db),
		card:     repository.NewCardRepository(db),
		question: repository.NewQuestionRepository(db),
		quote:    repository.NewQuoteRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.notifier = service.NewLogNotifier()
	s.streak = service.NewStreakService(repos.snapshot)
	s.study = service.NewStudySessionService(repos.snapshot, repos.card, s.streak)
	s.quiz = service.NewQuizService(repos.snapshot, repos.question, s.streak, cfg.Quiz.DailyQuestionCount)
	s.pomodoro = service.NewPomodoroService(repos.snapshot, s.streak, s.notifier)
	s.quote = service.NewQuoteService(repos.quote, cfg.Quote.RotationHours)
	s.dashboard = service.NewDashboardService(s.study, s.quiz, s.streak, s.pomodoro, repos.card)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		study:     controller.NewStudySessionController(s.study),
		quiz:      controller.NewQuizController(s.quiz),
		streak:    controller.NewStreakController(s.streak),
		pomodoro:  controller.NewPomodoroController(s.pomodoro),
		quote:     controller.NewQuoteController(s.quote),
		dashboard: controller.NewDashboardController(s.dashboard, s.notifier),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.limiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("studytrack", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	// 配置可热更新的部分：语录轮换周期与限流参数
	app.RegisterConfigCallback(func(cfg *config.Config) {
		services.quote.SetRotationHours(cfg.Quote.RotationHours)
		app.limiter.Update(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
		logger.Log.Info("Config reloaded",
			zap.Int("quote_rotation_hours", cfg.Quote.RotationHours),
			zap.Int("rate_limit_max_requests", cfg.RateLimit.MaxRequests),
		)
	})

	return app
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
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

	// 停表并落盘番茄钟快照，重启后按墙钟差恢复
	if a.services != nil && a.services.pomodoro != nil {
		a.services.pomodoro.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
