package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/config"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/handler"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/migration"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/routes"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	pkgcache "github.com/1000kkannoo/dnd-8th-4-backend/pkg/cache"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/jwt"
	pkglogger "github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
	pkgredis "github.com/1000kkannoo/dnd-8th-4-backend/pkg/redis"
	pkgstorage "github.com/1000kkannoo/dnd-8th-4-backend/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Diary Backend API
// @version         1.0
// @description     그룹 일기 서비스 API
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath(env string) string {
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// 설정 로드
	configPath := getConfigPath(env)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	// MySQL 연결
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if cfg.IsDevelopment() {
		if err := migration.SeedLocal(db); err != nil {
			pkglogger.Warn("Seed warning: %v", err)
		}
	}

	// Redis 연결. Without Redis the counters and the bookmark index degrade to the database.
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}
	cacheService := pkgcache.NewService(redisClient)

	backend, err := initStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.RefreshIn)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	contentRepo := repository.NewContentRepository(db)
	emotionRepo := repository.NewEmotionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	viewCounter := repository.NewViewCounter(cacheService)
	bookmarkIndex := repository.NewBookmarkIndex(cacheService)

	// Services
	imageService := service.NewImageService(backend)
	notificationService := service.NewNotificationService(userRepo, notificationRepo)
	groupService := service.NewGroupService(userRepo, groupRepo)
	contentService := service.NewContentService(userRepo, groupRepo, contentRepo, commentRepo, emotionRepo, bookmarkRepo, viewCounter, imageService)
	bookmarkService := service.NewBookmarkService(userRepo, contentRepo, bookmarkRepo, bookmarkIndex)
	emotionService := service.NewEmotionService(userRepo, contentRepo, emotionRepo)
	commentService := service.NewCommentService(userRepo, contentRepo, commentRepo, emotionRepo, notificationService)
	userService := service.NewUserService(userRepo, bookmarkIndex)

	// Gin 라우터 생성
	router := gin.New()
	router.MaxMultipartMemory = 32 << 20

	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORS.AllowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Language"},
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.I18n())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", healthHandler(db, redisClient))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(router, &routes.Handlers{
		Group:        handler.NewGroupHandler(groupService),
		Content:      handler.NewContentHandler(contentService),
		Bookmark:     handler.NewBookmarkHandler(bookmarkService),
		Emotion:      handler.NewEmotionHandler(emotionService),
		Comment:      handler.NewCommentHandler(commentService),
		Notification: handler.NewNotificationHandler(notificationService),
		User:         handler.NewUserHandler(userService),
	}, jwtManager)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		pkglogger.Info("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	pkglogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		pkglogger.Error("Server forced to shutdown: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	pkglogger.Info("Server exited")
}

// healthHandler reports database and redis reachability; redis is optional
func healthHandler(db *gorm.DB, redisClient *goredis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		} else {
			middleware.SetDBConnectionsOpen(sqlDB.Stats().OpenConnections)
		}

		redisStatus := "disabled"
		if redisClient != nil {
			redisStatus = "ok"
			if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "degraded"
			}
		}

		c.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"service": "diary-backend",
			"db":      dbStatus,
			"redis":   redisStatus,
			"time":    time.Now().Unix(),
		})
	}
}

func initStorage(cfg *config.Config) (pkgstorage.Backend, error) {
	if !cfg.Storage.Enabled {
		pkglogger.Warn("Object storage disabled, images are kept in memory")
		return pkgstorage.NewMemoryBackend(fmt.Sprintf("http://localhost:%d/images", cfg.Server.Port)), nil
	}
	return pkgstorage.NewS3Client(pkgstorage.S3Config{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Bucket:          cfg.Storage.Bucket,
		CDNURL:          cfg.Storage.CDNURL,
		BasePath:        cfg.Storage.BasePath,
		ForcePathStyle:  cfg.Storage.ForcePathStyle,
		PublicRead:      cfg.Storage.PublicRead,
	})
}

func splitAndTrim(s string, delimiter string) []string {
	var out []string
	for _, part := range strings.Split(s, delimiter) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = []string{"http://localhost:3000"}
	}
	return out
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("DSN 파싱 실패: %w", err)
	}
	if mysqlCfg.Params == nil {
		mysqlCfg.Params = map[string]string{}
	}
	mysqlCfg.Params["time_zone"] = "'+09:00'"

	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}
