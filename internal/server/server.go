package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "strength-api/docs" // сгенерированная swagger-спецификация
	"strength-api/internal/cache"
	"strength-api/internal/config"
	"strength-api/internal/database"
	"strength-api/internal/domain/shared"
	healthhandler "strength-api/internal/handler/health"
	"strength-api/internal/handler/middleware"
	musclehandler "strength-api/internal/handler/muscle"
	mehandler "strength-api/internal/handler/muscleexercise"
	userhandler "strength-api/internal/handler/user"
	"strength-api/internal/mailer"
	pgrepo "strength-api/internal/repository/postgres"
	muscleuc "strength-api/internal/usecase/muscle"
	meuc "strength-api/internal/usecase/muscleexercise"
	"strength-api/internal/usecase/pipeline"
	useruc "strength-api/internal/usecase/user"
	"strength-api/pkg/logger"
	"strength-api/pkg/token"
)

// Server представляет HTTP сервер приложения
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *database.DB
	cfg        *config.Config
	log        logger.Logger

	tokenService token.Service

	userHandler   *userhandler.Handler
	muscleHandler *musclehandler.Handler
	meHandler     *mehandler.Handler
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config, db *database.DB) *Server {
	// Устанавливаем режим Gin в зависимости от окружения
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		log:    logger.Default(),
	}

	// Инициализируем зависимости один раз
	gormDB := db.DB
	userRepo := pgrepo.NewUserRepository(gormDB)
	muscleRepo := pgrepo.NewMuscleRepository(gormDB)
	linkRepo := pgrepo.NewMuscleExerciseRepository(gormDB)
	uow := pgrepo.NewUnitOfWork(gormDB, s.log)

	emailSender := mailer.NewSMTPSender(&cfg.Email, s.log)
	store := cache.NewMemory()
	s.tokenService = token.NewService(&cfg.JWT)

	// Конвейеры команд: обработчик плюс его наборы правил валидации
	registerPipe := pipeline.New[useruc.CreateUserCommand, shared.Unit](
		useruc.NewCreateUserHandler(uow, emailSender),
		useruc.NewCreateUserValidator(userRepo),
	)
	loginPipe := pipeline.New[useruc.LoginUserCommand, token.AuthToken](
		useruc.NewLoginUserHandler(userRepo, s.tokenService),
		useruc.NewLoginUserValidator(),
	)
	verifyPipe := pipeline.New[useruc.VerifyUserCommand, shared.Unit](
		useruc.NewVerifyUserHandler(userRepo, uow),
		useruc.NewVerifyUserValidator(),
	)
	resendPipe := pipeline.New[useruc.SendVerificationEmailCommand, string](
		useruc.NewSendVerificationEmailHandler(userRepo, emailSender, store, cfg.Verification.ResendThrottle),
		useruc.NewSendVerificationEmailValidator(),
	)
	updateMusclePipe := pipeline.New[muscleuc.UpdateMuscleCommand, shared.Unit](
		muscleuc.NewUpdateMuscleHandler(muscleRepo),
		muscleuc.NewUpdateMuscleValidator(),
	)
	createManyPipe := pipeline.New[meuc.CreateManyCommand, shared.Unit](
		meuc.NewCreateManyHandler(linkRepo, uow),
		meuc.NewCreateManyValidator(),
	)

	s.userHandler = userhandler.NewHandler(registerPipe, loginPipe, verifyPipe, resendPipe)
	s.muscleHandler = musclehandler.NewHandler(updateMusclePipe)
	s.meHandler = mehandler.NewHandler(createManyPipe)

	// Настраиваем middleware и роуты
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware настраивает middleware для роутера
func (s *Server) setupMiddleware() {
	// Recovery должен быть первым для перехвата паник
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.Logger(s.log))
	s.router.Use(middleware.CORS(&s.cfg.CORS))
}

// setupRoutes настраивает маршруты приложения
func (s *Server) setupRoutes() {
	s.setupHealthRoutes()
	s.setupUserRoutes()
	s.setupAdminRoutes()

	// GET /swagger/*any — интерактивная документация API.
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupHealthRoutes настраивает health-check эндпоинты.
func (s *Server) setupHealthRoutes() {
	healthHandler := healthhandler.NewHandler(s.db, s.cfg.AppEnv)
	// GET /health — базовый health-check сервера (жив ли процесс).
	s.router.GET("/health", healthHandler.Health)
	// GET /health/db — проверка доступности базы данных.
	s.router.GET("/health/db", healthHandler.HealthDB)
}

// setupUserRoutes настраивает публичные эндпоинты пользователя.
func (s *Server) setupUserRoutes() {
	userGroup := s.router.Group("/api/user")
	{
		// POST /api/user/register — регистрация нового пользователя.
		userGroup.POST("/register", s.userHandler.Register)
		// POST /api/user/login — вход по email/паролю.
		userGroup.POST("/login", s.userHandler.Login)
		// GET /api/user/verify — подтверждение email по ссылке из письма.
		userGroup.GET("/verify", s.userHandler.Verify)
		// POST /api/user/send-verification-email — повторная отправка письма.
		userGroup.POST("/send-verification-email", s.userHandler.SendVerificationEmail)
	}
}

// setupAdminRoutes настраивает эндпоинты справочников,
// доступные только администратору.
func (s *Server) setupAdminRoutes() {
	adminGroup := s.router.Group("/api")
	adminGroup.Use(middleware.Auth(s.tokenService), middleware.RequireRole("admin"))
	{
		// PUT /api/muscle — переименование мышцы.
		adminGroup.PUT("/muscle", s.muscleHandler.Update)
		// POST /api/muscle-exercise — массовое создание связей мышца-упражнение.
		adminGroup.POST("/muscle-exercise", s.meHandler.CreateMany)
	}
}

// Start запускает HTTP сервер с graceful shutdown
func (s *Server) Start() error {
	address := s.cfg.Server.Address()

	s.httpServer = &http.Server{
		Addr:           address,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Канал для получения сигналов ОС
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Канал для ошибок запуска сервера
	serverErr := make(chan error, 1)

	go func() {
		log.Printf("HTTP сервер запущен на %s", address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("ошибка запуска HTTP сервера: %w", err)
		}
	}()

	// Ожидаем либо сигнал для graceful shutdown, либо ошибку запуска
	select {
	case err := <-serverErr:
		log.Printf("Ошибка запуска сервера: %v", err)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
		return err
	case sig := <-quit:
		log.Printf("Получен сигнал %v для остановки сервера...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	log.Println("HTTP сервер успешно остановлен")
	return nil
}

// GetRouter возвращает роутер (для тестирования)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
