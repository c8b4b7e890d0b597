package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/config"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/handler"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/repository"
	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/service"
)

func main() {
	logger := logrus.New()
	// Nivel de log (Debug para desarrollo, Info para producción)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Carga de la configuración de la aplicación
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Error al cargar la configuración: %v", err)
	}

	// Conexión a PostgreSQL
	db, err := sql.Open("postgres", fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	))
	if err != nil {
		logger.Fatalf("Error al conectar con la base de datos: %v", err)
	}
	defer db.Close()

	// Verificación de la conexión a la BD
	if err := db.Ping(); err != nil {
		logger.Fatalf("Error al verificar la conexión a la BD: %v", err)
	}

	// Aplicación de migraciones del esquema
	if err := repository.RunMigrations(db); err != nil {
		logger.Fatalf("Error al aplicar las migraciones: %v", err)
	}

	// Inicialización de repositorios
	logger.Info("Inicializando repositorios...")
	userRepo := repository.NewUserRepository(db, logger)
	categoryRepo := repository.NewCategoryRepository(db, logger)
	transactionRepo := repository.NewTransactionRepository(db, logger)
	incomeRepo := repository.NewIncomeRepository(db, logger)
	budgetRepo := repository.NewBudgetRepository(db, logger)
	debtRepo := repository.NewDebtRepository(db, logger)
	notificationRepo := repository.NewNotificationRepository(db, logger)
	reportRepo := repository.NewReportRepository(db, logger)
	rolloverRepo := repository.NewRolloverRepository(db, reportRepo, transactionRepo, budgetRepo, logger)
	emailSender := service.NewEmailSender(logger)

	// Cache opcional para el resumen financiero
	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		logger.WithField("addr", cfg.RedisAddr).Info("Cache Redis habilitado")
	}

	// Inicialización de servicios
	logger.Info("Inicializando servicios...")
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry, logger)
	userService := service.NewUserService(userRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)
	transactionService := service.NewTransactionService(transactionRepo, logger)
	incomeService := service.NewIncomeService(incomeRepo, logger)
	budgetService := service.NewBudgetService(budgetRepo, transactionRepo, logger)
	debtService := service.NewDebtService(debtRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo, logger)
	reminderService := service.NewReminderService(debtRepo, userRepo, notificationRepo, emailSender, logger)
	reportService := service.NewReportService(reportRepo, rolloverRepo, debtRepo, logger)
	statsService := service.NewStatsService(transactionRepo, budgetRepo, logger)
	overviewService := service.NewOverviewService(transactionRepo, budgetRepo, cache, logger)
	ecbClient := service.NewECBClient(logger)

	// Inicialización de los manejadores HTTP
	logger.Info("Inicializando manejadores de la API...")
	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	transactionHandler := handler.NewTransactionHandler(transactionService, logger)
	incomeHandler := handler.NewIncomeHandler(incomeService, logger)
	budgetHandler := handler.NewBudgetHandler(budgetService, logger)
	debtHandler := handler.NewDebtHandler(debtService, logger)
	notificationHandler := handler.NewNotificationHandler(notificationService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)
	statsHandler := handler.NewStatsHandler(statsService, logger)
	overviewHandler := handler.NewOverviewHandler(overviewService, ecbClient, logger)

	// Configuración del enrutador
	router := mux.NewRouter()

	// 1. Rutas públicas de autenticación
	publicRouter := router.PathPrefix("/api/auth").Subrouter()
	authHandler.RegisterRoutes(publicRouter) // Registra /signup y /signin

	// 2. Rutas protegidas de la API (requieren token JWT)
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(handler.AuthMiddleware(authService, logger))

	userRouter := apiRouter.PathPrefix("/users").Subrouter()
	userHandler.RegisterRoutes(userRouter)

	categoryRouter := apiRouter.PathPrefix("/categories").Subrouter()
	categoryHandler.RegisterRoutes(categoryRouter)

	transactionRouter := apiRouter.PathPrefix("/transactions").Subrouter()
	transactionHandler.RegisterRoutes(transactionRouter)

	incomeRouter := apiRouter.PathPrefix("/incomes").Subrouter()
	incomeHandler.RegisterRoutes(incomeRouter)

	budgetRouter := apiRouter.PathPrefix("/budgets").Subrouter()
	budgetHandler.RegisterRoutes(budgetRouter)

	debtRouter := apiRouter.PathPrefix("/debts").Subrouter()
	debtHandler.RegisterRoutes(debtRouter)

	notificationRouter := apiRouter.PathPrefix("/notifications").Subrouter()
	notificationHandler.RegisterRoutes(notificationRouter)

	reportRouter := apiRouter.PathPrefix("/reports").Subrouter()
	reportHandler.RegisterRoutes(reportRouter)

	statsRouter := apiRouter.PathPrefix("/stats").Subrouter()
	statsHandler.RegisterRoutes(statsRouter)

	overviewRouter := apiRouter.PathPrefix("/overview").Subrouter()
	overviewHandler.RegisterRoutes(overviewRouter)

	// Planificador del barrido de recordatorios de deudas
	logger.Info("Configurando el planificador de recordatorios...")
	c := cron.New()
	_, err = c.AddFunc(cfg.ReminderCron, func() {
		logger.Info("Iniciando barrido de recordatorios de deudas")
		sent, err := reminderService.RunReminderSweep(context.Background())
		if err != nil {
			logger.WithError(err).Error("Error en el barrido de recordatorios")
			return
		}
		logger.WithField("sent", sent).Info("Barrido de recordatorios completado")
	})
	if err != nil {
		logger.Fatalf("Error al configurar el planificador: %v", err)
	}
	c.Start()

	// Configuración y arranque del servidor HTTP
	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	go func() {
		logger.Infof("Servidor escuchando en %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error del servidor: %v", err)
		}
	}()

	// Espera de señales para un apagado ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Apagando el servidor...")
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Errorf("Error al apagar el servidor: %v", err)
	}
	logger.Info("Servidor detenido correctamente")
}
