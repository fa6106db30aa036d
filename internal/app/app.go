package app

import (
	"fmt"
	"log"

	"nsuemschool/internal/authz"
	"nsuemschool/internal/config"
	"nsuemschool/internal/db"
	"nsuemschool/internal/handlers"
	"nsuemschool/internal/middleware"
	"nsuemschool/internal/pdf"
	"nsuemschool/internal/repositories"
	"nsuemschool/internal/routes"
	"nsuemschool/internal/services"
	"nsuemschool/internal/session"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "nsuemschool/docs"
)

func Run() {
	cfg := config.LoadConfig()

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret не задан в конфиге")
	}
	middleware.SetJWTKey([]byte(cfg.JWT.Secret))

	// === DB ===
	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()
	if err := db.EnsureSchema(conn); err != nil {
		log.Fatal("Ошибка инициализации схемы: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(conn)
	consultationRepo := repositories.NewConsultationRepository(conn)
	contentRepo := repositories.NewContentRepository(conn)

	// === Session / break-glass ===
	sessions := session.NewStore(cfg.Session.File)
	breakGlass := authz.NewBreakGlass(cfg.Admin)
	if !breakGlass.Enabled() {
		log.Printf("break-glass администратор выключен (admin.login/password пустые)")
	}

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	notifier, err := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		// без Telegram работать можно, просто предупреждаем
		log.Printf("Telegram-интеграция недоступна: %v", err)
	}

	userService := services.NewUserService(userRepo, authService, emailService, sessions, breakGlass)
	consultationService := services.NewConsultationService(
		consultationRepo, notifier, emailService, cfg.Email.LeadsEmail,
	)
	contentService := services.NewContentService(contentRepo)

	// PDF-отчёты (нужен TTF с кириллицей, например assets/fonts/DejaVuSans.ttf)
	reportGen := pdf.NewReportGenerator(cfg.Reports.RootDir, cfg.Reports.FontPath)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	contentHandler := handlers.NewContentHandler(contentService)
	reportHandler := handlers.NewReportHandler(consultationService, reportGen)

	// === Router ===
	r := gin.Default()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	routes.SetupRoutes(r, authHandler, userHandler, consultationHandler, contentHandler, reportHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}
