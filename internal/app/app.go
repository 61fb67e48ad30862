package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "taskboard/docs"
	"taskboard/internal/apiclient"
	"taskboard/internal/calendar"
	"taskboard/internal/config"
	"taskboard/internal/handlers"
	"taskboard/internal/middleware"
	"taskboard/internal/pdf"
	"taskboard/internal/repositories"
	"taskboard/internal/routes"
	"taskboard/internal/services"
)

// Services is the non-HTTP part of the application, shared by the server and the CLI.
type Services struct {
	Tasks    services.TaskService
	Users    services.UserService
	Renderer *calendar.Renderer
	PDF      pdf.Generator
}

// NewServices builds the API client, repositories and services from cfg.
func NewServices(cfg *config.Config) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// === API client / repos ===
	api := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.TokenSecret)
	taskRepo := repositories.NewTaskRepository(api)
	userRepo := repositories.NewUserRepository(api)

	// === Notifications (optional) ===
	tg, err := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		// сервер работает и без Telegram
		log.Printf("[app][telegram][warn] disabled: %v", err)
		tg = nil
	}
	var mail services.EmailService
	if cfg.Email.SMTPHost != "" {
		mail = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	return &Services{
		Tasks:    services.NewTaskService(taskRepo, userRepo, loc, tg, mail),
		Users:    services.NewUserService(userRepo),
		Renderer: calendar.NewRenderer(loc, cfg.Calendar.MaxVisible),
		PDF:      pdf.NewCalendarGenerator(cfg.Files.FontPath),
	}, nil
}

// New wires the gin engine: middleware, page templates, handlers and routes.
func New(cfg *config.Config) (*gin.Engine, error) {
	svc, err := NewServices(cfg)
	if err != nil {
		return nil, err
	}
	return NewRouter(cfg, svc)
}

// NewRouter builds the engine around already constructed services.
func NewRouter(cfg *config.Config, svc *Services) (*gin.Engine, error) {
	tmpl, err := handlers.Templates(svc.Renderer.Location())
	if err != nil {
		return nil, err
	}

	// === Handlers ===
	taskHandler := handlers.NewTaskHandler(svc.Tasks, svc.Users, svc.Renderer.Location())
	userHandler := handlers.NewUserHandler(svc.Users)
	calendarHandler := handlers.NewCalendarHandler(svc.Tasks, svc.Renderer)
	reportHandler := handlers.NewReportHandler(svc.Tasks, svc.Users, svc.Renderer, svc.PDF, cfg.Calendar.DeadlineDays)

	// === Gin ===
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.SetHTMLTemplate(tmpl)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(router, taskHandler, userHandler, calendarHandler, reportHandler)
	return router, nil
}

// Run serves on server.port until the listener fails.
func Run(cfg *config.Config) error {
	router, err := New(cfg)
	if err != nil {
		return err
	}
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[app] listening on %s, api=%s", listenAddr, cfg.API.BaseURL)
	if err := router.Run(listenAddr); err != nil {
		return fmt.Errorf("serve %s: %w", listenAddr, err)
	}
	return nil
}
