package bootstrap

import (
	"context"
	"log"

	"sales-crm-be/internal/config"
	"sales-crm-be/internal/controller"
	"sales-crm-be/internal/pkg/logger"
	"sales-crm-be/internal/pkg/mailer"
	"sales-crm-be/internal/pkg/serverutils"
	"sales-crm-be/internal/repository/memory"
	"sales-crm-be/internal/repository/unitofwork"
	"sales-crm-be/internal/service"
	"sales-crm-be/pkg/nlquery/analyzer"
	"sales-crm-be/pkg/nlquery/builder"
	"sales-crm-be/pkg/nlquery/classifier"
	"sales-crm-be/pkg/nlquery/schema"
	"sales-crm-be/pkg/textclass"

	pktNats "sales-crm-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	AccountController   controller.IAccountController
	ContactController   controller.IContactController
	LeadController      controller.ILeadController
	TaskController      controller.ITaskController
	QuotationController controller.IQuotationController
	ActivityController  controller.IActivityController
	InsightController   controller.IInsightController

	// Background services (exposed for main.go to run)
	ActivityConsumerService service.IActivityConsumerService

	// Shared facades
	SysLogger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// In-memory refresh token storage
	refreshTokens := memory.NewRefreshTokenRepository(cfg.Auth.RefreshTokenTTL)

	// 3. Insight Pipeline
	catalog := schema.Default()

	var provider textclass.Provider
	if cfg.Insight.ClassifierURL != "" {
		provider = textclass.NewHTTPProvider(cfg.Insight.ClassifierURL, cfg.Insight.ClassifierTimeout)
		log.Printf("[INFO] Using external intent classifier: %s", cfg.Insight.ClassifierURL)
	} else {
		log.Printf("[INFO] No external intent classifier configured, using local rules")
	}

	intentClassifier := classifier.NewClassifier(catalog, provider, log.Default())
	queryBuilder := builder.NewBuilder(catalog, log.Default())
	queryAnalyzer := analyzer.NewAnalyzer(catalog)

	// 4. Services
	activityService := service.NewActivityService(natsPub, uowFactory, sysLogger)
	activityConsumerService := service.NewActivityConsumerService(natsSub, uowFactory, sysLogger)

	authService := service.NewAuthService(
		uowFactory,
		refreshTokens,
		activityService,
		sysLogger,
		service.AuthConfig{
			JwtSecret:       cfg.Auth.JwtSecret,
			AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
			RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		},
	)

	accountService := service.NewAccountService(uowFactory, activityService)
	contactService := service.NewContactService(uowFactory, activityService)
	leadService := service.NewLeadService(uowFactory, activityService)
	taskService := service.NewTaskService(uowFactory, activityService)
	quotationService := service.NewQuotationService(uowFactory, emailService, activityService, sysLogger)
	insightService := service.NewInsightService(intentClassifier, queryBuilder, queryAnalyzer, sysLogger)

	insightRateLimiter := serverutils.RateLimitMiddleware(rdb, "insight", cfg.Insight.RateLimitPerMinute)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		AccountController:   controller.NewAccountController(accountService),
		ContactController:   controller.NewContactController(contactService),
		LeadController:      controller.NewLeadController(leadService),
		TaskController:      controller.NewTaskController(taskService),
		QuotationController: controller.NewQuotationController(quotationService),
		ActivityController:  controller.NewActivityController(activityService),
		InsightController:   controller.NewInsightController(insightService, insightRateLimiter),

		ActivityConsumerService: activityConsumerService,

		SysLogger: sysLogger,
	}
}
