package provider

import (
	"github.com/civeni/civeni-api/internal/authz"
	"github.com/civeni/civeni-api/internal/cache"
	"github.com/civeni/civeni-api/internal/config"
	"github.com/civeni/civeni-api/internal/logger"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/queue"
	"github.com/civeni/civeni-api/internal/repository"
	"github.com/civeni/civeni-api/internal/service"
	"github.com/civeni/civeni-api/internal/storage"
)

// Container wires configuration, repositories and services.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Store       *storage.Store

	// Repositories
	AdminRepo              repository.AdminRepository
	EventRepo              repository.EventRepository
	EventCertificateRepo   repository.EventCertificateRepository
	IssuedCertificateRepo  repository.IssuedCertificateRepository
	CertificateAttemptRepo repository.CertificateAttemptRepository
	CategoryRepo           repository.RegistrationCategoryRepository
	RegistrationRepo       repository.RegistrationRepository
	WorkRepo               repository.WorkRepository
	PostRepo               repository.PostRepository
	BannerRepo             repository.BannerRepository
	FinanceRepo            repository.FinanceRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	AdminService        *service.AdminService
	EmailService        *service.EmailService
	EventService        *service.EventService
	CertificateService  *service.CertificateService
	RegistrationService *service.RegistrationService
	WorkService         *service.WorkService
	PostService         *service.PostService
	BannerService       *service.BannerService
	FinanceService      *service.FinanceService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Store:       storage.New(cfg.Storage.Dir, cfg.Storage.PublicBaseURL),
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.EventRepo = repository.NewEventRepository(db)
	c.EventCertificateRepo = repository.NewEventCertificateRepository(db)
	c.IssuedCertificateRepo = repository.NewIssuedCertificateRepository(db)
	c.CertificateAttemptRepo = repository.NewCertificateAttemptRepository(db)
	c.CategoryRepo = repository.NewRegistrationCategoryRepository(db)
	c.RegistrationRepo = repository.NewRegistrationRepository(db)
	c.WorkRepo = repository.NewWorkRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.FinanceRepo = repository.NewFinanceRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.AdminService = service.NewAdminService(c.AdminRepo, c.AuthService)
	c.EventService = service.NewEventService(c.EventRepo, c.EventCertificateRepo)
	c.CertificateService = service.NewCertificateService(
		c.EventRepo,
		c.EventCertificateRepo,
		c.IssuedCertificateRepo,
		c.CertificateAttemptRepo,
		c.Store,
		c.QueueClient,
	)
	c.RegistrationService = service.NewRegistrationService(c.Config, c.EventRepo, c.CategoryRepo, c.RegistrationRepo, c.QueueClient)
	c.WorkService = service.NewWorkService(c.EventRepo, c.WorkRepo, c.Store, c.QueueClient)
	c.PostService = service.NewPostService(c.PostRepo)
	c.BannerService = service.NewBannerService(c.BannerRepo)
	c.FinanceService = service.NewFinanceService(c.FinanceRepo, c.CategoryRepo)
}
