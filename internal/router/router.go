package router

import (
	"fmt"
	"strings"

	"github.com/civeni/civeni-api/internal/cache"
	"github.com/civeni/civeni-api/internal/config"
	adminhandlers "github.com/civeni/civeni-api/internal/http/handlers/admin"
	publichandlers "github.com/civeni/civeni-api/internal/http/handlers/public"
	"github.com/civeni/civeni-api/internal/logger"
	"github.com/civeni/civeni-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "civeni"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	certificateRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:certificate", redisPrefix),
		WindowSeconds: cfg.Security.PublicRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PublicRateLimit.MaxAttempts,
	}
	publicWriteRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:public_write", redisPrefix),
		WindowSeconds: cfg.Security.PublicRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PublicRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded files (certificate PDFs, work documents, images).
	r.Static("/uploads", cfg.Storage.Dir)

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/events", publicHandler.GetPublicEvents)
			public.GET("/events/:slug", publicHandler.GetPublicEvent)
			public.GET("/events/:slug/categories", publicHandler.GetPublicCategories)
			public.GET("/posts", publicHandler.GetPublicPosts)
			public.GET("/posts/:slug", publicHandler.GetPublicPost)
			public.GET("/banners", publicHandler.GetPublicBanners)

			public.POST("/certificates/issue",
				RateLimitMiddleware(redisClient, certificateRule, KeyByIPAndJSONField("email")),
				publicHandler.IssueCertificate)
			public.GET("/certificates/verify/:code", publicHandler.VerifyCertificate)
			public.GET("/certificates/verify", publicHandler.VerifyCertificate)

			public.POST("/registrations",
				RateLimitMiddleware(redisClient, publicWriteRule, KeyByIPAndJSONField("email")),
				publicHandler.CreateRegistration)
			public.POST("/registrations/verify", publicHandler.VerifyRegistrationSession)

			public.POST("/works",
				RateLimitMiddleware(redisClient, publicWriteRule, KeyByIP),
				publicHandler.SubmitWork)
		}

		apiV1.POST("/payments/webhook/stripe", publicHandler.StripeWebhook)

		apiV1.POST("/admin/login",
			RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")),
			adminHandler.AdminLogin)

		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		admin.Use(AdminRBACMiddleware(c.AuthzService))
		{
			admin.GET("/profile", adminHandler.GetAdminProfile)
			admin.PUT("/password", adminHandler.UpdateAdminPassword)

			admin.GET("/events", adminHandler.GetAdminEvents)
			admin.POST("/events", adminHandler.CreateEvent)
			admin.GET("/events/:id", adminHandler.GetAdminEvent)
			admin.PUT("/events/:id", adminHandler.UpdateEvent)
			admin.DELETE("/events/:id", adminHandler.DeleteEvent)
			admin.PUT("/events/:id/translations", adminHandler.SaveEventTranslation)
			admin.DELETE("/events/:id/translations/:locale", adminHandler.DeleteEventTranslation)
			admin.GET("/events/:id/certificate", adminHandler.GetEventCertificateConfig)
			admin.PUT("/events/:id/certificate", adminHandler.SaveEventCertificateConfig)

			admin.GET("/certificates", adminHandler.GetIssuedCertificates)
			admin.GET("/certificate-attempts", adminHandler.GetCertificateAttempts)

			admin.GET("/registrations", adminHandler.GetAdminRegistrations)
			admin.GET("/registrations/:id", adminHandler.GetAdminRegistration)
			admin.PATCH("/registrations/:id", adminHandler.UpdateRegistrationStatus)

			admin.GET("/categories", adminHandler.GetAdminCategories)
			admin.POST("/categories", adminHandler.CreateAdminCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateAdminCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteAdminCategory)

			admin.GET("/works", adminHandler.GetAdminWorks)
			admin.GET("/works/:id", adminHandler.GetAdminWork)
			admin.PATCH("/works/:id", adminHandler.UpdateWorkStatus)

			admin.GET("/posts", adminHandler.GetAdminPosts)
			admin.POST("/posts", adminHandler.CreateAdminPost)
			admin.PUT("/posts/:id", adminHandler.UpdateAdminPost)
			admin.DELETE("/posts/:id", adminHandler.DeleteAdminPost)

			admin.GET("/banners", adminHandler.GetAdminBanners)
			admin.POST("/banners", adminHandler.CreateAdminBanner)
			admin.GET("/banners/:id", adminHandler.GetAdminBanner)
			admin.PUT("/banners/:id", adminHandler.UpdateAdminBanner)
			admin.DELETE("/banners/:id", adminHandler.DeleteAdminBanner)

			admin.GET("/finance/summary", adminHandler.GetFinanceSummary)
			admin.GET("/finance/series", adminHandler.GetFinanceSeries)

			admin.POST("/upload", adminHandler.UploadFile)

			admin.GET("/admins", adminHandler.GetAdminUsers)
			admin.POST("/admins", adminHandler.CreateAdminUser)
			admin.POST("/admins/:id/reset-password", adminHandler.ResetAdminPassword)
			admin.DELETE("/admins/:id", adminHandler.DeleteAdminUser)
			admin.GET("/authz/roles", adminHandler.ListAuthzRoles)
			admin.POST("/authz/roles", adminHandler.CreateAuthzRole)
			admin.DELETE("/authz/roles/:role", adminHandler.DeleteAuthzRole)
			admin.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
			admin.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
			admin.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
			admin.GET("/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
			admin.PUT("/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
