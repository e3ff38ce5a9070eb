package main

import (
	"time"

	"github.com/civeni/civeni-api/internal/config"
	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/logger"
	"github.com/civeni/civeni-api/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	eventID := seedEvent(stdLog.Printf)
	if eventID == 0 {
		stdLog.Fatalf("Failed to seed base event")
	}
	seedCertificateConfig(eventID, stdLog.Printf)
	seedCategories(eventID, stdLog.Printf)
	seedPosts(stdLog.Printf)
	seedBanners(stdLog.Printf)

	stdLog.Printf("Seed finished")
}

func seedEvent(logf func(string, ...interface{})) uint {
	startsAt := time.Date(2025, time.December, 10, 9, 0, 0, 0, time.UTC)
	endsAt := time.Date(2025, time.December, 12, 19, 0, 0, 0, time.UTC)

	var existing models.Event
	if err := models.DB.Where("slug = ?", "iii-civeni-2025").First(&existing).Error; err == nil {
		logf("Event already exists: %s", existing.Slug)
		return existing.ID
	}

	event := models.Event{
		Slug:       "iii-civeni-2025",
		Status:     constants.EventStatusPublished,
		IsFeatured: true,
		SortOrder:  1,
		StartsAt:   &startsAt,
		EndsAt:     &endsAt,
		Translations: []models.EventTranslation{
			{
				Locale:      "pt-BR",
				Title:       "III CIVENI 2025 - Congresso Internacional Virtual de Ensino",
				Description: "Terceira edição do congresso internacional virtual, com palestras, mesas redondas e apresentação de trabalhos científicos.",
			},
			{
				Locale:      "en-US",
				Title:       "III CIVENI 2025 - International Virtual Congress on Education",
				Description: "Third edition of the international virtual congress, with keynotes, panels and scientific paper presentations.",
			},
			{
				Locale:      "es-ES",
				Title:       "III CIVENI 2025 - Congreso Internacional Virtual de Enseñanza",
				Description: "Tercera edición del congreso internacional virtual, con conferencias, mesas redondas y presentación de trabajos científicos.",
			},
		},
	}

	if err := models.DB.Create(&event).Error; err != nil {
		logf("Failed to create event %s: %v", event.Slug, err)
		return 0
	}
	logf("Created event: %s", event.Slug)
	return event.ID
}

func seedCertificateConfig(eventID uint, logf func(string, ...interface{})) {
	var existing models.EventCertificate
	if err := models.DB.Where("event_id = ?", eventID).First(&existing).Error; err == nil {
		logf("Certificate config already exists for event %d", eventID)
		return
	}

	cfg := models.EventCertificate{
		EventID:         eventID,
		IsEnabled:       true,
		Keywords:        models.StringArray([]string{"metodologia", "inclusão", "tecnologia", "docência", "avaliação"}),
		RequiredCorrect: 3,
		Language:        "pt-BR",
		City:            "São Paulo",
		Country:         "Brasil",
		Hours:           40,
	}
	if err := models.DB.Create(&cfg).Error; err != nil {
		logf("Failed to create certificate config: %v", err)
		return
	}
	logf("Created certificate config for event %d", eventID)
}

func seedCategories(eventID uint, logf func(string, ...interface{})) {
	categories := []models.RegistrationCategory{
		{
			EventID: eventID,
			TitleJSON: models.JSON(map[string]interface{}{
				"pt-BR": "Ouvinte",
				"en-US": "Listener",
				"es-ES": "Oyente",
			}),
			Price:     models.NewMoneyFromDecimal(decimal.Zero),
			Currency:  "BRL",
			IsFree:    true,
			IsActive:  true,
			SortOrder: 1,
		},
		{
			EventID: eventID,
			TitleJSON: models.JSON(map[string]interface{}{
				"pt-BR": "Apresentador de trabalho",
				"en-US": "Paper presenter",
				"es-ES": "Presentador de trabajo",
			}),
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(120.00)),
			Currency:  "BRL",
			IsFree:    false,
			IsActive:  true,
			SortOrder: 2,
		},
	}

	for _, cat := range categories {
		var count int64
		models.DB.Model(&models.RegistrationCategory{}).
			Where("event_id = ? AND sort_order = ?", cat.EventID, cat.SortOrder).
			Count(&count)
		if count > 0 {
			logf("Category %d already exists for event %d", cat.SortOrder, cat.EventID)
			continue
		}
		if err := models.DB.Create(&cat).Error; err != nil {
			logf("Failed to create category: %v", err)
		} else {
			logf("Created category %d for event %d", cat.SortOrder, cat.EventID)
		}
	}
}

func seedPosts(logf func(string, ...interface{})) {
	now := time.Now()
	posts := []models.Post{
		{
			Slug: "chamada-de-trabalhos-2025",
			Type: constants.PostTypeNotice,
			TitleJSON: models.JSON(map[string]interface{}{
				"pt-BR": "Chamada de trabalhos aberta",
				"en-US": "Call for papers open",
			}),
			SummaryJSON: models.JSON(map[string]interface{}{
				"pt-BR": "Submissões abertas até 30 de novembro.",
				"en-US": "Submissions open until November 30.",
			}),
			ContentJSON: models.JSON(map[string]interface{}{
				"pt-BR": "As submissões de trabalhos científicos para o III CIVENI 2025 estão abertas até 30 de novembro.",
				"en-US": "Scientific paper submissions for III CIVENI 2025 are open until November 30.",
			}),
			IsPublished: true,
			PublishedAt: &now,
		},
	}

	for _, post := range posts {
		var existing models.Post
		if err := models.DB.Where("slug = ?", post.Slug).First(&existing).Error; err == nil {
			logf("Post already exists: %s", post.Slug)
			continue
		}
		if err := models.DB.Create(&post).Error; err != nil {
			logf("Failed to create post %s: %v", post.Slug, err)
		} else {
			logf("Created post: %s", post.Slug)
		}
	}
}

func seedBanners(logf func(string, ...interface{})) {
	banners := []models.Banner{
		{
			Name:     "Home hero 2025",
			Position: constants.BannerPositionHomeHero,
			TitleJSON: models.JSON(map[string]interface{}{
				"pt-BR": "III CIVENI 2025",
				"en-US": "III CIVENI 2025",
			}),
			Image:     "/uploads/banners/civeni-2025-hero.jpg",
			LinkType:  "event",
			LinkValue: "iii-civeni-2025",
			IsActive:  true,
			SortOrder: 1,
		},
	}

	for _, banner := range banners {
		var count int64
		models.DB.Model(&models.Banner{}).
			Where("position = ? AND sort_order = ?", banner.Position, banner.SortOrder).
			Count(&count)
		if count > 0 {
			logf("Banner already exists at %s/%d", banner.Position, banner.SortOrder)
			continue
		}
		if err := models.DB.Create(&banner).Error; err != nil {
			logf("Failed to create banner: %v", err)
		} else {
			logf("Created banner at %s/%d", banner.Position, banner.SortOrder)
		}
	}
}
