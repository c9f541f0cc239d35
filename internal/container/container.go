package container

import (
	"log/slog"

	"github.com/meetapp/server/internal/config"
	"github.com/meetapp/server/internal/jobs"
	"github.com/meetapp/server/internal/models"
	"github.com/meetapp/server/internal/queue"
	"github.com/meetapp/server/internal/services"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Queue  *queue.Queue

	EmailService        *services.EmailService
	MeetingService      *services.MeetingService
	SubscriptionService *services.SubscriptionService
	BannerService       *services.BannerService
}

// NewContainer wires repositories, services, the job queue and its handlers.
func NewContainer(cfg *config.Config, logger *slog.Logger, db *gorm.DB) *Container {
	meetingRepo := models.NewMeetingRepo(db)
	subscriptionRepo := models.NewSubscriptionRepo(db)
	bannerRepo := models.NewBannerRepo(db)

	emailService := services.NewEmailService(
		cfg.ResendAPIKey, cfg.MailFrom, cfg.AppName, cfg.IsDevelopment(), logger,
	)

	q := queue.New(cfg.QueueSize, cfg.QueueWorkers, logger)
	q.Register(jobs.SubscriptionMailKey, jobs.SubscriptionMail(emailService))
	q.Register(jobs.CancellationMailKey, jobs.CancellationMail(emailService))

	meetingService := services.NewMeetingService(meetingRepo, q, logger, cfg.MeetingPageSize)
	subscriptionService := services.NewSubscriptionService(
		meetingRepo, subscriptionRepo, q, logger,
		cfg.SubscriptionPageSize, cfg.SubscriptionPageStride,
		cfg.SubscriptionCancelWindow,
	)
	bannerService := services.NewBannerService(meetingRepo, bannerRepo)

	return &Container{
		Config:              cfg,
		Logger:              logger,
		DB:                  db,
		Queue:               q,
		EmailService:        emailService,
		MeetingService:      meetingService,
		SubscriptionService: subscriptionService,
		BannerService:       bannerService,
	}
}
