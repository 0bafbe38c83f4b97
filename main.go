package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"clipstream/domain/dto"
	"clipstream/infrastructure/cache"
	"clipstream/infrastructure/configuration"
	"clipstream/infrastructure/logger"
	"clipstream/infrastructure/persistence"
	"clipstream/infrastructure/pubsub"
	"clipstream/infrastructure/realtime"
	httpHandler "clipstream/interfaces/http"
	"clipstream/server"
	"clipstream/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	catalogDb, err := persistence.NewCatalogDb()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to the catalog database")
		os.Exit(1)
	}

	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to the user database")
		os.Exit(1)
	}
	if err := persistence.EnsureUserSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed ensuring user schema")
	}

	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - view events will not be logged")
		mongoDb = nil
	}

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - engagement events disabled")
		pubSubClient = nil
	}

	redisClient, _ := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)

	userRepository := persistence.NewUserRepository(psqlDb)
	videoRepository := persistence.NewVideoRepository(catalogDb)
	campaignRepository := persistence.NewCampaignRepository(catalogDb)
	followRepository := persistence.NewFollowRepository(catalogDb)
	viewEventRepository := persistence.NewViewEventRepository(mongoDb)
	discoveryCache := cache.NewDiscoveryCache(redisClient)
	engagementPublisher := pubsub.NewEngagementPublisher(pubSubClient, configuration.C.Pubsub.Topic)

	userUsecase := usecase.NewUserUsecase(userRepository)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, viewEventRepository, engagementPublisher)
	campaignUsecase := usecase.NewCampaignUsecase(campaignRepository, configuration.C.Campaign.EndingSoonDays)
	discoveryUsecase := usecase.NewDiscoveryUsecase(videoRepository, followRepository, discoveryCache)
	socialUsecase := usecase.NewSocialUsecase(followRepository)

	// Announcement carousel: one global hub, one rotator. The rotator only
	// tracks the index; the current entry list lives here.
	announcementHub := realtime.NewAnnouncementHub()
	var announcementsMu sync.Mutex
	var announcements []dto.AnnouncementEntry

	rotationInterval := time.Duration(configuration.C.Campaign.RotationIntervalMs) * time.Millisecond
	rotator := realtime.NewRotator(rotationInterval, func(index int) {
		announcementHub.Broadcast(realtime.RotationEvent{Type: "rotate", Index: index})
	})
	defer rotator.Stop()

	refreshAnnouncements := func() {
		refreshCtx, cancelRefresh := context.WithTimeout(ctx, 10*time.Second)
		defer cancelRefresh()

		if n, err := campaignRepository.DeactivateExpired(refreshCtx); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to deactivate expired campaigns")
		} else if n > 0 {
			logger.GetLogger().WithField("count", n).Info("Deactivated expired campaigns")
		}

		entries, err := campaignUsecase.Announcements(refreshCtx, time.Now().UTC())
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Announcement refresh failed - keeping previous carousel")
			return
		}

		announcementsMu.Lock()
		changed := !sameAnnouncements(announcements, entries)
		announcements = entries
		announcementsMu.Unlock()

		if changed {
			rotator.Reset(len(entries))
			announcementHub.Broadcast(realtime.RotationEvent{Type: "refresh", Index: rotator.Index(), Entries: entries})
		}
	}
	refreshAnnouncements()

	g.Go(func() error {
		ticker := time.NewTicker(time.Duration(configuration.C.Campaign.RefreshSeconds) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				refreshAnnouncements()
			}
		}
	})

	userHandler := httpHandler.NewUserHandler(userUsecase)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase)
	campaignHandler := httpHandler.NewCampaignHandler(campaignUsecase, rotator)
	discoveryHandler := httpHandler.NewDiscoveryHandler(discoveryUsecase, socialUsecase)
	googleOAuthHandler := httpHandler.NewGoogleOAuthHandler(userUsecase)

	router := server.InitiateRouter(
		userHandler,
		videoHandler,
		campaignHandler,
		discoveryHandler,
		googleOAuthHandler,
		announcementHub,
		userRepository,
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// sameAnnouncements reports whether the carousel content is unchanged, so a
// refresh that recomputes identical entries does not restart the rotation.
func sameAnnouncements(a, b []dto.AnnouncementEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].CampaignID != b[i].CampaignID || a[i].Tag != b[i].Tag || a[i].DaysLeft != b[i].DaysLeft {
			return false
		}
	}
	return true
}
