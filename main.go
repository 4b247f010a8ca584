package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/audit"
	"youtube-companion/infrastructure/cache"
	youtubeclient "youtube-companion/infrastructure/clients/youtube"
	"youtube-companion/infrastructure/configuration"
	"youtube-companion/infrastructure/logger"
	"youtube-companion/infrastructure/persistence"
	"youtube-companion/infrastructure/pubsub"
	"youtube-companion/infrastructure/realtime"
	"youtube-companion/infrastructure/servicebus"
	"youtube-companion/infrastructure/session"
	httpHandler "youtube-companion/interfaces/http"
	"youtube-companion/server"
	"youtube-companion/usecase"

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
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// OS env still has precedence over these files.
	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.Reload()
	cfg := configuration.C
	logger.Configure(os.Getenv("ENV"), os.Getenv("LOG_TO_FILE") == "true", cfg.Logger.Level)

	db, err := persistence.InitiateDatabase(cfg.Database)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Database initialization failed")
		os.Exit(1)
	}
	defer db.Close()
	repos := persistence.NewRepositories(db, cfg.Database.Vendor)

	// Audit sinks are optional; each constructor returns nil when its
	// integration is not configured.
	eventHub := realtime.NewEventHub()
	sinks := []repository.IEventSink{eventHub}

	pubSubClient, err := pubsub.NewPubSub(ctx, cfg.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - continuing without event publishing")
	} else if pubSubClient != nil {
		defer pubSubClient.Close()
		publisher := pubsub.NewEventPublisher(pubSubClient, cfg.Pubsub.TopicID)
		sinks = append(sinks, publisher)
		if p, ok := publisher.(*pubsub.EventPublisher); ok {
			defer p.Stop()
		}
	}

	azServiceBusClient, err := servicebus.NewServiceBus(ctx, cfg.ServiceBus.Namespace)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without Service Bus features")
	} else if azServiceBusClient != nil {
		defer azServiceBusClient.Close(context.Background())
		sinks = append(sinks, servicebus.NewEventSender(azServiceBusClient, cfg.ServiceBus.QueueName))
	}

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", cfg.RedisClient.Host, cfg.RedisClient.Port),
		cfg.RedisClient.Username,
		cfg.RedisClient.Password,
		cfg.RedisClient.DB,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - user info will not be cached")
		redisClient = nil
	} else if redisClient != nil {
		defer redisClient.Close()
		logger.GetLogger().Info("Redis client initialized successfully.")
	}

	eventLogger := audit.NewEventLogger(repos.Events, sinks...)
	tokenStore := session.NewFileTokenStore(cfg.YouTube.TokenPath)

	youtubeConfig := youtubeclient.ConfigFrom(cfg.YouTube)
	provider := youtubeclient.NewProvider(youtubeConfig, tokenStore)
	logger.GetLogger().WithFields(map[string]interface{}{
		"clientIDSet":  youtubeConfig.ClientID != "",
		"hasAPIKey":    youtubeConfig.APIKey != "",
		"channelIDSet": youtubeConfig.ChannelID != "",
		"loggedIn":     tokenStore.Load().Authenticated(),
		"redirectURL":  youtubeConfig.RedirectURL,
	}).Info("Loaded YouTube configuration state")

	videoUsecase := usecase.NewVideoUsecase(provider, repos.Videos, repos.Comments, eventLogger)
	noteUsecase := usecase.NewNoteUsecase(repos.Notes, eventLogger)
	authUsecase := usecase.NewAuthUsecase(
		youtubeConfig.OAuthConfig(),
		cfg.App.SecretKey,
		tokenStore,
		provider,
		cache.NewUserInfoCache(redisClient),
		eventLogger,
	)
	eventUsecase := usecase.NewEventUsecase(repos.Events)

	router := server.InitiateRouter(cfg.App.FrontendURL, tokenStore, server.Handlers{
		Video:       httpHandler.NewVideoHandler(videoUsecase),
		Note:        httpHandler.NewNoteHandler(noteUsecase),
		Auth:        httpHandler.NewAuthHandler(authUsecase, cfg.App.FrontendURL),
		Event:       httpHandler.NewEventHandler(eventUsecase),
		EventStream: eventHub.Serve,
	})

	app := cfg.App
	logger.GetLogger().WithFields(map[string]interface{}{"port": app.Port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", app.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		if app.TLSEnabled {
			if app.TLSCertFile == "" || app.TLSKeyFile == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
			} else {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": app.TLSCertFile, "key": app.TLSKeyFile}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
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

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
