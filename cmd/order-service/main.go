package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/silkroute/order-tracking-service/internal/config"
	"github.com/silkroute/order-tracking-service/internal/delivery/httpapi"
	"github.com/silkroute/order-tracking-service/internal/delivery/ws"
	"github.com/silkroute/order-tracking-service/internal/domain"
	publisher "github.com/silkroute/order-tracking-service/internal/infrastructure/kafka"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/logger"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/metrics"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/migrate"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/repository"
	"github.com/silkroute/order-tracking-service/internal/usecase/auth"
	"github.com/silkroute/order-tracking-service/internal/usecase/notification"
	usecase "github.com/silkroute/order-tracking-service/internal/usecase/order"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zlog, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath, zlog); err != nil {
			zlog.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)
	sub := publisher.NewDefaultKafkaSubscriber(brokers)

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	notificationRepo := repository.NewDefaultNotificationRepository(db)

	trackerMetrics := metrics.NewTrackerMetrics()

	// Realtime hub and notification dispatcher
	hub := ws.NewHub(trackerMetrics, zlog)
	dispatcher := notification.NewDispatcher(
		orderRepo,
		notificationRepo,
		hub,
		pub,
		cfg.KafkaService.Topic,
		trackerMetrics,
		zlog,
	)

	// Init usecases
	orderUsecase := usecase.NewDefaultOrderUsecase(orderRepo, dispatcher, trackerMetrics, zlog)
	authUsecase := auth.NewDefaultAuthUsecase(userRepo, []byte(cfg.JWT.Secret), cfg.JWT.TTL)

	wsHandler := ws.NewHandler(hub, userRepo, zlog)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		AuthUsecase:   authUsecase,
		OrderUsecase:  orderUsecase,
		Users:         userRepo,
		Notifications: notificationRepo,
		WSHandler:     wsHandler,
		Metrics:       trackerMetrics,
		Log:           zlog,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mirror published step events into the service log for auditing.
	go consumeStepEvents(ctx, sub, cfg.KafkaService.Topic, zlog)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func consumeStepEvents(ctx context.Context, sub domain.SubscriberPort, topic string, zlog *zap.Logger) {
	msgs, err := sub.Subscribe(ctx, topic, "order-tracker-audit")
	if err != nil {
		zlog.Error("failed to subscribe to step events", zap.Error(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var event publisher.StepEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				zlog.Warn("unreadable step event", zap.Error(err))
				continue
			}
			zlog.Info("step event committed",
				zap.String("event_id", event.EventID),
				zap.Uint("order_id", event.OrderID),
				zap.Int("step_number", event.StepNumber),
				zap.String("step_name", event.StepName),
			)
		}
	}
}
