package main

import (
	"context"
	"log"
	"time"

	"turf-booking-service/config"
	bookingHandler "turf-booking-service/internal/module/booking/handler"
	bookingRepositories "turf-booking-service/internal/module/booking/repositories"
	bookingUsecases "turf-booking-service/internal/module/booking/usecases"
	memberHandler "turf-booking-service/internal/module/member/handler"
	memberRepositories "turf-booking-service/internal/module/member/repositories"
	memberUsecases "turf-booking-service/internal/module/member/usecases"
	paymentHandler "turf-booking-service/internal/module/payment/handler"
	paymentRepositories "turf-booking-service/internal/module/payment/repositories"
	paymentUsecases "turf-booking-service/internal/module/payment/usecases"
	"turf-booking-service/internal/pkg/allocator"
	"turf-booking-service/internal/pkg/auth"
	"turf-booking-service/internal/pkg/database"
	"turf-booking-service/internal/pkg/gateway"
	"turf-booking-service/internal/pkg/http"
	"turf-booking-service/internal/pkg/httpclient"
	log_internal "turf-booking-service/internal/pkg/log"
	"turf-booking-service/internal/pkg/messagestream"
	"turf-booking-service/internal/pkg/middleware"
	"turf-booking-service/internal/pkg/notification"
	"turf-booking-service/internal/pkg/redis"
	"turf-booking-service/internal/pkg/scheduler"
	router "turf-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	svc := initService(cfg)
	defer svc.close()

	for _, router := range svc.messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start reconciliation workers and their dashboard
	go svc.scheduler.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeReconcileTransaction},
		[]func(ctx context.Context, t *asynq.Task) error{svc.paymentHandler.ReconcileTransaction},
	)
	go svc.scheduler.StartMonitoring(&cfg.Redis)

	// start http server
	if err := http.StartHttpServer(svc.app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout); err != nil {
		log.Printf("http server stopped: %v", err)
	}
}

type service struct {
	app            *fiber.App
	messageRouters []*message.Router
	scheduler      *scheduler.Scheduler
	paymentHandler *paymentHandler.PaymentHandler
	closers        []func() error
}

func (s *service) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			log.Printf("error close resource: %v", err)
		}
	}
}

func initService(cfg *config.Config) *service {
	svc := &service{}

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	httpLogger := log_internal.Setup()

	// init database
	db := database.GetConnection(&cfg.Database)
	svc.closers = append(svc.closers, db.Close)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	svc.closers = append(svc.closers, redisClient.Close)

	location, err := time.LoadLocation(cfg.Database.TimeZone)
	if err != nil {
		log.Fatalf("error load time zone %q: %v", cfg.Database.TimeZone, err)
	}

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	} else {
		svc.closers = append(svc.closers, publisher.Close)
	}

	// notifications go out through the queue and are delivered to telegram by the consumer
	var notifier *notification.Publisher
	if publisher != nil {
		notifier = notification.NewPublisher(publisher, cfg.MessageStream.NotificationTopic, logger)
	}

	// init scheduler
	svc.scheduler = &scheduler.Scheduler{Log: logger, Cfg: &cfg.Scheduler}
	asynqClient := svc.scheduler.InitClient(&cfg.Redis)
	svc.closers = append(svc.closers, asynqClient.Close)
	reconciler := scheduler.NewReconciler(asynqClient, cfg.Scheduler.MaxRetry)

	sequence := allocator.NewRedisSequence(redisClient)
	signer := auth.NewSigner(cfg.Session.Secret, cfg.Session.TTL)
	validate := validator.New()

	// booking
	bookingRepo := bookingRepositories.New(db, logger)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, location)

	// payment
	paymentRepo := paymentRepositories.New(db, logger)
	bookingIDs := allocator.New(allocator.BookingFormat, "seq:booking_id", paymentRepo.LastBookingID, sequence, logger)
	paymentUsecase := paymentUsecases.New(
		paymentRepo,
		gateway.New(httpClient, &cfg.Gateway),
		bookingIDs,
		notifier,
		reconciler,
		paymentUsecases.Settings{
			BaseURL:    cfg.App.BaseURL,
			Currency:   cfg.Gateway.Currency,
			RetryDelay: cfg.Scheduler.RetryDelay,
			Location:   location,
		},
		logger,
	)

	// member
	memberRepo := memberRepositories.New(db, logger)
	memberIDs := allocator.New(allocator.MemberFormat, "seq:member_id", memberRepo.LastMemberID, sequence, logger)
	memberUsecase := memberUsecases.New(memberRepo, memberIDs, signer, notifier, logger)

	m := middleware.Middleware{
		Log:        httpLogger,
		Signer:     signer,
		CookieName: cfg.Session.CookieName,
	}

	handlers := router.Handlers{
		Booking: &bookingHandler.BookingHandler{
			Log:     httpLogger,
			Usecase: bookingUsecase,
		},
		Payment: &paymentHandler.PaymentHandler{
			Log:        httpLogger,
			Validator:  validate,
			Usecase:    paymentUsecase,
			BaseURL:    cfg.App.BaseURL,
			Production: cfg.App.IsProduction(),
		},
		Member: &memberHandler.MemberHandler{
			Log:        httpLogger,
			Validator:  validate,
			Usecase:    memberUsecase,
			CookieName: cfg.Session.CookieName,
			Production: cfg.App.IsProduction(),
		},
	}
	svc.paymentHandler = handlers.Payment

	if publisher != nil && subscriber != nil {
		consumer := notification.Consumer{
			Sender: notification.NewTelegramSender(httpClient, &cfg.Telegram),
			Log:    logger,
		}
		notificationRouter, err := messagestream.NewRouter(publisher, cfg.MessageStream.PoisonedTopic, "notification_handler", cfg.MessageStream.NotificationTopic, subscriber, consumer.Handle)
		if err != nil {
			logger.Error(ctx, "Failed to create notification router", err)
		} else {
			svc.messageRouters = append(svc.messageRouters, notificationRouter)
		}
	}

	serverHttp := http.SetupHttpEngine(cfg.App.TrustedProxies)

	svc.app = router.Initialize(serverHttp, handlers, &m, cfg.App.RateLimitPerMinute)

	return svc
}
