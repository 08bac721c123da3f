package main

import (
	"context"
	"log"

	"callbooking-service/config"
	adminhandler "callbooking-service/internal/module/admin/handler"
	adminrepositories "callbooking-service/internal/module/admin/repositories"
	adminusecases "callbooking-service/internal/module/admin/usecases"
	bookinghandler "callbooking-service/internal/module/booking/handler"
	bookingrepositories "callbooking-service/internal/module/booking/repositories"
	bookingusecases "callbooking-service/internal/module/booking/usecases"
	notificationhandler "callbooking-service/internal/module/notification/handler"
	notificationrepositories "callbooking-service/internal/module/notification/repositories"
	notificationusecases "callbooking-service/internal/module/notification/usecases"
	paymenthandler "callbooking-service/internal/module/payment/handler"
	paymentrepositories "callbooking-service/internal/module/payment/repositories"
	paymentusecases "callbooking-service/internal/module/payment/usecases"
	slothandler "callbooking-service/internal/module/slot/handler"
	slotrepositories "callbooking-service/internal/module/slot/repositories"
	slotusecases "callbooking-service/internal/module/slot/usecases"
	userhandler "callbooking-service/internal/module/user/handler"
	userrepositories "callbooking-service/internal/module/user/repositories"
	userusecases "callbooking-service/internal/module/user/usecases"
	"callbooking-service/internal/pkg/database"
	"callbooking-service/internal/pkg/http"
	"callbooking-service/internal/pkg/httpclient"
	logpkg "callbooking-service/internal/pkg/log"
	"callbooking-service/internal/pkg/mailer"
	"callbooking-service/internal/pkg/messagestream"
	"callbooking-service/internal/pkg/middleware"
	"callbooking-service/internal/pkg/paymentprovider"
	"callbooking-service/internal/pkg/redis"
	"callbooking-service/internal/pkg/scheduler"
	router "callbooking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logger := logpkg.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init payment provider
	provider := paymentprovider.NewStripe(&cfg.Stripe)
	// init mailer
	smtpMailer := mailer.New(&cfg.Smtp)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create subscriber: " + err.Error())
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create publisher: " + err.Error())
	}

	// init slot expiry scheduler
	sched := scheduler.Scheduler{Log: logger}
	taskQueue := sched.InitClient(&cfg.Redis)

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleOauth.ClientID,
		ClientSecret: cfg.GoogleOauth.ClientSecret,
		RedirectURL:  cfg.GoogleOauth.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	validate := validator.New()

	userRepo := userrepositories.New(db, logger, redisClient, httpClient, &cfg.SmsGateway)
	userUsecase := userusecases.New(userRepo, logger, &cfg.Jwt, oauthCfg, &cfg.SmsGateway)
	userHandler := userhandler.UserHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   userUsecase,
	}

	slotRepo := slotrepositories.New(db, logger, taskQueue)
	slotUsecase := slotusecases.New(slotRepo, logger)
	slotHandler := slothandler.SlotHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   slotUsecase,
	}

	bookingRepo := bookingrepositories.New(db, logger, redisClient)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher, provider, &cfg.Booking)
	bookingHandler := bookinghandler.BookingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   bookingUsecase,
	}

	paymentRepo := paymentrepositories.New(db, logger)
	paymentUsecase := paymentusecases.New(paymentRepo, logger, publisher)
	paymentHandler := paymenthandler.PaymentHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   paymentUsecase,
		Provider:  provider,
	}

	adminRepo := adminrepositories.New(db, logger)
	adminUsecase := adminusecases.New(adminRepo, logger, publisher)
	adminHandler := adminhandler.AdminHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   adminUsecase,
	}

	notificationRepo := notificationrepositories.New(logger, smtpMailer, httpClient, &cfg.SmsGateway)
	notificationUsecase := notificationusecases.New(notificationRepo, logger)
	notificationHandler := notificationhandler.NotificationHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   notificationUsecase,
	}

	m := middleware.Middleware{
		Log:       logger,
		JwtSecret: cfg.Jwt.Secret,
	}

	var messageRouters []*message.Router

	notificationRouter, err := messagestream.NewRouter(publisher, "notification_poisoned", "notification_handler", "notification", subscriber, notificationHandler.ConsumeNotification)
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create notification router: " + err.Error())
	}
	messageRouters = append(messageRouters, notificationRouter)

	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeExpireSlot},
		[]func(ctx context.Context, t *asynq.Task) error{slotHandler.ExpireSlot},
	)
	go sched.StartMonitoring(&cfg.Redis, cfg.HttpServer.MonitoringPort)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &userHandler, &slotHandler, &bookingHandler, &paymentHandler, &adminHandler, &m)

	return r, messageRouters
}
