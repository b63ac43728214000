package main

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	redsyncgoredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"movie-booking-service/config"
	bookinghandler "movie-booking-service/internal/module/booking/handler"
	bookingrepositories "movie-booking-service/internal/module/booking/repositories"
	bookingusecases "movie-booking-service/internal/module/booking/usecases"
	passhandler "movie-booking-service/internal/module/pass/handler"
	passrepositories "movie-booking-service/internal/module/pass/repositories"
	passusecases "movie-booking-service/internal/module/pass/usecases"
	showhandler "movie-booking-service/internal/module/show/handler"
	showrepositories "movie-booking-service/internal/module/show/repositories"
	showusecases "movie-booking-service/internal/module/show/usecases"
	wallethandler "movie-booking-service/internal/module/wallet/handler"
	walletrepositories "movie-booking-service/internal/module/wallet/repositories"
	walletusecases "movie-booking-service/internal/module/wallet/usecases"
	"movie-booking-service/internal/pkg/database"
	"movie-booking-service/internal/pkg/http"
	"movie-booking-service/internal/pkg/httpclient"
	log_internal "movie-booking-service/internal/pkg/log"
	"movie-booking-service/internal/pkg/messagestream"
	"movie-booking-service/internal/pkg/middleware"
	"movie-booking-service/internal/pkg/redis"
	"movie-booking-service/internal/pkg/scheduler"
	router "movie-booking-service/internal/route"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
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
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init distributed mutex
	rs := redsync.New(redsyncgoredis.NewPool(redisClient))

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
	}

	// init scheduler
	sched := scheduler.Scheduler{Log: logger}
	schedulerClient := sched.InitClient(&cfg.Redis)
	schedulerInspector := sched.InitInspector(&cfg.Redis)

	// repositories
	walletRepo := walletrepositories.New(db, logger)
	passRepo := passrepositories.New(db, logger, schedulerClient, schedulerInspector)
	showRepo := showrepositories.New(db, logger, schedulerClient)
	bookingRepo := bookingrepositories.New(db, logger, httpClient, schedulerClient, schedulerInspector, &cfg.UserService, &cfg.PaymentGateway)

	// usecases, wired bottom up so the orchestrator can reach the others
	walletUsecase := walletusecases.New(walletRepo, logger, publisher, rs, &cfg.Platform)
	passUsecase := passusecases.New(passRepo, logger)
	showUsecase := showusecases.New(showRepo, logger, publisher, walletUsecase, &cfg.Scheduler)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher, showUsecase, walletUsecase, passUsecase, &cfg.Scheduler, &cfg.Platform)

	middleware := middleware.Middleware{
		Log:  logZap,
		Repo: bookingRepo,
	}

	validator := validator.New()
	bookingHandler := bookinghandler.BookingHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}
	showHandler := showhandler.ShowHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   showUsecase,
	}
	walletHandler := wallethandler.WalletHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   walletUsecase,
	}
	passHandler := passhandler.PassHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   passUsecase,
	}

	// delayed job worker pool
	go sched.StartHandler(&cfg.Redis,
		[]string{
			scheduler.TypeStartShow,
			scheduler.TypeCompleteShow,
			scheduler.TypeReleaseExpiredSeats,
			scheduler.TypeCancelPendingBooking,
			scheduler.TypeExpireMoviePass,
			scheduler.TypeVendorPayout,
		},
		[]func(ctx context.Context, t *asynq.Task) error{
			showHandler.StartShow,
			showHandler.CompleteShow,
			showHandler.ReleaseExpiredSeats,
			bookingHandler.CancelPendingBooking,
			passHandler.ExpireMoviePass,
			walletHandler.VendorPayout,
		},
	)

	// monthly vendor payout
	go sched.StartPeriodic(&cfg.Redis,
		[]string{cfg.Scheduler.VendorPayoutCronSpec},
		[]string{scheduler.TypeVendorPayout},
	)

	if cfg.Scheduler.MonitoringEnabled {
		go sched.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringBindAddress)
	}

	var messageRouters []*message.Router

	paymentCallbackRouter, err := messagestream.NewRouter(publisher, "payment_callback_poisoned", "payment_callback_handler", "payment_callback", subscriber, bookingHandler.ConsumePaymentCallbackQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create payment_callback router", err)
	}

	messageRouters = append(messageRouters, paymentCallbackRouter)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &showHandler, &walletHandler, &passHandler, &middleware)

	return r, messageRouters

}
