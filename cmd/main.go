package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/muhammadheryan/booking-capacity/application/auth"
	bookingapp "github.com/muhammadheryan/booking-capacity/application/booking"
	capacityapp "github.com/muhammadheryan/booking-capacity/application/capacity"
	"github.com/muhammadheryan/booking-capacity/application/globalslot"
	"github.com/muhammadheryan/booking-capacity/application/propagation"
	releaseapp "github.com/muhammadheryan/booking-capacity/application/release"
	reservationapp "github.com/muhammadheryan/booking-capacity/application/reservation"
	"github.com/muhammadheryan/booking-capacity/application/resolver"
	sanityapp "github.com/muhammadheryan/booking-capacity/application/sanity"
	"github.com/muhammadheryan/booking-capacity/cmd/config"
	redisclient "github.com/muhammadheryan/booking-capacity/cmd/redis"
	_ "github.com/muhammadheryan/booking-capacity/docs"
	bookingRepo "github.com/muhammadheryan/booking-capacity/repository/booking"
	capacityRepo "github.com/muhammadheryan/booking-capacity/repository/capacity"
	idempotencyRepo "github.com/muhammadheryan/booking-capacity/repository/idempotency"
	linkRepo "github.com/muhammadheryan/booking-capacity/repository/link"
	peerHoldRepo "github.com/muhammadheryan/booking-capacity/repository/peerhold"
	productRepo "github.com/muhammadheryan/booking-capacity/repository/product"
	redisRepo "github.com/muhammadheryan/booking-capacity/repository/redis"
	txRepo "github.com/muhammadheryan/booking-capacity/repository/tx"
	"github.com/muhammadheryan/booking-capacity/thirdparty/rabbitmq"
	"github.com/muhammadheryan/booking-capacity/transport"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	validatorx "github.com/muhammadheryan/booking-capacity/utils/validator"
	"go.uber.org/zap"
)

// @title BOOKING CAPACITY API
// @version 1.0
// @description Booking capacity ledger API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if err := cfg.LoadBookingSettings(os.Getenv("BOOKING_SETTINGS_FILE")); err != nil {
		logger.Fatal("err load booking settings", zap.Error(err))
	}
	validatorx.Init()

	logger.Info("Starting server",
		zap.String("env", cfg.Environment),
		zap.Bool("global_timeslot", cfg.Booking.GlobalTimeslot),
	)

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// RabbitMQ carries the global slot tasks; the publisher redials on demand
	// and tasks it cannot queue are applied inline
	publisher := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	defer publisher.Close()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	CapacityRepo := capacityRepo.NewCapacityRepository(db)
	LinkRepo := linkRepo.NewLinkRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	IdempotencyRepo := idempotencyRepo.NewIdempotencyRepository(db)
	PeerHoldRepo := peerHoldRepo.NewPeerHoldRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	Resolver := resolver.NewResolver(CapacityRepo)
	Propagator := propagation.NewPropagator(CapacityRepo, Resolver)
	GlobalSlotApp := globalslot.NewGlobalSlotApp(cfg, TxRepo, CapacityRepo, ProductRepo, IdempotencyRepo, PeerHoldRepo, RedisRepo, Propagator, publisher)
	ReservationApp := reservationapp.NewReservationApp(TxRepo, CapacityRepo, LinkRepo, Propagator, GlobalSlotApp)
	ReleaseApp := releaseapp.NewReleaseApp(TxRepo, CapacityRepo, LinkRepo, BookingRepo, ProductRepo, Resolver, Propagator, GlobalSlotApp)
	SanityApp := sanityapp.NewSanityApp(TxRepo, CapacityRepo, LinkRepo, BookingRepo, ProductRepo, Resolver, Propagator)
	BookingApp := bookingapp.NewBookingApp(TxRepo, BookingRepo, ProductRepo, ReservationApp, ReleaseApp, SanityApp, GlobalSlotApp, publisher)
	CapacityApp := capacityapp.NewCapacityApp(TxRepo, CapacityRepo, LinkRepo, ProductRepo, Resolver, SanityApp)
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, GlobalSlotApp).Start(ctx)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		BookingApp:  BookingApp,
		SanityApp:   SanityApp,
		CapacityApp: CapacityApp,
		AuthApp:     AuthApp,
	}, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
}
