package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/trip-collab/gw-trip-wallet/internal/facades"
	"github.com/trip-collab/gw-trip-wallet/internal/handlers"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
	"github.com/trip-collab/gw-trip-wallet/internal/middlewares"
	"github.com/trip-collab/gw-trip-wallet/internal/repositories"
	"github.com/trip-collab/gw-trip-wallet/internal/services"
	"github.com/trip-collab/gw-trip-wallet/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	_ "github.com/trip-collab/gw-trip-wallet/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-trip-wallet API
// @version 1.0.0
// @description Microservice for group trip expense tracking, shared wallets and settlement
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		gwHost, gwPort,
		kafkaAddr, kafkaTopic,
		logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		gwHost, gwPort,
		kafkaAddr, kafkaTopic,
		logLevel,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, gRPC, Kafka and logging configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	gwHost, gwPort string,
	kafkaAddr, kafkaTopic string,
	logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// gRPC config
	gwHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	gwPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Kafka config (empty address disables event publishing)
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	return
}

// run initializes the logger, database, Redis, gRPC client, Kafka writer
// and HTTP server. It applies migrations, sets up routes and middleware,
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	gwHost, gwPort string,
	kafkaAddr, kafkaTopic string,
	logLevel string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Apply migrations
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("failed to apply migrations", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Connect to the exchange gRPC service
	grpcAddr := fmt.Sprintf("%s:%s", gwHost, gwPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Log.Errorw("failed to create gRPC client", "addr", grpcAddr, "error", err)
		return err
	}
	defer conn.Close()
	exchangeClient := pb.NewExchangeServiceClient(conn)

	fxCache := repositories.NewFxRateCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
	fxRates := facades.NewFxRateFacade(exchangeClient, fxCache)

	// Kafka writer for wallet transaction events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext

	tripReadRepo := repositories.NewTripReadRepository(db)
	tripWriteRepo := repositories.NewTripWriteRepository(db, txGetter)
	memberReadRepo := repositories.NewMemberReadRepository(db)
	memberWriteRepo := repositories.NewMemberWriteRepository(db, txGetter)
	expenseReadRepo := repositories.NewExpenseReadRepository(db)
	expenseWriteRepo := repositories.NewExpenseWriteRepository(db, txGetter)
	splitReadRepo := repositories.NewSplitReadRepository(db)
	splitWriteRepo := repositories.NewSplitWriteRepository(db, txGetter)
	walletReadRepo := repositories.NewSharedWalletReadRepository(db)
	walletWriteRepo := repositories.NewSharedWalletWriteRepository(db, txGetter)
	balanceRepo := repositories.NewWalletBalanceRepository(db, txGetter)
	txnReadRepo := repositories.NewWalletTransactionReadRepository(db)
	txnWriteRepo := repositories.NewWalletTransactionWriteRepository(db, txGetter)

	// Initialize services
	membership := services.NewMembershipValidator(memberReadRepo)
	calculator := services.NewSplitCalculator(membership)

	tripService := services.NewTripService(tripWriteRepo, walletWriteRepo)
	memberService := services.NewMemberService(memberReadRepo, memberWriteRepo)
	balanceService := services.NewBalanceService(tripReadRepo, memberReadRepo, expenseReadRepo, splitReadRepo)
	settlementService := services.NewSettlementService(balanceService)
	walletService := services.NewWalletService(
		walletReadRepo, walletWriteRepo, balanceRepo, balanceRepo,
		txnReadRepo, txnWriteRepo, fxRates, kafkaWriter)
	expenseService := services.NewExpenseService(
		tripReadRepo, membership, expenseReadRepo, expenseWriteRepo,
		splitReadRepo, splitWriteRepo, calculator, walletService, fxRates)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		r.Post("/trips", handlers.NewCreateTripHandler(tripService))

		r.Route("/trips/{tripId}", func(r chi.Router) {
			r.Post("/members", handlers.NewCreateMemberHandler(memberService))
			r.Get("/members", handlers.NewListMembersHandler(memberService))
			r.Patch("/members/{memberId}", handlers.NewUpdateMemberHandler(memberService))

			r.Post("/expenses", handlers.NewCreateExpenseHandler(expenseService))
			r.Get("/expenses", handlers.NewListExpensesHandler(expenseService))
			r.Get("/expenses/{expenseId}", handlers.NewGetExpenseHandler(expenseService))
			r.Put("/expenses/{expenseId}", handlers.NewUpdateExpenseHandler(expenseService))
			r.Delete("/expenses/{expenseId}", handlers.NewDeleteExpenseHandler(expenseService))
			r.Post("/expenses/{expenseId}/move", handlers.NewMoveExpenseHandler(expenseService))

			r.Get("/summary", handlers.NewTripSummaryHandler(balanceService))
			r.Get("/settlements", handlers.NewSettlementsHandler(settlementService))

			r.Get("/wallet", handlers.NewWalletSummaryHandler(walletService))
			r.Post("/wallet/deposit", handlers.NewWalletDepositHandler(walletService))
			r.Post("/wallet/exchange", handlers.NewWalletExchangeHandler(walletService))
			r.Get("/wallet/transactions", handlers.NewWalletTransactionsHandler(walletService))
			r.Get("/wallet/transactions/{transactionId}", handlers.NewWalletTransactionHandler(walletService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
