package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/askarbek-dev/burger-shop/internal/adapter/logger"
	"github.com/askarbek-dev/burger-shop/internal/adapter/memory"
	"github.com/askarbek-dev/burger-shop/internal/adapter/postgres"
	"github.com/askarbek-dev/burger-shop/internal/adapter/rabbitmq"
	"github.com/askarbek-dev/burger-shop/internal/adapter/wallet"
	"github.com/askarbek-dev/burger-shop/internal/app/shop"
	"github.com/askarbek-dev/burger-shop/internal/config"
	"github.com/askarbek-dev/burger-shop/internal/domain"
	"github.com/askarbek-dev/burger-shop/internal/interfaces"

	httpAdapter "github.com/askarbek-dev/burger-shop/internal/adapter/http"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	ledgerKind := flag.String("ledger", "postgres", "Ledger backend: postgres or memory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	ctx := context.Background()

	lgr := logger.New("burger-shop")

	// Ledger backend
	var ledger interfaces.OrderLedger
	switch *ledgerKind {
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()

		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatalf("Failed to migrate ledger schema: %v", err)
		}
		ledger = postgres.NewLedger(db)

		lgr.Info("db_connected", "Connected to PostgreSQL database", "", map[string]interface{}{
			"host": cfg.Database.Host,
			"db":   cfg.Database.Database,
		})

	case "memory":
		ledger = memory.NewLedger()
		lgr.Info("memory_ledger", "Using in-memory ledger", "", nil)

	default:
		log.Fatalf("Invalid ledger backend: %s", *ledgerKind)
	}

	// Payment notifications
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	publisher := rabbitmq.NewPublisher(mqConn)

	// Settlement backend
	bank := wallet.New()
	owner := domain.AccountID(cfg.Shop.OwnerAccount)
	bank.Register(owner, 0)

	// Workflow service
	shopService := shop.NewService(owner, ledger, bank, publisher, lgr)

	// HTTP surface
	shopHandler := httpAdapter.NewShopHandler(shopService, lgr)
	accountHandler := httpAdapter.NewAccountHandler(bank, lgr)

	mux := http.NewServeMux()
	mux.HandleFunc("/orders", shopHandler.HandleOrders)
	mux.HandleFunc("/orders/", shopHandler.GetSingleOrder)
	mux.HandleFunc("/accounts", accountHandler.OpenAccount)

	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Burger Shop started on port %d", cfg.HTTP.Port), "", map[string]interface{}{
		"port":   cfg.HTTP.Port,
		"ledger": *ledgerKind,
	})

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down Burger Shop", "", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "", nil, err)
	}
}
