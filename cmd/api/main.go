package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mongoadapter "github.com/vishwasri/techfest-backend/internal/adapters/mongo"
	"github.com/vishwasri/techfest-backend/internal/config"
	"github.com/vishwasri/techfest-backend/internal/forms"
	"github.com/vishwasri/techfest-backend/internal/gateway"
	httphandler "github.com/vishwasri/techfest-backend/internal/http"
	"github.com/vishwasri/techfest-backend/internal/observability"
	"github.com/vishwasri/techfest-backend/internal/payment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdown, err := observability.SetupOTel(context.Background(), cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to setup otel: %v", err)
	}
	defer shutdown()

	logger := observability.NewLogger()

	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	if err := mongoClient.Ping(context.Background(), nil); err != nil {
		log.Fatalf("failed to ping mongo: %v", err)
	}
	db := mongoClient.Database(cfg.MongoDB)

	store := mongoadapter.NewStore(db, logger)
	if err := store.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	gw := gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, logger)

	paymentSvc := payment.NewService(gw, store.Payments(), store.Audit(), logger, cfg.RazorpayKeySecret)
	formsSvc := forms.NewService(store.Forms(), logger)

	handlers := httphandler.NewHandlers(paymentSvc, formsSvc, logger)
	r := httphandler.SetupRouter(handlers, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	logger.Info("Server exiting")
}
