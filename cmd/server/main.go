package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Noshedme/vendismarket/internal/config"
	"github.com/Noshedme/vendismarket/internal/es"
	"github.com/Noshedme/vendismarket/internal/httpserver"
	"github.com/Noshedme/vendismarket/internal/logging"
	"github.com/Noshedme/vendismarket/internal/mykafka"
	"github.com/Noshedme/vendismarket/internal/repo"
	"github.com/Noshedme/vendismarket/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.DB_HOST, "DB_HOST")
	config.MustNonEmpty(configuration.JWT_SECRET, "JWT_SECRET")

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	db, err := config.InitDB(ctx, configuration)
	if err != nil {
		log.Fatalf("error de inicializacion de la base de datos: %v", err)
	}

	prod := mykafka.NewProducer(configuration.KAFKA_BROKERS)

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatal(err)
	}

	gormRepo := repo.NewGormRepo(db)

	cartSvc := &service.CartService{Repo: gormRepo}
	orderSvc := &service.OrderService{
		Repo:           gormRepo,
		DefaultStatus:  configuration.ORDER_DEFAULT_STATUS,
		DecrementStock: configuration.ORDER_STOCK_DECREMENT,
	}
	catalogSvc := &service.CatalogService{Repo: gormRepo, ES: esClient, ESIndex: configuration.ES_INDEX}
	userSvc := &service.UserService{Repo: gormRepo, JWTSecret: []byte(configuration.JWT_SECRET)}
	feedbackSvc := &service.FeedbackService{Repo: gormRepo}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	deps := httpserver.Deps{
		CartHandler:     &httpserver.CartHTTP{Svc: cartSvc, Producer: prod},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc, Producer: prod},
		CatalogHandler:  &httpserver.CatalogHTTP{Svc: catalogSvc, Producer: prod},
		UserHandler:     &httpserver.UserHTTP{Svc: userSvc, Producer: prod},
		FeedbackHandler: &httpserver.FeedbackHTTP{Svc: feedbackSvc},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
