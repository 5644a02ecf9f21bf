package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/adapter/auth"
	"github.com/vitrineshop/vitrine/internal/adapter/client/gateway"
	"github.com/vitrineshop/vitrine/internal/adapter/client/mailer"
	"github.com/vitrineshop/vitrine/internal/adapter/config"
	"github.com/vitrineshop/vitrine/internal/adapter/handler/http"
	"github.com/vitrineshop/vitrine/internal/adapter/logger"
	"github.com/vitrineshop/vitrine/internal/adapter/metrics"
	"github.com/vitrineshop/vitrine/internal/adapter/storage"
	"github.com/vitrineshop/vitrine/internal/adapter/storage/repository"
	"github.com/vitrineshop/vitrine/internal/core/service"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}
	watch, err := repository.NewOrderWatch(repo, conf.Feed.PollInterval, log.Named("OrderWatch"))
	if err != nil {
		log.Error("order watch creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	payments, err := gateway.NewClient(conf.Gateway, log.Named("Gateway"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}
	mail, err := mailer.New(conf.Mailer, log.Named("Mailer"))
	if err != nil {
		log.Error("mailer client creating error", zap.Error(err))
		return
	}

	mtr := metrics.MustNewMetrics(prometheus.DefaultRegisterer)

	svc, err := service.NewService(repo, payments, payments, mtr, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	payments.RunStatusWorkers(ctx, svc, 3)
	err = gateway.RecallPendingPayments(ctx, repo, payments)
	if err != nil {
		log.Error("payment recall error", zap.Error(err))
		return
	}

	feedHandler, err := http.NewFeedHandler(log.Named("Feed handler"))
	if err != nil {
		log.Error("feed handler creating error", zap.Error(err))
		return
	}

	feed, err := service.NewOrderFeed(watch, []service.FeedSink{
		{Name: "email", Notifier: mail},
		{Name: "feed", Notifier: feedHandler},
	}, mtr, log.Named("OrderFeed"), conf.Feed.WatchLimit)
	if err != nil {
		log.Error("order feed creating error", zap.Error(err))
		return
	}
	go func() {
		if err := feed.Run(ctx); err != nil {
			log.Error("order feed error", zap.Error(err))
		}
	}()

	checkoutHandler, err := http.NewCheckoutHandler(svc, log.Named("Checkout handler"))
	if err != nil {
		log.Error("checkout handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, mail, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	adminHandler, err := http.NewAdminHandler(conf.Auth, tokenService, log.Named("Admin handler"))
	if err != nil {
		log.Error("admin handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, checkoutHandler, orderHandler, adminHandler, feedHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
