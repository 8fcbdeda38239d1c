// Package main equipment rental API.
//
// @title           lend API
// @version         1.0
// @description     equipment rental marketplace (catalog, smart search, on-chain identity and reputation).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <wallet session token>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/seniormugambe/lend/app/echoServer"
	equipmentctrl "github.com/seniormugambe/lend/app/echoServer/controller/equipment"
	identityctrl "github.com/seniormugambe/lend/app/echoServer/controller/identity"
	rentalctrl "github.com/seniormugambe/lend/app/echoServer/controller/rental"
	reputationctrl "github.com/seniormugambe/lend/app/echoServer/controller/reputation"
	searchctrl "github.com/seniormugambe/lend/app/echoServer/controller/search"
	walletctrl "github.com/seniormugambe/lend/app/echoServer/controller/wallet"
	"github.com/seniormugambe/lend/app/echoServer/validation"
	"github.com/seniormugambe/lend/config"
	"github.com/seniormugambe/lend/repository/kv"
	ledgerrepo "github.com/seniormugambe/lend/repository/ledger"
	equipmentsvc "github.com/seniormugambe/lend/service/equipment"
	identitysvc "github.com/seniormugambe/lend/service/identity"
	rentalsvc "github.com/seniormugambe/lend/service/rental"
	reputationsvc "github.com/seniormugambe/lend/service/reputation"
	walletsvc "github.com/seniormugambe/lend/service/wallet"
	"github.com/seniormugambe/lend/util/database"
	"github.com/seniormugambe/lend/util/metrics"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// persistence collaborator
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store init failed", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}

	// mock ledger collaborator
	latency := time.Duration(cfg.SimulatedLatencyMS) * time.Millisecond
	ledger := ledgerrepo.NewMock(cfg.HederaContractID, cfg.HederaNetwork, latency)

	// services
	ws := walletsvc.New(store, cfg.JWTSecret, cfg.HederaNetwork, latency)
	is := identitysvc.New(store, ledger, identitysvc.OnExisting(cfg.IdentityOnExisting))
	rps := reputationsvc.New(store, ledger)
	es := equipmentsvc.New(store, ledger)
	rs := rentalsvc.New(store, ledger)

	if err := es.Seed(ctx, equipmentsvc.DemoCatalog()); err != nil {
		log.Error("catalog seed failed", "err", err)
		os.Exit(1)
	}

	// controllers
	v := validator.New()
	walletC := &walletctrl.Controller{Svc: ws, Log: log}
	identityC := &identityctrl.Controller{Svc: is, V: v, Log: log}
	reputationC := &reputationctrl.Controller{Svc: rps, V: v, Log: log}
	equipmentC := &equipmentctrl.Controller{Svc: es, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	searchC := &searchctrl.Controller{Equipment: es, Rentals: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Wallet:     walletC,
		Identity:   identityC,
		Reputation: reputationC,
		Equipment:  equipmentC,
		Rental:     rentalC,
		Search:     searchC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "network", cfg.HederaNetwork, "store", cfg.StoreDriver, "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}

func openStore(ctx context.Context, cfg config.App) (kv.Store, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := database.Open(ctx, "pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := kv.EnsurePostgresSchema(ctx, db); err != nil {
			return nil, err
		}
		return kv.NewPostgres(db), nil
	case "memory":
		return kv.NewMemory(), nil
	default:
		db, err := database.Open(ctx, "sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := kv.EnsureSQLiteSchema(ctx, db); err != nil {
			return nil, err
		}
		return kv.NewSQLite(db), nil
	}
}
