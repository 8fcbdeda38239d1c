package config

import (
	"log/slog"
	"os"
	"strconv"
)

func Load() App {
	cfg := App{
		Port:               getenv("APP_PORT", "8080"),
		Env:                getenv("APP_ENV", "dev"),
		StoreDriver:        getenv("STORE_DRIVER", "sqlite"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SQLitePath:         getenv("SQLITE_PATH", "lend.db"),
		JWTSecret:          getenv("JWT_SECRET", "local_dev_secret"),
		HederaNetwork:      getenv("HEDERA_NETWORK", "testnet"),
		HederaContractID:   getenv("HEDERA_CONTRACT_ID", "0.0.123456"),
		SimulatedLatencyMS: getenvInt("SIMULATED_LATENCY_MS", 250),
		IdentityOnExisting: getenv("IDENTITY_ON_EXISTING", "reject"),
	}
	if cfg.StoreDriver == "postgres" && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = must("DATABASE_URL")
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("bad int env, using default", "key", k, "value", v)
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
