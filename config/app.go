package config

type App struct {
	Port               string `env:"APP_PORT" default:"8080"`
	Env                string `env:"APP_ENV" default:"dev"`
	StoreDriver        string `env:"STORE_DRIVER" default:"sqlite"`
	DatabaseURL        string `env:"DATABASE_URL"`
	SQLitePath         string `env:"SQLITE_PATH" default:"lend.db"`
	JWTSecret          string `env:"JWT_SECRET" default:"local_dev_secret"`
	HederaNetwork      string `env:"HEDERA_NETWORK" default:"testnet"`
	HederaContractID   string `env:"HEDERA_CONTRACT_ID" default:"0.0.123456"`
	SimulatedLatencyMS int    `env:"SIMULATED_LATENCY_MS" default:"250"`
	IdentityOnExisting string `env:"IDENTITY_ON_EXISTING" default:"reject"`
}
