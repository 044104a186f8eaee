package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	PaymentsFile string `env:"PAYMENTS_FILE" envDefault:"payments.json"`
	ProductsFile string `env:"PRODUCTS_FILE" envDefault:"products.json"`
	OrdersFile   string `env:"ORDERS_FILE"   envDefault:"orders.json"`
	SourceURL    string `env:"SOURCE_URL"    envDefault:""`
	LogLvl       string `env:"LOG_LVL"       envDefault:"info"`
}

func New() *Config {
	cfg := &Config{}

	godotenv.Load()
	env.Parse(cfg)

	flag.StringVar(&cfg.PaymentsFile, "payments", cfg.PaymentsFile, "path to the payments dataset")
	flag.StringVar(&cfg.ProductsFile, "products", cfg.ProductsFile, "path to the products dataset")
	flag.StringVar(&cfg.OrdersFile, "orders", cfg.OrdersFile, "path to the orders dataset")
	flag.StringVar(&cfg.SourceURL, "source", cfg.SourceURL, "base URL to fetch the datasets from instead of files")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if cfg.SourceURL != "" && !strings.HasPrefix(cfg.SourceURL, "http://") && !strings.HasPrefix(cfg.SourceURL, "https://") {
		cfg.SourceURL = "http://" + cfg.SourceURL
	}

	return cfg
}
