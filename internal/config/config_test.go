package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func setEnv(t *testing.T) {
	t.Setenv("PAYMENTS_FILE", "env-payments.json")
	t.Setenv("PRODUCTS_FILE", "env-products.json")
	t.Setenv("ORDERS_FILE", "env-orders.json")
	t.Setenv("LOG_LVL", "debug")
}

func TestNew(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-payments", "flag-payments.json",
		"-products", "flag-products.json",
		"-orders", "flag-orders.json",
		"-l", "error",
	}
	cfg := New()

	assert.Equal(t, "flag-payments.json", cfg.PaymentsFile)
	assert.Equal(t, "flag-products.json", cfg.ProductsFile)
	assert.Equal(t, "flag-orders.json", cfg.OrdersFile)
	assert.Equal(t, "error", cfg.LogLvl)
}

func TestSourceURLDefaultProtocol(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	t.Setenv("SOURCE_URL", "localhost:8083")

	cfg := New()

	assert.Equal(t, "http://localhost:8083", cfg.SourceURL)
}

func TestNewEnvOnly(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)

	cfg := New()

	assert.Equal(t, "env-payments.json", cfg.PaymentsFile)
	assert.Equal(t, "env-products.json", cfg.ProductsFile)
	assert.Equal(t, "env-orders.json", cfg.OrdersFile)
	assert.Equal(t, "debug", cfg.LogLvl)
}
