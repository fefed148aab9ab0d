package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/nspcc-dev/bank-contract/deploy"
	"github.com/nspcc-dev/bank-contract/dispatch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to the genesis YAML configuration")
	scriptPath := flag.String("script", "-", "Path to the operation script ('-' for stdin)")
	metricsAddr := flag.String("metrics", "", "Optional listen address for Prometheus metrics")

	flag.Parse()

	if *configPath == "" {
		log.Fatal("missing genesis configuration")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is irrelevant on exit

	if err := run(*configPath, *scriptPath, *metricsAddr, logger); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, scriptPath, metricsAddr string, logger *zap.Logger) error {
	cfg, err := deploy.LoadConfig(configPath)
	if err != nil {
		return err
	}

	contract, err := deploy.Deploy(cfg, logger)
	if err != nil {
		return fmt.Errorf("deploy: %w", err)
	}

	reg := prometheus.NewRegistry()
	d, err := dispatch.New(contract, logger, reg)
	if err != nil {
		return fmt.Errorf("init dispatcher: %w", err)
	}

	if metricsAddr != "" {
		go serveMetrics(metricsAddr, reg, logger)
	}

	in := os.Stdin
	if scriptPath != "-" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	return runScript(bufio.NewScanner(in), d, os.Stdout)
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) {
	h := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	if err := http.ListenAndServe(addr, h); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
