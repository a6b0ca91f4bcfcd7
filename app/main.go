package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"

	"github.com/secretswap/router/chain"
	"github.com/secretswap/router/domain"
	swaplog "github.com/secretswap/router/log"
	poolsusecase "github.com/secretswap/router/pools/usecase"
	routerhttp "github.com/secretswap/router/router/delivery/http"
	routerusecase "github.com/secretswap/router/router/usecase"
	tokensusecase "github.com/secretswap/router/tokens/usecase"
)

func main() {
	configPath := flag.String("config", "config.json", "config file location")

	// Parse the command-line arguments
	flag.Parse()

	fmt.Println("configPath", *configPath)

	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	// Unmarshal the config into your Config struct
	config := DefaultConfig
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println("Error unmarshalling config:", err)
		return
	}

	logger, err := swaplog.NewLogger(config.LoggerIsProduction, config.LoggerFilename, config.LoggerLevel)
	if err != nil {
		panic(fmt.Errorf("error while creating logger: %w", err))
	}

	pairs, err := parsePairs(config.Pools.Pairs)
	if err != nil {
		log.Fatal(err)
	}

	chainClient := chain.NewClient(config.ChainLCDGateway)

	tokensUsecase := tokensusecase.NewTokensUsecase(config.Tokens)

	snapshotExpiry := time.Duration(config.Pools.SnapshotCacheExpiryMs) * time.Millisecond
	poolsUsecase := poolsusecase.NewPoolsUsecase(chainClient, tokensUsecase, pairs, snapshotExpiry, nil, logger)

	routerUsecase := routerusecase.NewRouterUsecase(poolsUsecase, *config.Router, *config.Gas, logger)

	// Handle SIGINT and SIGTERM signals to initiate shutdown
	exitChan := make(chan os.Signal, 1)
	signal.Notify(exitChan, os.Interrupt, syscall.SIGTERM)

	e := echo.New()
	e.HideBanner = true

	routerhttp.NewRouterHandler(e, routerUsecase, logger)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		<-exitChan
		os.Exit(0)
	}()

	if err := e.Start(config.ServerAddress); err != nil {
		log.Fatal(err)
	}
}

// parsePairs converts the configured pair entries into registry
// metadata, parsing the fee rate strings.
func parsePairs(pairConfigs []domain.PairConfig) ([]domain.PairMetadata, error) {
	pairs := make([]domain.PairMetadata, 0, len(pairConfigs))
	for _, pairConfig := range pairConfigs {
		fee, err := osmomath.NewDecFromStr(pairConfig.Fee)
		if err != nil {
			return nil, fmt.Errorf("invalid fee %q for pair %s: %w", pairConfig.Fee, pairConfig.Address, err)
		}

		pairs = append(pairs, domain.PairMetadata{
			Address:  pairConfig.Address,
			CodeHash: pairConfig.CodeHash,
			Fee:      fee,
		})
	}
	return pairs, nil
}
