package main

import (
	"github.com/secretswap/router/domain"
)

// DefaultConfig defines the default config for the swap router service.
var DefaultConfig = domain.Config{
	ServerAddress: ":9095",

	LoggerFilename:     "swaprouter.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	ChainID:         "secret-4",
	ChainLCDGateway: "http://localhost:1317",

	Router: &domain.RouterConfig{
		MaxHops: 4,
	},

	Gas: &domain.GasConfig{
		DirectSwapGas: 400_000,
		RouterHopGas:  600_000,

		BaseGas:     250_000,
		PerHopGas:   350_000,
		MaxGasLimit: 3_000_000,
	},

	Pools: &domain.PoolsConfig{
		SnapshotCacheExpiryMs: 2000,
	},
}
