package domain

// Config defines the config for the swap router service.
type Config struct {
	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	ChainID         string `mapstructure:"chain-id"`
	ChainLCDGateway string `mapstructure:"lcd-gateway-endpoint"`

	// Router encapsulates the router config.
	Router *RouterConfig `mapstructure:"router"`

	// Gas encapsulates the gas cost model and limit estimation config.
	Gas *GasConfig `mapstructure:"gas"`

	// Pools encapsulates the pools config.
	Pools *PoolsConfig `mapstructure:"pools"`

	// Tokens is the token registry loaded at startup.
	Tokens []Token `mapstructure:"tokens"`
}

// RouterConfig defines the config for the routing engine.
type RouterConfig struct {
	// MaxHops bounds path enumeration: no candidate path traverses more
	// pools than this.
	MaxHops int `mapstructure:"max-hops"`

	// RouterContractAddress is the on-chain multi-hop router. Required
	// for any path with more than one hop.
	RouterContractAddress string `mapstructure:"router-contract-address"`
	RouterCodeHash        string `mapstructure:"router-code-hash"`
}

// GasConfig defines the flat gas cost model used for quoting and the
// gas limit estimation used for execution.
type GasConfig struct {
	// DirectSwapGas is the per-hop quote charge for a single-pool path.
	DirectSwapGas uint64 `mapstructure:"direct-swap-gas"`
	// RouterHopGas is the per-hop quote charge for routed paths. Higher
	// than DirectSwapGas to reflect routed execution overhead.
	RouterHopGas uint64 `mapstructure:"router-hop-gas"`

	// BaseGas and PerHopGas drive the execution gas limit estimate.
	BaseGas   uint64 `mapstructure:"base-gas"`
	PerHopGas uint64 `mapstructure:"per-hop-gas"`
	// MaxGasLimit is the protocol ceiling the estimate never exceeds.
	MaxGasLimit uint64 `mapstructure:"max-gas-limit"`
}

// QuoteGasCost returns the informational gas cost of a path with the
// given hop count: a flat per-hop charge, higher for routed paths.
func (g GasConfig) QuoteGasCost(hops int) uint64 {
	if hops <= 0 {
		return 0
	}
	if hops == 1 {
		return g.DirectSwapGas
	}
	return g.RouterHopGas * uint64(hops)
}

// PoolsConfig defines the config for pool snapshot fetching.
type PoolsConfig struct {
	// Pairs is the set of pair contracts the router may traverse.
	Pairs []PairConfig `mapstructure:"pairs"`
	// SnapshotCacheExpiryMs is the TTL of cached reserve snapshots.
	// Zero disables caching.
	SnapshotCacheExpiryMs int `mapstructure:"snapshot-cache-expiry-ms"`
}

// PairConfig is the registry entry for one pair contract.
type PairConfig struct {
	Address  string `mapstructure:"address"`
	CodeHash string `mapstructure:"code-hash"`
	// Fee is the LP fee rate as a decimal string, e.g. "0.003".
	Fee string `mapstructure:"fee"`
}
