package usecase

import (
	"github.com/secretswap/router/domain"
)

// EstimateGasLimit returns a deterministic upper bound on the gas an
// execution may consume: baseGas + hops * perHopGas, capped at the
// configured protocol ceiling regardless of hop count.
func EstimateGasLimit(gas domain.GasConfig, hops int) uint64 {
	limit := gas.BaseGas + uint64(hops)*gas.PerHopGas
	if gas.MaxGasLimit > 0 && limit > gas.MaxGasLimit {
		return gas.MaxGasLimit
	}
	return limit
}
