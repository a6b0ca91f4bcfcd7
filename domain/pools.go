package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// Reserve is one side of a pair's balances at snapshot time.
type Reserve struct {
	// Amount in raw base units.
	Amount osmomath.Int `json:"amount"`
	// Decimals is the display precision of the asset.
	Decimals int32 `json:"decimals"`
}

// IsZero returns true if the reserve amount is nil or zero.
func (r Reserve) IsZero() bool {
	return r.Amount.IsNil() || r.Amount.IsZero()
}

// PairMetadata is the static, registry-supplied description of a pair
// contract. Reserves are fetched separately per estimation.
type PairMetadata struct {
	Address  string       `mapstructure:"address" json:"address"`
	CodeHash string       `mapstructure:"code-hash" json:"code_hash"`
	Fee      osmomath.Dec `mapstructure:"-" json:"fee"`
}

// Pool is a point-in-time snapshot of a two-asset constant-product pair.
// It is constructed fresh for every estimation and never mutated.
type Pool struct {
	Address    string       `json:"address"`
	CodeHash   string       `json:"code_hash"`
	Fee        osmomath.Dec `json:"fee"`
	AssetInfos [2]AssetInfo `json:"asset_infos"`
	// Reserves keyed by AssetInfo.ID().
	Reserves map[string]Reserve `json:"reserves"`
}

// Validate returns an error if the snapshot is structurally broken:
// missing address, invalid asset infos, duplicated assets, or a reserve
// entry missing for either side. A zero reserve is valid here; it is
// rejected at simulation time instead so that the pool still shows up
// in path enumeration and fails as an infeasible hop.
func (p Pool) Validate() error {
	if p.Address == "" {
		return PoolMalformedError{PoolAddress: p.Address, Reason: "empty pair address"}
	}

	for _, asset := range p.AssetInfos {
		if err := asset.Validate(); err != nil {
			return PoolMalformedError{PoolAddress: p.Address, Reason: err.Error()}
		}
		if _, ok := p.Reserves[asset.ID()]; !ok {
			return PoolMalformedError{PoolAddress: p.Address, Reason: "missing reserve for asset " + asset.ID()}
		}
	}

	if p.AssetInfos[0].ID() == p.AssetInfos[1].ID() {
		return PoolMalformedError{PoolAddress: p.Address, Reason: "pair holds the same asset twice"}
	}

	if p.Fee.IsNil() || p.Fee.IsNegative() || p.Fee.GTE(osmomath.OneDec()) {
		return PoolMalformedError{PoolAddress: p.Address, Reason: "fee must be in [0, 1)"}
	}

	return nil
}

// HasAsset returns true if the pair holds the asset with the given ID.
func (p Pool) HasAsset(id string) bool {
	_, ok := p.Reserves[id]
	return ok
}

// GetReserve returns the reserve for the given asset ID.
func (p Pool) GetReserve(id string) (Reserve, error) {
	reserve, ok := p.Reserves[id]
	if !ok {
		return Reserve{}, AssetNotInPoolError{PoolAddress: p.Address, AssetID: id}
	}
	return reserve, nil
}

// GetAssetInfo returns the AssetInfo for the given asset ID.
func (p Pool) GetAssetInfo(id string) (AssetInfo, error) {
	for _, asset := range p.AssetInfos {
		if asset.ID() == id {
			return asset, nil
		}
	}
	return AssetInfo{}, AssetNotInPoolError{PoolAddress: p.Address, AssetID: id}
}

// OtherAssetID returns the ID of the asset opposite to the given one.
func (p Pool) OtherAssetID(id string) (string, error) {
	if p.AssetInfos[0].ID() == id {
		return p.AssetInfos[1].ID(), nil
	}
	if p.AssetInfos[1].ID() == id {
		return p.AssetInfos[0].ID(), nil
	}
	return "", AssetNotInPoolError{PoolAddress: p.Address, AssetID: id}
}
