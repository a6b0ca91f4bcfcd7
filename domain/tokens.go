package domain

// Token is the registry's reference data for a single asset.
// A native coin is registered with its denom as the address and an empty
// code hash.
type Token struct {
	// Address is the SNIP-20 contract address, or the bank denom for a
	// native coin.
	Address string `mapstructure:"address" json:"address"`
	// CodeHash authenticates the token contract's code. Empty for native coins.
	CodeHash string `mapstructure:"code-hash" json:"code_hash"`
	Symbol   string `mapstructure:"symbol" json:"symbol"`
	Decimals int32  `mapstructure:"decimals" json:"decimals"`
}

// IsNative returns true for registry entries that represent the
// chain-native coin rather than a token contract.
func (t Token) IsNative() bool {
	return t.CodeHash == ""
}
