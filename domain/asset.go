package domain

import "fmt"

// AssetInfo identifies one side of a pair. It is a tagged union:
// exactly one of Token (a SNIP-20 contract) or NativeToken (a bank denom)
// must be set. The JSON shape matches the pair contract's asset_infos.
type AssetInfo struct {
	Token       *TokenAssetInfo  `json:"token,omitempty"`
	NativeToken *NativeAssetInfo `json:"native_token,omitempty"`
}

// TokenAssetInfo describes a SNIP-20 contract token.
type TokenAssetInfo struct {
	ContractAddr  string `json:"contract_addr"`
	TokenCodeHash string `json:"token_code_hash"`
	ViewingKey    string `json:"viewing_key,omitempty"`
}

// NativeAssetInfo describes a chain-native coin.
type NativeAssetInfo struct {
	Denom string `json:"denom"`
}

// NewTokenAssetInfo returns an AssetInfo for a SNIP-20 token.
func NewTokenAssetInfo(contractAddr, codeHash string) AssetInfo {
	return AssetInfo{
		Token: &TokenAssetInfo{
			ContractAddr:  contractAddr,
			TokenCodeHash: codeHash,
		},
	}
}

// NewNativeAssetInfo returns an AssetInfo for a native coin.
func NewNativeAssetInfo(denom string) AssetInfo {
	return AssetInfo{
		NativeToken: &NativeAssetInfo{Denom: denom},
	}
}

// IsNative returns true if the asset is the chain-native coin.
func (a AssetInfo) IsNative() bool {
	return a.NativeToken != nil
}

// ID returns the identifier the router keys on: the contract address for
// a token, the denom for a native coin.
func (a AssetInfo) ID() string {
	if a.Token != nil {
		return a.Token.ContractAddr
	}
	if a.NativeToken != nil {
		return a.NativeToken.Denom
	}
	return ""
}

// Validate returns an error unless exactly one variant of the union is set.
func (a AssetInfo) Validate() error {
	if a.Token != nil && a.NativeToken != nil {
		return fmt.Errorf("asset info has both token and native_token set")
	}
	if a.Token == nil && a.NativeToken == nil {
		return fmt.Errorf("asset info has neither token nor native_token set")
	}
	if a.Token != nil && a.Token.ContractAddr == "" {
		return fmt.Errorf("token asset info has empty contract address")
	}
	if a.NativeToken != nil && a.NativeToken.Denom == "" {
		return fmt.Errorf("native asset info has empty denom")
	}
	return nil
}
