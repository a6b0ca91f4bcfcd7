package domain

// TokenGraph is the adjacency index over a set of pool snapshots:
// contract-token address to the pair addresses that hold it.
// Native assets are not indexed; the graph keys on contract addresses only.
type TokenGraph map[string][]string

// CandidatePath is one enumerated simple path from a start token to an
// end token. Tokens has exactly len(Pools)+1 entries: Tokens[0] is the
// start, Tokens[len-1] the destination, and Pools[i] swaps Tokens[i]
// into Tokens[i+1]. No token address repeats within a path.
type CandidatePath struct {
	Pools  []string `json:"pools"`
	Tokens []string `json:"tokens"`
}

// NumHops returns the number of pools traversed by the path.
func (p CandidatePath) NumHops() int {
	return len(p.Pools)
}

// CandidatePaths is the result of path enumeration between two tokens.
type CandidatePaths struct {
	Paths []CandidatePath `json:"paths"`
	// UniquePoolAddrs is the set of pool addresses that appear in any path.
	UniquePoolAddrs map[string]struct{} `json:"-"`
}
