package usecase

import (
	"go.uber.org/zap"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/log"
)

// BuildTokenGraph indexes a set of pool snapshots by contract-token
// address. Native assets are excluded: the graph keys on contract
// addresses only. Pure transform, no side effects.
func BuildTokenGraph(pools []domain.Pool) domain.TokenGraph {
	graph := make(domain.TokenGraph)

	for _, pool := range pools {
		for _, asset := range pool.AssetInfos {
			if asset.IsNative() {
				continue
			}

			id := asset.ID()
			graph[id] = append(graph[id], pool.Address)
		}
	}

	return graph
}

// GetReachableTokens returns the set of token addresses reachable from
// tokenInID by composing pool adjacency within maxHops. A token may be
// reached over multiple disjoint branches but is never revisited within
// one branch.
func GetReachableTokens(pools []domain.Pool, tokenInID string, maxHops int) map[string]struct{} {
	graph := BuildTokenGraph(pools)
	poolsByAddr := poolsByAddress(pools)

	reachable := make(map[string]struct{})

	// Explicit stack; each frame carries its own token trail so that
	// backtracking needs no mutation to undo.
	stack := []domain.CandidatePath{{Tokens: []string{tokenInID}}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.NumHops() >= maxHops {
			continue
		}

		currentToken := current.Tokens[len(current.Tokens)-1]
		for _, poolAddr := range graph[currentToken] {
			pool := poolsByAddr[poolAddr]

			nextToken, err := pool.OtherAssetID(currentToken)
			if err != nil {
				continue
			}

			if containsToken(current.Tokens, nextToken) {
				continue
			}

			reachable[nextToken] = struct{}{}

			stack = append(stack, extendPath(current, poolAddr, nextToken))
		}
	}

	return reachable
}

// GetCandidatePaths enumerates every simple path from tokenInID to
// tokenOutID traversing at most maxHops pools. Branches revisiting a
// token already on the same path are pruned. Start equal to end, or an
// unreachable destination, yields an empty path set.
func GetCandidatePaths(pools []domain.Pool, tokenInID, tokenOutID string, maxHops int, logger log.Logger) (domain.CandidatePaths, error) {
	candidatePaths := domain.CandidatePaths{
		Paths:           []domain.CandidatePath{},
		UniquePoolAddrs: make(map[string]struct{}),
	}

	if tokenInID == tokenOutID {
		return candidatePaths, nil
	}

	graph := BuildTokenGraph(pools)
	poolsByAddr := poolsByAddress(pools)

	if len(graph[tokenInID]) == 0 {
		logger.Debug("no pools found for token in candidate path search", zap.String("token", tokenInID))
		return candidatePaths, nil
	}

	stack := []domain.CandidatePath{{Tokens: []string{tokenInID}}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Prune: extending this branch would exceed the hop bound.
		if current.NumHops() >= maxHops {
			continue
		}

		currentToken := current.Tokens[len(current.Tokens)-1]
		for _, poolAddr := range graph[currentToken] {
			pool := poolsByAddr[poolAddr]

			nextToken, err := pool.OtherAssetID(currentToken)
			if err != nil {
				continue
			}

			if containsToken(current.Tokens, nextToken) {
				continue
			}

			next := extendPath(current, poolAddr, nextToken)

			if nextToken == tokenOutID {
				candidatePaths.Paths = append(candidatePaths.Paths, next)
				for _, addr := range next.Pools {
					candidatePaths.UniquePoolAddrs[addr] = struct{}{}
				}
				continue
			}

			stack = append(stack, next)
		}
	}

	logger.Debug("candidate path search finished",
		zap.String("token_in", tokenInID),
		zap.String("token_out", tokenOutID),
		zap.Int("num_paths", len(candidatePaths.Paths)),
	)

	return candidatePaths, nil
}

func poolsByAddress(pools []domain.Pool) map[string]domain.Pool {
	byAddr := make(map[string]domain.Pool, len(pools))
	for _, pool := range pools {
		byAddr[pool.Address] = pool
	}
	return byAddr
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}

// extendPath copies the frame before appending so sibling branches
// never share backing arrays.
func extendPath(path domain.CandidatePath, poolAddr, token string) domain.CandidatePath {
	newPools := make([]string, len(path.Pools), len(path.Pools)+1)
	copy(newPools, path.Pools)

	newTokens := make([]string, len(path.Tokens), len(path.Tokens)+1)
	copy(newTokens, path.Tokens)

	return domain.CandidatePath{
		Pools:  append(newPools, poolAddr),
		Tokens: append(newTokens, token),
	}
}
