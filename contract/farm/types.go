// Package farm holds the JSON wire types the query exports answer with.
// Kept separate from the contract so off-chain tooling can import them
// without dragging in the wasm entry points.
package farm

// View is the per-owner farm snapshot returned by get_farm. PendingMilk is
// projected to the current block time, nothing is persisted by the query.
//
//tinyjson:json
type View struct {
	Owner            string `json:"owner"`
	Cows             uint64 `json:"cows"`
	PendingMilk      uint64 `json:"pending_milk"`
	RewardRate       uint64 `json:"reward_rate"`
	LastUpdateTime   int64  `json:"last_update_time"`
	LastWithdrawTime int64  `json:"last_withdraw_time"`
}

// Stats is the global snapshot returned by get_stats.
//
//tinyjson:json
type Stats struct {
	TotalCows   uint64 `json:"total_cows"`
	PoolBalance uint64 `json:"pool_balance"`
	CowPrice    uint64 `json:"cow_price"`
	RewardRate  uint64 `json:"reward_rate"`
	Policy      string `json:"policy"`
	StartTime   int64  `json:"start_time"`
}
