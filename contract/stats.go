package main

import (
	"milkerfun/contract/farm"
	"milkerfun/sdk"
)

// Read-only query exports. Neither mutates state: pending rewards are
// projected in memory and discarded.

// GetFarm returns the JSON farm view for an owner (sender when empty).
// Unknown owners get a zeroed view instead of a revert so explorers can poll.
// Payload: owner address or empty
//
//go:wasmexport get_farm
func GetFarm(payload *string) *string {
	requireInitialized()
	cfg := loadSystemConfig()
	owner := decodeAddressField(payload)
	now := nowUnix()

	view := farm.View{Owner: owner.String()}
	if f := loadFarm(owner); f != nil {
		view.Cows = f.Units
		view.PendingMilk = pendingRewards(cfg, f, now)
		view.RewardRate = f.CachedRewardRate
		view.LastUpdateTime = f.LastUpdateTime
		view.LastWithdrawTime = f.LastWithdrawTime
	}

	data, err := view.MarshalJSON()
	if err != nil {
		sdk.Abort("farm view encoding failed: " + err.Error())
	}
	return strptr(string(data))
}

// GetStats returns the JSON global snapshot: herd size, pool TVL, the current
// cow price and the rate a fresh quote would cache right now.
// Payload: none
//
//go:wasmexport get_stats
func GetStats(payload *string) *string {
	requireInitialized()
	cfg := loadSystemConfig()
	now := nowUnix()
	pool := poolBalance()

	stats := farm.Stats{
		TotalCows:   cfg.GlobalUnitCount,
		PoolBalance: pool,
		CowPrice:    unitPrice(cfg, cfg.GlobalUnitCount),
		RewardRate: policyFor(cfg).ratePerDay(rateContext{
			globalUnits: cfg.GlobalUnitCount,
			poolBalance: pool,
			at:          now,
		}),
		Policy:    cfg.Policy.String(),
		StartTime: cfg.StartTime,
	}

	data, err := stats.MarshalJSON()
	if err != nil {
		sdk.Abort("stats encoding failed: " + err.Error())
	}
	return strptr(string(data))
}
