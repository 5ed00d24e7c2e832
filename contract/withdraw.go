package main

import "milkerfun/sdk"

// WithdrawMilk pays out the farm's settled rewards. Withdrawing again within
// the cooldown window forfeits half the rewards, the retained half simply
// stays in the pool for everyone else. The payout is capped at whatever the
// pool actually holds.
// Payload: none
//
//go:wasmexport withdraw_milk
func WithdrawMilk(payload *string) *string {
	requireInitialized()
	cfg := loadSystemConfig()
	owner := getSenderAddress()
	now := nowUnix()

	farm := loadFarm(owner)
	if farm == nil {
		sdk.Revert("no farm to withdraw from", errNoRewards)
	}
	settleFarm(cfg, farm, now)

	gross := farm.AccumulatedRewards
	if gross == 0 {
		sdk.Revert("nothing to withdraw", errNoRewards)
	}

	// LastWithdrawTime == 0 means first withdrawal, always penalty free.
	penalized := farm.LastWithdrawTime != 0 && now-farm.LastWithdrawTime < WithdrawCooldownSeconds
	payout := gross
	if penalized {
		payout = gross / 2
	}
	if pool := poolBalance(); payout > pool {
		payout = pool
	}

	farm.AccumulatedRewards = 0
	farm.LastWithdrawTime = now

	if payout > 0 {
		sdk.TokenTransfer(owner, payout, sdk.AssetMilk)
	}

	// Re-quote against the drained pool so the next idle stretch accrues at
	// the post-payout rate.
	refreshRate(cfg, farm, now)

	saveFarm(farm)
	emitWithdrawEvent(owner.String(), gross, payout, penalized)
	return strptr("withdrew " + UInt64ToString(payout) + " milk")
}
