package main

import "milkerfun/sdk"

// CompoundCows converts accumulated rewards into more cows without any token
// movement: the spend is purely virtual, the pool balance stays put.
// Payload: cow count (1..MaxUnitsPerPurchase)
//
//go:wasmexport compound_cows
func CompoundCows(payload *string) *string {
	requireInitialized()
	cfg := loadSystemConfig()
	units := decodeUnitCount(payload)
	owner := getSenderAddress()
	now := nowUnix()

	farm := loadFarm(owner)
	if farm == nil {
		sdk.Revert("no farm to compound", errInsufficientRewards)
	}
	settleFarm(cfg, farm, now)

	price := unitPrice(cfg, cfg.GlobalUnitCount)
	cost := checkedMul(units, price)
	if farm.AccumulatedRewards < cost {
		sdk.Revert("accumulated rewards below compound cost", errInsufficientRewards)
	}

	farm.AccumulatedRewards -= cost
	farm.Units = checkedAdd(farm.Units, units)
	cfg.GlobalUnitCount = checkedAdd(cfg.GlobalUnitCount, units)

	refreshRate(cfg, farm, now)

	saveFarm(farm)
	saveSystemConfig(cfg)
	emitCompoundEvent(owner.String(), units, cost, cfg.GlobalUnitCount)
	return strptr("compounded " + UInt64ToString(units) + " cows for " + UInt64ToString(cost))
}
