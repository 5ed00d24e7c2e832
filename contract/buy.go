package main

import "milkerfun/sdk"

// BuyCows purchases cows with milk drawn from the caller.
// Payload: cow count (1..MaxUnitsPerPurchase)
//
// The whole batch is priced at the pre-purchase global count, so a single
// transaction never walks the curve against itself. The caller must attach a
// transfer.allow intent covering the full cost.
//
//go:wasmexport buy_cows
func BuyCows(payload *string) *string {
	requireInitialized()
	cfg := loadSystemConfig()
	units := decodeUnitCount(payload)
	buyer := getSenderAddress()
	now := nowUnix()

	farm := loadOrCreateFarm(buyer, now)
	settleFarm(cfg, farm, now)

	price := unitPrice(cfg, cfg.GlobalUnitCount)
	cost := checkedMul(units, price)
	requireDrawAllowance(cost)
	sdk.TokenDraw(cost, sdk.AssetMilk)

	farm.Units = checkedAdd(farm.Units, units)
	cfg.GlobalUnitCount = checkedAdd(cfg.GlobalUnitCount, units)

	// The pool already holds the fresh deposit, quote against it.
	refreshRate(cfg, farm, now)

	saveFarm(farm)
	saveSystemConfig(cfg)
	emitBuyEvent(buyer.String(), units, cost, cfg.GlobalUnitCount)
	return strptr("bought " + UInt64ToString(units) + " cows for " + UInt64ToString(cost))
}
