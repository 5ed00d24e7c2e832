package main

import "milkerfun/sdk"

// MigratePool drains the entire milk pool to the given destination. Admin
// only, intended for moving liquidity into a successor deployment. Farms and
// counters stay untouched, accrual bookkeeping survives the move.
// Payload: destination address (empty = admin)
//
//go:wasmexport migrate_pool
func MigratePool(payload *string) *string {
	requireInitialized()
	cfg := loadSystemConfig()
	sender := getSenderAddress()
	if !isAdmin(cfg, sender) {
		sdk.Revert("admin only", errUnauthorized)
	}

	dest := decodeAddressField(payload)
	amount := poolBalance()
	if amount == 0 {
		sdk.Revert("pool is empty", errNoFunds)
	}

	sdk.TokenTransfer(dest, amount, sdk.AssetMilk)
	emitMigrateEvent(dest.String(), amount)
	return strptr("migrated " + UInt64ToString(amount) + " milk")
}
