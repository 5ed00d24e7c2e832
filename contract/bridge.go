package main

import "milkerfun/sdk"

// The bridge turns farm cows into tradeable cow tokens and back. Whether the
// global herd count shrinks on export is a launch-time choice: the historical
// books only ever grew it on import (inflate mode), conserve mode keeps the
// round trip neutral.

// ExportCows settles the farm, removes cows from it and mints the same number
// of cow tokens to the caller. The cached reward rate is left as-is, the next
// rate-moving operation re-quotes it.
// Payload: cow count
//
//go:wasmexport export_cows
func ExportCows(payload *string) *string {
	requireInitialized()
	cfg := loadSystemConfig()
	units := decodeBridgeUnitCount(payload)
	owner := getSenderAddress()
	now := nowUnix()

	farm := loadFarm(owner)
	if farm == nil || farm.Units < units {
		sdk.Revert("not enough cows to export", errInsufficientUnits)
	}
	settleFarm(cfg, farm, now)

	farm.Units -= units
	if !cfg.ImportInflatesSupply {
		cfg.GlobalUnitCount = checkedSub(cfg.GlobalUnitCount, units)
	}

	sdk.TokenMint(owner, units, sdk.AssetCow)

	saveFarm(farm)
	saveSystemConfig(cfg)
	emitExportEvent(owner.String(), units, cfg.GlobalUnitCount)
	return strptr("exported " + UInt64ToString(units) + " cows")
}

// ImportCows burns cow tokens from the caller and credits the cows to the
// farm, creating it on first contact. The global count always grows here and
// the rate is re-quoted since the herd size changed.
// Payload: cow count
//
//go:wasmexport import_cows
func ImportCows(payload *string) *string {
	requireInitialized()
	cfg := loadSystemConfig()
	units := decodeBridgeUnitCount(payload)
	owner := getSenderAddress()
	now := nowUnix()

	farm := loadOrCreateFarm(owner, now)
	settleFarm(cfg, farm, now)

	sdk.TokenBurn(owner, units, sdk.AssetCow)

	farm.Units = checkedAdd(farm.Units, units)
	cfg.GlobalUnitCount = checkedAdd(cfg.GlobalUnitCount, units)

	refreshRate(cfg, farm, now)

	saveFarm(farm)
	saveSystemConfig(cfg)
	emitImportEvent(owner.String(), units, cfg.GlobalUnitCount)
	return strptr("imported " + UInt64ToString(units) + " cows")
}
