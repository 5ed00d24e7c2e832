package main

import (
	"fmt"

	"milkerfun/sdk"
)

// emitInitEvent pings explorers once with the chosen policy and bridge mode.
func emitInitEvent(admin string, policy PolicyKind, inflates bool) {
	mode := "conserve"
	if inflates {
		mode = "inflate"
	}
	sdk.Log(fmt.Sprintf(
		"in|by:%s|p:%s|bm:%s",
		admin,
		policy.String(),
		mode,
	))
}

// emitBuyEvent logs herd growth with the total milk drawn so TVL can be replayed from logs.
func emitBuyEvent(buyer string, units uint64, cost uint64, globalUnits uint64) {
	sdk.Log(fmt.Sprintf(
		"bc|by:%s|n:%d|cost:%d|c:%d",
		buyer,
		units,
		cost,
		globalUnits,
	))
}

// emitCompoundEvent mirrors the buy ping but marks the spend as virtual (no draw happened).
func emitCompoundEvent(owner string, units uint64, cost uint64, globalUnits uint64) {
	sdk.Log(fmt.Sprintf(
		"cc|by:%s|n:%d|cost:%d|c:%d",
		owner,
		units,
		cost,
		globalUnits,
	))
}

// emitWithdrawEvent includes gross and paid so the retained penalty is visible in one line.
func emitWithdrawEvent(owner string, gross uint64, paid uint64, penalized bool) {
	sdk.Log(fmt.Sprintf(
		"wm|by:%s|g:%d|p:%d|pen:%t",
		owner,
		gross,
		paid,
		penalized,
	))
}

// emitExportEvent signals cows leaving a farm as minted tokens.
func emitExportEvent(owner string, units uint64, globalUnits uint64) {
	sdk.Log(fmt.Sprintf(
		"xc|by:%s|n:%d|c:%d",
		owner,
		units,
		globalUnits,
	))
}

// emitImportEvent signals burned tokens re-entering a farm.
func emitImportEvent(owner string, units uint64, globalUnits uint64) {
	sdk.Log(fmt.Sprintf(
		"ic|by:%s|n:%d|c:%d",
		owner,
		units,
		globalUnits,
	))
}

// emitMigrateEvent records the admin drain destination and amount.
func emitMigrateEvent(to string, amount uint64) {
	sdk.Log(fmt.Sprintf(
		"mp|to:%s|am:%d",
		to,
		amount,
	))
}
