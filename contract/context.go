package main

import (
	"math"
	"strconv"

	"milkerfun/sdk"
)

// cachedEnv/cachedTransfer/cachedFarms are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop any memoized data to keep reads consistent.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
	cachedFarms     map[string]*Farm
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines and ensures
// subsequent helper calls (intents, sender, timestamps) always see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
		cachedFarms = map[string]*Farm{}
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit float64
	Token sdk.Asset
}

// isValidDrawAsset checks if a given token string is one of the drawable assets.
func isValidDrawAsset(token string) bool {
	for _, a := range validDrawAssets {
		if token == a {
			return true
		}
	}
	return false
}

// getFirstTransferAllow scans the provided intents and returns the first valid
// transfer.allow intent as a TransferAllow object. The cached result is cleared automatically
// whenever currentEnv() detects a new transaction so tests do not leak state between calls.
func getFirstTransferAllow() *TransferAllow {
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range currentIntents() {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			if !isValidDrawAsset(token) {
				sdk.Revert("invalid intent asset", errIntentMissing)
			}
			limitStr := intent.Args["limit"]
			limit, err := strconv.ParseFloat(limitStr, 64)
			if err != nil {
				sdk.Revert("invalid intent limit", errIntentMissing)
			}
			ta := &TransferAllow{
				Limit: limit,
				Token: sdk.Asset(token),
			}
			cachedTransfer = ta
			return ta
		}
	}
	return nil
}

// requireDrawAllowance makes sure the caller granted at least `cost` base
// units of milk before the contract touches their balance.
func requireDrawAllowance(cost uint64) {
	allow := getFirstTransferAllow()
	if allow == nil {
		sdk.Revert("transfer.allow intent required", errIntentMissing)
	}
	granted := floatToUnits(math.Round(allow.Limit * MilkScale))
	if granted < cost {
		sdk.Revert("intent limit below purchase cost", errIntentMissing)
	}
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// contractAddress is the pool account where drawn milk accumulates.
func contractAddress() sdk.Address {
	return sdk.Address("contract:" + currentEnv().ContractId)
}

// poolBalance reads the milk pool TVL straight from the custody ledger.
func poolBalance() uint64 {
	return sdk.GetBalance(contractAddress(), sdk.AssetMilk)
}
