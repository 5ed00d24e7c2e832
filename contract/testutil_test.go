package main

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"milkerfun/sdk"
)

var txCounter int

// nextTx advances the mock host to a fresh transaction so per-tx caches in
// context.go are dropped, then scripts sender and block time.
func nextTx(sender sdk.Address, ts int64) {
	txCounter++
	sdk.MockSetTxId(fmt.Sprintf("tx-%d", txCounter))
	sdk.MockSetSender(sender)
	sdk.MockSetTimestamp(strconv.FormatInt(ts, 10))
	sdk.MockSetIntents(nil)
}

// allowMilk attaches a transfer.allow intent for `limit` whole milk.
func allowMilk(limit float64) {
	sdk.MockSetIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"token": sdk.AssetMilk.String(),
			"limit": strconv.FormatFloat(limit, 'f', -1, 64),
		},
	}})
}

// setupContract resets the mock and runs init_config as the admin at t=1000.
func setupContract(t *testing.T, payload string) {
	t.Helper()
	sdk.MockReset()
	nextTx(sdk.Address("hive:admin"), 1000)
	res := InitConfig(&payload)
	require.NotNil(t, res)
}

// requireRevert asserts fn panics with the given revert symbol.
func requireRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %s, got none", symbol)
		re, ok := r.(sdk.RevertError)
		require.True(t, ok, "expected revert, got panic %v", r)
		require.Equal(t, symbol, re.Symbol)
	}()
	fn()
}

// mustLoadFarm fetches a stored farm and fails the test if it is missing.
func mustLoadFarm(t *testing.T, owner sdk.Address) *Farm {
	t.Helper()
	f := loadFarm(owner)
	require.NotNil(t, f, "farm for %s not found", owner)
	return f
}

// fundPool credits the contract pool directly, bypassing any draw bookkeeping.
func fundPool(amount uint64) {
	sdk.MockSetBalance(sdk.MockContractAddress(), sdk.AssetMilk, amount)
}
