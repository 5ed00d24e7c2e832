package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milkerfun/sdk"
)

func TestInitStoresConfig(t *testing.T) {
	setupContract(t, "greed|inflate")

	cfg := loadSystemConfig()
	assert.Equal(t, sdk.Address("hive:admin"), cfg.Admin)
	assert.Equal(t, int64(1000), cfg.StartTime)
	assert.Equal(t, PolicyGreedDecay, cfg.Policy)
	assert.True(t, cfg.ImportInflatesSupply)
	assert.Equal(t, DefaultBasePrice, cfg.BasePrice)
	assert.Equal(t, uint64(0), cfg.GlobalUnitCount)
}

func TestInitHalvingConserve(t *testing.T) {
	setupContract(t, "halving|conserve")

	cfg := loadSystemConfig()
	assert.Equal(t, PolicyHalving, cfg.Policy)
	assert.False(t, cfg.ImportInflatesSupply)
}

func TestInitAppliesOverrides(t *testing.T) {
	setupContract(t, "halving|inflate|halving_interval_days=7;base_price=1000;greed_decay_pivot=100.5")

	cfg := loadSystemConfig()
	assert.Equal(t, uint64(7), cfg.HalvingIntervalDays)
	assert.Equal(t, uint64(1000), cfg.BasePrice)
	assert.Equal(t, 100.5, cfg.GreedDecayPivot)
	// Untouched params keep their defaults.
	assert.Equal(t, DefaultRewardBase, cfg.RewardBase)
}

func TestInitTwiceReverts(t *testing.T) {
	setupContract(t, "greed|inflate")
	nextTx(sdk.Address("hive:admin"), 1001)
	payload := "greed|inflate"
	requireRevert(t, errAlreadyInitialized, func() {
		InitConfig(&payload)
	})
}

func TestInitRejectsJunk(t *testing.T) {
	cases := map[string]string{
		"unknown policy":   "bananas|inflate",
		"unknown mode":     "greed|sideways",
		"unknown override": "greed|inflate|warp_speed=9",
		"junk override":    "greed|inflate|base_price=lots",
		"zero interval":    "halving|inflate|halving_interval_days=0",
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			sdk.MockReset()
			nextTx(sdk.Address("hive:admin"), 1000)
			p := payload
			requireRevert(t, errInvalidPayload, func() {
				InitConfig(&p)
			})
		})
	}
}

func TestOpsBeforeInitRevert(t *testing.T) {
	sdk.MockReset()
	nextTx(sdk.Address("hive:alice"), 1000)
	payload := "1"
	requireRevert(t, errNotInitialized, func() {
		BuyCows(&payload)
	})
	requireRevert(t, errNotInitialized, func() {
		WithdrawMilk(nil)
	})
}

func TestDecodeUnitCountValidation(t *testing.T) {
	setupContract(t, "greed|inflate")
	nextTx(sdk.Address("hive:alice"), 2000)

	zero := "0"
	requireRevert(t, errInvalidAmount, func() { BuyCows(&zero) })

	tooMany := "51"
	requireRevert(t, errInvalidAmount, func() { BuyCows(&tooMany) })

	junk := "many"
	requireRevert(t, errInvalidPayload, func() { BuyCows(&junk) })

	require.NotPanics(t, func() {
		// 51 is fine across the bridge, only purchases are capped. The
		// export itself still fails on herd size, which is the point.
		n := "51"
		requireRevert(t, errInsufficientUnits, func() { ExportCows(&n) })
	})
}
