package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milkerfun/sdk"
)

func TestWithdrawFirstTimeIsPenaltyFree(t *testing.T) {
	setupContract(t, "greed|inflate")
	nextTx(alice, 2000)
	fundPool(10_000_000)
	saveFarm(&Farm{
		Owner:              alice,
		Units:              0,
		AccumulatedRewards: 4_000_000,
		LastUpdateTime:     2000,
	})

	res := WithdrawMilk(nil)
	require.NotNil(t, res)

	farm := mustLoadFarm(t, alice)
	assert.Equal(t, uint64(0), farm.AccumulatedRewards)
	assert.Equal(t, int64(2000), farm.LastWithdrawTime)
	assert.Equal(t, uint64(4_000_000), sdk.GetBalance(alice, sdk.AssetMilk))
	assert.Equal(t, uint64(6_000_000), poolBalance())
}

func TestWithdrawWithinCooldownForfeitsHalf(t *testing.T) {
	setupContract(t, "greed|inflate")
	nextTx(alice, 10_000)
	fundPool(100_000_000)
	saveFarm(&Farm{
		Owner:              alice,
		AccumulatedRewards: 1001,
		LastUpdateTime:     10_000,
		LastWithdrawTime:   10_000 - 3600, // an hour ago
	})

	WithdrawMilk(nil)

	// floor(1001/2), the retained 501 stays in the pool.
	assert.Equal(t, uint64(500), sdk.GetBalance(alice, sdk.AssetMilk))
	assert.Equal(t, uint64(100_000_000-500), poolBalance())
	farm := mustLoadFarm(t, alice)
	assert.Equal(t, uint64(0), farm.AccumulatedRewards)
	assert.Equal(t, int64(10_000), farm.LastWithdrawTime)
}

func TestWithdrawAfterCooldownIsPenaltyFree(t *testing.T) {
	setupContract(t, "greed|inflate")
	now := int64(1000 + WithdrawCooldownSeconds + 5000)
	nextTx(alice, now)
	fundPool(100_000_000)
	saveFarm(&Farm{
		Owner:              alice,
		AccumulatedRewards: 1000,
		LastUpdateTime:     now,
		LastWithdrawTime:   now - WithdrawCooldownSeconds, // exactly at the edge
	})

	WithdrawMilk(nil)
	assert.Equal(t, uint64(1000), sdk.GetBalance(alice, sdk.AssetMilk))
}

func TestWithdrawPayoutCappedAtPool(t *testing.T) {
	setupContract(t, "greed|inflate")
	nextTx(alice, 5000)
	fundPool(300)
	saveFarm(&Farm{
		Owner:              alice,
		AccumulatedRewards: 10_000,
		LastUpdateTime:     5000,
	})

	WithdrawMilk(nil)
	assert.Equal(t, uint64(300), sdk.GetBalance(alice, sdk.AssetMilk))
	assert.Equal(t, uint64(0), poolBalance())
	// The uncovered remainder is gone, accrual restarts from zero.
	assert.Equal(t, uint64(0), mustLoadFarm(t, alice).AccumulatedRewards)
}

func TestWithdrawSettlesBeforePaying(t *testing.T) {
	setupContract(t, "greed|inflate")
	sdk.MockSetBalance(alice, sdk.AssetMilk, 10_000_000_000_000)

	nextTx(alice, 2000)
	allowMilk(60_000)
	payload := "10"
	BuyCows(&payload)
	rate := mustLoadFarm(t, alice).CachedRewardRate
	spent := 10 * DefaultBasePrice

	nextTx(alice, 2000+3600)
	WithdrawMilk(nil)

	gross := 10 * (rate / uint64(SecondsPerDay)) * 3600
	want := gross
	if want > spent {
		want = spent // pool cap
	}
	assert.Equal(t, 10_000_000_000_000-spent+want, sdk.GetBalance(alice, sdk.AssetMilk))
}

func TestWithdrawNothingReverts(t *testing.T) {
	setupContract(t, "greed|inflate")
	nextTx(alice, 2000)
	requireRevert(t, errNoRewards, func() { WithdrawMilk(nil) })

	saveFarm(&Farm{Owner: alice, LastUpdateTime: 2000})
	requireRevert(t, errNoRewards, func() { WithdrawMilk(nil) })
}

func TestWithdrawRefreshesRateFromDrainedPool(t *testing.T) {
	setupContract(t, "greed|inflate")
	sdk.MockSetBalance(alice, sdk.AssetMilk, 10_000_000_000_000)

	nextTx(alice, 2000)
	allowMilk(60_000)
	payload := "10"
	BuyCows(&payload)
	before := mustLoadFarm(t, alice).CachedRewardRate

	nextTx(alice, 2000+SecondsPerDay)
	WithdrawMilk(nil)
	after := mustLoadFarm(t, alice).CachedRewardRate

	// The payout emptied the pool, a leaner pool quotes a higher rate.
	assert.Greater(t, after, before)
}
