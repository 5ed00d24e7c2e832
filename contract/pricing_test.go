package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func greedTestConfig() *SystemConfig {
	return &SystemConfig{
		Policy:            PolicyGreedDecay,
		BasePrice:         DefaultBasePrice,
		PricePivot:        DefaultPricePivot,
		PriceSteepness:    DefaultPriceSteepness,
		RewardBase:        DefaultRewardBase,
		RewardSensitivity: DefaultRewardSensitivity,
		TVLNormalization:  DefaultTVLNormalization,
		MinRewardPerDay:   DefaultMinRewardPerDay,
		GreedMultiplier:   DefaultGreedMultiplier,
		GreedDecayPivot:   DefaultGreedDecayPivot,
	}
}

func TestUnitPriceEmptyMarket(t *testing.T) {
	cfg := greedTestConfig()
	assert.Equal(t, cfg.BasePrice, unitPrice(cfg, 0))
}

func TestUnitPriceAtPivotDoubles(t *testing.T) {
	cfg := &SystemConfig{
		BasePrice:      6000,
		PricePivot:     1500,
		PriceSteepness: 1.2,
	}
	// (1500/1500)^1.2 == 1, so the pivot sells at exactly twice the base.
	assert.Equal(t, uint64(12000), unitPrice(cfg, 1500))
}

func TestUnitPriceMonotone(t *testing.T) {
	cfg := greedTestConfig()
	prev := unitPrice(cfg, 0)
	for _, c := range []uint64{1, 10, 100, 1500, 5000, 100_000} {
		cur := unitPrice(cfg, c)
		require.GreaterOrEqual(t, cur, prev, "price dipped at c=%d", c)
		prev = cur
	}
}

func TestUnitPriceOverflowGuard(t *testing.T) {
	cfg := greedTestConfig()
	cfg.PriceSteepness = 500
	requireRevert(t, errMathOverflow, func() {
		unitPrice(cfg, 1_000_000_000)
	})
}
