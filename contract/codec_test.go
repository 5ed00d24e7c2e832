package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milkerfun/sdk"
)

func TestSystemConfigCodecRoundTrip(t *testing.T) {
	cfg := &SystemConfig{
		Admin:                sdk.Address("hive:admin"),
		StartTime:            1_700_000_000,
		GlobalUnitCount:      42,
		Policy:               PolicyHalving,
		ImportInflatesSupply: true,
		BasePrice:            DefaultBasePrice,
		PricePivot:           DefaultPricePivot,
		PriceSteepness:       DefaultPriceSteepness,
		RewardBase:           DefaultRewardBase,
		RewardSensitivity:    DefaultRewardSensitivity,
		TVLNormalization:     DefaultTVLNormalization,
		MinRewardPerDay:      DefaultMinRewardPerDay,
		GreedMultiplier:      DefaultGreedMultiplier,
		GreedDecayPivot:      DefaultGreedDecayPivot,
		HalvingBaseRate:      DefaultHalvingBaseRate,
		HalvingIntervalDays:  7,
		HalvingMaxPeriods:    33,
	}
	got, err := DecodeSystemConfig(EncodeSystemConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestFarmCodecRoundTrip(t *testing.T) {
	f := &Farm{
		Owner:              sdk.Address("did:key:z6MkhaXgBZD"),
		Units:              17,
		LastUpdateTime:     1_700_000_123,
		AccumulatedRewards: 987_654_321,
		CachedRewardRate:   555_000_000_000,
		LastWithdrawTime:   1_699_999_999,
	}
	got, err := DecodeFarm(EncodeFarm(f))
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestDecodeTruncatedBlobErrors(t *testing.T) {
	blob := EncodeFarm(&Farm{Owner: sdk.Address("hive:x"), Units: 1})
	_, err := DecodeFarm(blob[:len(blob)-3])
	require.Error(t, err)
}
