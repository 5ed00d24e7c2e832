package main

import "milkerfun/sdk"

// PolicyKind selects how the per-day reward rate is derived.
type PolicyKind uint8

const (
	// PolicyGreedDecay prices emissions off pool TVL per cow with a scarcity boost.
	PolicyGreedDecay PolicyKind = 0
	// PolicyHalving halves a fixed emission schedule every interval.
	PolicyHalving PolicyKind = 1
)

// String prints the policy as lower-case text for events and stats.
// Example payload: PolicyHalving.String()
func (p PolicyKind) String() string {
	switch p {
	case PolicyHalving:
		return "halving"
	default:
		return "greed"
	}
}

// SystemConfig is the singleton contract configuration plus the global cow
// counter. Pool balance is deliberately not part of it: the custody ledger is
// the source of truth and gets read fresh every operation.
type SystemConfig struct {
	Admin                sdk.Address
	StartTime            int64
	GlobalUnitCount      uint64
	Policy               PolicyKind
	ImportInflatesSupply bool

	BasePrice      uint64
	PricePivot     float64
	PriceSteepness float64

	RewardBase        uint64
	RewardSensitivity float64
	TVLNormalization  float64
	MinRewardPerDay   uint64
	GreedMultiplier   float64
	GreedDecayPivot   float64

	HalvingBaseRate     uint64
	HalvingIntervalDays uint64
	HalvingMaxPeriods   uint64
}

// Farm tracks one owner's herd and reward bookkeeping.
// LastWithdrawTime == 0 means the owner never withdrew.
type Farm struct {
	Owner              sdk.Address
	Units              uint64
	LastUpdateTime     int64
	AccumulatedRewards uint64
	CachedRewardRate   uint64
	LastWithdrawTime   int64
}
