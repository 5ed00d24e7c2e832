package main

import "milkerfun/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validDrawAssets lists the assets a transfer.allow intent may carry.
// Purchases are settled in milk only, the cow token moves via mint/burn.
var validDrawAssets = []string{
	sdk.AssetMilk.String(),
}

// MilkScale converts human milk amounts (intent limits) into base units.
const MilkScale = 1_000_000

// -----------------------------------------------------------------------------
// Time
// -----------------------------------------------------------------------------

const (
	// SecondsPerDay is the accrual base: reward rates are quoted per day.
	SecondsPerDay = int64(86_400)
	// WithdrawCooldownSeconds is the penalty-free window between withdrawals.
	WithdrawCooldownSeconds = int64(86_400)
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxUnitsPerPurchase caps how many cows a single buy/compound can add.
	MaxUnitsPerPurchase = uint64(50)
)

// -----------------------------------------------------------------------------
// Default Economic Parameters
// -----------------------------------------------------------------------------

// Defaults for the greed-decay policy. Milk carries 6 decimals, so
// 6_000_000_000 reads as 6000 milk per cow at an empty market.
const (
	DefaultBasePrice         = uint64(6_000_000_000)
	DefaultPricePivot        = float64(1500.0)
	DefaultPriceSteepness    = float64(1.2)
	DefaultRewardBase        = uint64(100_000_000_000)
	DefaultRewardSensitivity = float64(0.8)
	DefaultTVLNormalization  = float64(100_000_000_000.0)
	DefaultMinRewardPerDay   = uint64(10_000_000)
	DefaultGreedMultiplier   = float64(5.0)
	DefaultGreedDecayPivot   = float64(250.0)
)

// Defaults for the halving policy. The emission halves every interval until
// the period cap, then stays flat (floored at MinRewardPerDay).
const (
	DefaultHalvingBaseRate     = uint64(100_000_000_000)
	DefaultHalvingIntervalDays = uint64(10)
	DefaultHalvingMaxPeriods   = uint64(20)
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kSystemConfig stores the singleton encoded SystemConfig blob.
	kSystemConfig byte = 0x01
	// kFarm houses encoded Farm structs keyed by owner address.
	kFarm byte = 0x02
)
