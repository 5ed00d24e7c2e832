////////////////////////////////////////////////////////////////////////////////
// Milkerfun: cow farming tokenomics for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import "milkerfun/sdk"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// InitConfig initializes the contract with the caller as admin.
// Must be called before any other function.
// Payload: "policy|bridge_mode[|key=value;key=value]"
// e.g. "greed|inflate" or "halving|conserve|halving_interval_days=7"
//
//go:wasmexport init_config
func InitConfig(payload *string) *string {
	if isContractInitialized() {
		sdk.Revert("contract already initialized", errAlreadyInitialized)
	}

	args := decodeInitArgs(payload)

	cfg := &SystemConfig{
		Admin:                getSenderAddress(),
		StartTime:            nowUnix(),
		Policy:               args.Policy,
		ImportInflatesSupply: args.ImportInflatesSupply,

		BasePrice:      DefaultBasePrice,
		PricePivot:     DefaultPricePivot,
		PriceSteepness: DefaultPriceSteepness,

		RewardBase:        DefaultRewardBase,
		RewardSensitivity: DefaultRewardSensitivity,
		TVLNormalization:  DefaultTVLNormalization,
		MinRewardPerDay:   DefaultMinRewardPerDay,
		GreedMultiplier:   DefaultGreedMultiplier,
		GreedDecayPivot:   DefaultGreedDecayPivot,

		HalvingBaseRate:     DefaultHalvingBaseRate,
		HalvingIntervalDays: DefaultHalvingIntervalDays,
		HalvingMaxPeriods:   DefaultHalvingMaxPeriods,
	}
	applyOverrides(cfg, args.Overrides)
	saveSystemConfig(cfg)

	emitInitEvent(cfg.Admin.String(), cfg.Policy, cfg.ImportInflatesSupply)
	return strptr("initialized with " + cfg.Policy.String() + " policy")
}

// applyOverrides patches economic parameters named in the init payload.
// Unknown keys revert so a typo never silently launches with defaults.
func applyOverrides(cfg *SystemConfig, overrides map[string]string) {
	known := map[string]bool{
		"base_price": true, "price_pivot": true, "price_steepness": true,
		"reward_base": true, "reward_sensitivity": true, "tvl_normalization": true,
		"min_reward_per_day": true, "greed_multiplier": true, "greed_decay_pivot": true,
		"halving_base_rate": true, "halving_interval_days": true, "halving_max_periods": true,
	}
	for key := range overrides {
		if !known[key] {
			sdk.Revert("unknown override: "+key, errInvalidPayload)
		}
	}
	overrideUint(overrides, "base_price", &cfg.BasePrice)
	overrideFloat(overrides, "price_pivot", &cfg.PricePivot)
	overrideFloat(overrides, "price_steepness", &cfg.PriceSteepness)
	overrideUint(overrides, "reward_base", &cfg.RewardBase)
	overrideFloat(overrides, "reward_sensitivity", &cfg.RewardSensitivity)
	overrideFloat(overrides, "tvl_normalization", &cfg.TVLNormalization)
	overrideUint(overrides, "min_reward_per_day", &cfg.MinRewardPerDay)
	overrideFloat(overrides, "greed_multiplier", &cfg.GreedMultiplier)
	overrideFloat(overrides, "greed_decay_pivot", &cfg.GreedDecayPivot)
	overrideUint(overrides, "halving_base_rate", &cfg.HalvingBaseRate)
	overrideUint(overrides, "halving_interval_days", &cfg.HalvingIntervalDays)
	overrideUint(overrides, "halving_max_periods", &cfg.HalvingMaxPeriods)
	if cfg.HalvingIntervalDays == 0 {
		sdk.Revert("halving interval must be > 0", errInvalidPayload)
	}
}
